package smtp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/magabrotheeeer/gym-dashboard/internal/config"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
)

const dialTimeout = 10 * time.Second

// ErrNoStartTLS возвращается, если сервер не поддерживает STARTTLS.
var ErrNoStartTLS = errors.New("smtp server does not support STARTTLS")

// Transport открывает соединение с почтовым сервером зала: STARTTLS, затем PLAIN-авторизация.
type Transport struct {
	cfg config.SMTP
	log *slog.Logger
}

// NewTransport создает новый экземпляр Transport.
func NewTransport(cfg config.SMTP, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log.With(slog.String("smtp_host", cfg.SMTPHost))}
}

// Connect возвращает готовый к отправке клиент.
func (t *Transport) Connect() (Client, error) {
	const op = "smtp.Connect"

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(t.cfg.SMTPHost, t.cfg.SMTPPort), dialTimeout)
	if err != nil {
		t.log.Error("failed to dial SMTP server", sl.Err(err))
		return nil, fmt.Errorf("%s: dial: %w", op, err)
	}

	c, err := smtp.NewClient(conn, t.cfg.SMTPHost)
	if err != nil {
		t.log.Error("failed to create SMTP client", sl.Err(err))
		t.discard(conn)
		return nil, fmt.Errorf("%s: new client: %w", op, err)
	}

	if err := t.secure(c); err != nil {
		t.discard(c)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client{c}, nil
}

// secure включает TLS и авторизуется. Без STARTTLS пароль не отправляется.
func (t *Transport) secure(c *smtp.Client) error {
	if ok, _ := c.Extension("STARTTLS"); !ok {
		t.log.Error("SMTP server does not support STARTTLS")
		return ErrNoStartTLS
	}
	err := c.StartTLS(&tls.Config{
		ServerName: t.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		t.log.Error("failed to start TLS", sl.Err(err))
		return fmt.Errorf("starttls: %w", err)
	}
	if err := c.Auth(smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, t.cfg.SMTPHost)); err != nil {
		t.log.Error("smtp auth failed", sl.Err(err))
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}

func (t *Transport) discard(c io.Closer) {
	if err := c.Close(); err != nil {
		t.log.Error("failed to close connection", sl.Err(err))
	}
}

// GetSMTPUser возвращает адрес отправителя.
func (t *Transport) GetSMTPUser() string {
	return t.cfg.SMTPUser
}

// IsPermanent сообщает, что сервер окончательно отклонил команду (ответ 5xx).
// Повторная отправка того же письма закончится так же.
func IsPermanent(err error) bool {
	var protoErr *textproto.Error
	return errors.As(err, &protoErr) && protoErr.Code >= 500 && protoErr.Code < 600
}

// client сводит *smtp.Client к интерфейсу Client.
type client struct {
	c *smtp.Client
}

func (w client) Mail(from string) error        { return w.c.Mail(from) }
func (w client) Rcpt(to string) error          { return w.c.Rcpt(to) }
func (w client) Data() (io.WriteCloser, error) { return w.c.Data() }
func (w client) Quit() error                   { return w.c.Quit() }
func (w client) Close() error                  { return w.c.Close() }
