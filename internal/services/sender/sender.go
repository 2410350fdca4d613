// Package sender отправляет участникам письма об окончании абонемента.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/smtp"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

const expiryLayout = "02.01.2006"

// Transport открывает соединение с почтовым сервером.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// Service рассылка уведомлений.
type Service struct {
	transport Transport
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(log *slog.Logger, transport Transport) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// SendExpiringNotice обрабатывает сообщение из очереди notifications.expiring.
func (s *Service) SendExpiringNotice(body []byte) error {
	message, err := s.decode(body)
	if err != nil {
		return err
	}

	subject := "Ваш абонемент скоро закончится"
	bodyText := fmt.Sprintf("Здравствуйте, %s!\n\nВаш абонемент \"%s\" действует до %s.\n\nПродлите его на стойке администратора, чтобы не прерывать тренировки.",
		message.Name, message.Plan, message.Expiry.Format(expiryLayout))

	return s.sendEmail([]string{message.Email}, subject, bodyText)
}

// SendExpiredNotice обрабатывает сообщение из очереди notifications.expired.
func (s *Service) SendExpiredNotice(body []byte) error {
	message, err := s.decode(body)
	if err != nil {
		return err
	}

	subject := "Ваш абонемент закончился"
	bodyText := fmt.Sprintf("Здравствуйте, %s!\n\nСрок действия абонемента \"%s\" истёк %s.\n\nБудем рады видеть вас снова.",
		message.Name, message.Plan, message.Expiry.Format(expiryLayout))

	return s.sendEmail([]string{message.Email}, subject, bodyText)
}

func (s *Service) decode(body []byte) (models.ExpiringMember, error) {
	var message models.ExpiringMember
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return message, fmt.Errorf("error unmarshalling message: %w: %w", rabbitmq.ErrPermanent, err)
	}
	return message, nil
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	from := s.transport.GetSMTPUser()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(from); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return classify(err)
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return classify(err)
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}

// classify помечает отказ сервера с кодом 5xx как окончательный:
// адрес или письмо отвергнуты, повтор ничего не изменит.
func classify(err error) error {
	if smtp.IsPermanent(err) {
		return fmt.Errorf("%w: %w", rabbitmq.ErrPermanent, err)
	}
	return err
}
