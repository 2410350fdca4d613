// Package smtp оборачивает net/smtp: транспорт с STARTTLS и авторизацией и узкий интерфейс клиента.
package smtp

import "io"

// Client интерфейс для SMTP клиента.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}
