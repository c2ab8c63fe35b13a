package mailer

import (
	"smakownia-backend/internal/pkg/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers notification emails over SMTP. Delivery is best effort:
// callers log failures and move on, nothing in the payment flow retries or
// rolls back on a lost email.
type Mailer struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) OperatorAddress() string {
	return m.cfg.OperatorEmail
}
