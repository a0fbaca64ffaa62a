// Package mailer integra com o provedor de envio de emails transacionais.
package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-backoffice-api/internal/config"
)

// Notifier é o contrato de envio de email usado pelos usecases.
type Notifier interface {
	Send(toEmail, subject, htmlBody string) error
}

type sendGridNotifier struct {
	cfg config.Mail
}

func NewSendGridNotifier(cfg config.Mail) Notifier {
	return &sendGridNotifier{
		cfg: cfg,
	}
}

func (n *sendGridNotifier) Send(toEmail, subject, htmlBody string) error {
	from := mail.NewEmail(n.cfg.FromName, n.cfg.FromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(n.cfg.SendGridAPIKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("erro ao enviar email: %w", err)
	}

	if response.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"status_code": response.StatusCode,
			"body":        response.Body,
		}).Error("SendGrid recusou o envio do email")
		return fmt.Errorf("envio de email recusado pelo provedor: status %d", response.StatusCode)
	}

	return nil
}
