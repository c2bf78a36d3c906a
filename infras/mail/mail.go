package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

const (
	otelAttrRecipient = "recipient"
	otelAttrSubject   = "subject"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type mailerImpl struct {
	config *config.Config
	dialer *gomail.Dialer
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	dialer := gomail.NewDialer(
		config.SMTP.Host,
		config.SMTP.Port,
		config.SMTP.Username,
		config.SMTP.Password,
	)

	log.Info().Str("host", config.SMTP.Host).Msg("SMTP mailer initialized")

	return &mailerImpl{
		config: config,
		dialer: dialer,
		otel:   otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	if !m.config.SMTP.Enable {
		log.Info().Str("to", to).Str("subject", subject).Msg("SMTP disabled, skipping email")

		return nil
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.config.SMTP.From)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	if err = m.dialer.DialAndSend(message); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send email.")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Sent email successfully.")

	return nil
}
