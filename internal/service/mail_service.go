package service

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/tmohagan/portfolio-api/internal/config"
)

// MailService relays contact-form submissions to the site owner over SMTP.
type MailService interface {
	SendContact(ctx context.Context, name, email, message string) error
}

type mailService struct {
	cfg *config.Config
}

func NewMailService(cfg *config.Config) MailService {
	return &mailService{cfg: cfg}
}

func (s *mailService) SendContact(ctx context.Context, name, email, message string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.SMTP.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(s.cfg.SMTP.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("New message from %s", name))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Name: %s\nEmail: %s\nMessage: %s\n",
		name, email, message,
	))

	client, err := mail.NewClient(s.cfg.SMTP.Host,
		mail.WithPort(s.cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.SMTP.Username),
		mail.WithPassword(s.cfg.SMTP.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("could not create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}

	return nil
}
