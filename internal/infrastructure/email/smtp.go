package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/conseccomms/conseccomms/internal/shared/config"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

// messageSender is satisfied by *gomail.Dialer.
type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	fromAddress string
	fromName    string
	dialer      messageSender
	renderer    *TemplateRenderer
	logger      logger.Interface
}

// NewSMTPEmailService returns ErrEmailServiceNotConfigured when email is
// disabled or no SMTP host is set. Callers treat that as "no sender".
func NewSMTPEmailService(cfg sharedConfig.EmailConfig, log logger.Interface) (*SMTPEmailService, error) {
	if !cfg.Enabled || cfg.SMTPHost == "" {
		return nil, ErrEmailServiceNotConfigured
	}
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)
	return newSMTPEmailService(cfg.FromAddress, cfg.FromName,
		gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword), renderer, log), nil
}

func newSMTPEmailService(from, fromName string, dialer messageSender, renderer *TemplateRenderer, log logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		fromAddress: from,
		fromName:    fromName,
		dialer:      dialer,
		renderer:    renderer,
		logger:      log,
	}
}

// Send renders templateID with params and delivers it to one recipient.
func (s *SMTPEmailService) Send(ctx context.Context, templateID, to string, params map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered, err := s.renderer.Render(templateID, params)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	if s.fromName != "" {
		m.SetAddressHeader("From", s.fromAddress, s.fromName)
	} else {
		m.SetHeader("From", s.fromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", rendered.Subject)
	m.SetBody("text/plain", rendered.PlainBody)
	m.AddAlternative("text/html", rendered.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "template", templateID, "to", to)
	return nil
}
