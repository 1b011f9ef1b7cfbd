// Package common holds ports shared by several application packages.
package common

import (
	"context"
	"time"

	"github.com/conseccomms/conseccomms/internal/shared/goroutine"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

// Transactional email templates.
const (
	EmailTemplatePasswordChanged = "password_changed"
	EmailTemplateTicketResolved  = "ticket_resolved"
	EmailTemplateProposalSent    = "proposal_sent"
)

const emailSendTimeout = 30 * time.Second

// EmailSender delivers a rendered template to one recipient.
type EmailSender interface {
	Send(ctx context.Context, templateID, to string, params map[string]string) error
}

// SendEmailAsync sends in the background. Failures and panics are logged
// and never reach the caller. A nil sender is a no-op.
func SendEmailAsync(sender EmailSender, log logger.Interface, templateID, to string, params map[string]string) {
	if sender == nil || to == "" {
		return
	}
	goroutine.SafeGo(log, "email:"+templateID, func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()
		if err := sender.Send(ctx, templateID, to, params); err != nil {
			log.Errorw("failed to send email", "template", templateID, "error", err)
			return
		}
		log.Infow("email sent", "template", templateID)
	})
}
