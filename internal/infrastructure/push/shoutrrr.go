// Package push delivers desktop notifications through shoutrrr services
// such as ntfy, gotify or pushover. Every user pushes to their own target.
package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/nicholas-fedor/shoutrrr"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	sharedConfig "github.com/conseccomms/conseccomms/internal/shared/config"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

const (
	defaultTimeout = 10 * time.Second
	// Prefix for pushes that should stay on screen until the user acts.
	stickyTitlePrefix = "Action required: "
)

var (
	ErrPushNotConfigured = errors.New("push delivery is not configured")
	ErrNoTarget          = errors.New("no push target")
)

// sender is satisfied by *router.ServiceRouter.
type sender interface {
	Send(message string, params *stypes.Params) []error
}

type senderFactory func(target string) (sender, error)

type ShoutrrrPusher struct {
	newSender senderFactory
	allowed   map[string]bool
	logger    logger.Interface
}

// NewShoutrrrPusher returns ErrPushNotConfigured when push is disabled.
func NewShoutrrrPusher(cfg sharedConfig.PushConfig, appLogger logger.Interface) (*ShoutrrrPusher, error) {
	if !cfg.Enabled {
		return nil, ErrPushNotConfigured
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	factory := func(target string) (sender, error) {
		router, err := shoutrrr.CreateSender(target)
		if err != nil {
			return nil, err
		}
		router.Timeout = timeout
		router.SetLogger(log.New(io.Discard, "", 0))
		return router, nil
	}

	appLogger.Infow("push delivery initialized", "allowed_services", cfg.AllowedServices)
	return newShoutrrrPusher(factory, cfg.AllowedServices, appLogger), nil
}

func newShoutrrrPusher(factory senderFactory, allowedServices []string, appLogger logger.Interface) *ShoutrrrPusher {
	allowed := make(map[string]bool, len(allowedServices))
	for _, s := range allowedServices {
		allowed[strings.ToLower(s)] = true
	}
	return &ShoutrrrPusher{newSender: factory, allowed: allowed, logger: appLogger}
}

// ValidateTarget checks that target names an allowed service and that
// shoutrrr can build a sender for it. Errors never echo the URL, which
// usually carries a token.
func (p *ShoutrrrPusher) ValidateTarget(target string) error {
	_, err := p.senderFor(target)
	return err
}

func (p *ShoutrrrPusher) senderFor(target string) (sender, error) {
	if target == "" {
		return nil, ErrNoTarget
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("invalid push URL")
	}
	if len(p.allowed) > 0 && !p.allowed[strings.ToLower(u.Scheme)] {
		return nil, fmt.Errorf("push service %q is not allowed", u.Scheme)
	}
	s, err := p.newSender(target)
	if err != nil {
		return nil, fmt.Errorf("invalid push URL for service %q", u.Scheme)
	}
	return s, nil
}

// Push sends msg to msg.Target only and returns the first failure. The
// router enforces its own timeout.
func (p *ShoutrrrPusher) Push(ctx context.Context, msg usecases.PushMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s, err := p.senderFor(msg.Target)
	if err != nil {
		return err
	}

	title := msg.Title
	if !msg.AutoDismiss {
		title = stickyTitlePrefix + title
	}
	params := stypes.Params{}
	params.SetTitle(title)

	for _, err := range s.Send(msg.Message, &params) {
		if err != nil {
			return fmt.Errorf("failed to deliver push: %w", err)
		}
	}

	p.logger.Debugw("push delivered",
		"target", sharedConfig.RedactPushURL(msg.Target),
		"category", msg.Category,
		"auto_dismiss", msg.AutoDismiss,
	)
	return nil
}
