package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conseccomms/conseccomms/internal/application/common"
	dashboardUsecases "github.com/conseccomms/conseccomms/internal/application/dashboard/usecases"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	settingUsecases "github.com/conseccomms/conseccomms/internal/application/setting/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/infrastructure/auth"
	"github.com/conseccomms/conseccomms/internal/infrastructure/cache"
	"github.com/conseccomms/conseccomms/internal/infrastructure/config"
	"github.com/conseccomms/conseccomms/internal/infrastructure/email"
	"github.com/conseccomms/conseccomms/internal/infrastructure/metrics"
	"github.com/conseccomms/conseccomms/internal/infrastructure/permission"
	"github.com/conseccomms/conseccomms/internal/infrastructure/push"
	shareddb "github.com/conseccomms/conseccomms/internal/shared/db"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/services/markdown"
)

const (
	redisPingTimeout = 3 * time.Second

	authRateLimit  = 20
	authRateWindow = time.Minute
)

// services holds infrastructure services shared by several use cases.
// The interface-typed fields stay nil when the collaborator is disabled.
type services struct {
	metrics     *metrics.Metrics
	classifier  *metrics.InstrumentedClassifier
	synthesizer *insight.Synthesizer
	markdown    markdown.Renderer
	txManager   *shareddb.TransactionManager

	jwtService *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	enforcer   *permission.Enforcer

	settingsStore  *cache.SettingsSessionStore
	dashboardCache dashboardUsecases.SummaryCache
	emailSender    common.EmailSender
	pusher         notificationUsecases.Pusher
	pushCheck      settingUsecases.PushTargetValidator
}

func newServices(c *Container) (*services, error) {
	cfg := c.cfg
	log := c.log

	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitAllPermissions(enforcer, log); err != nil {
		return nil, err
	}

	s := &services{
		metrics:     m,
		classifier:  metrics.NewInstrumentedClassifier(insight.NewClassifier(), m),
		synthesizer: insight.NewSynthesizer(insight.WithTimeMixing(cfg.Insight.MixTimeSeed)),
		markdown:    markdown.NewRenderer(),
		txManager:   shareddb.NewTransactionManager(c.db),
		jwtService:  auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes),
		hasher:      auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		enforcer:    enforcer,
		settingsStore: cache.NewSettingsSessionStore(
			time.Duration(cfg.Session.SettingsTTLMinutes) * time.Minute),
	}

	if c.redis != nil {
		ttl := time.Duration(cfg.Redis.DashboardTTLSeconds) * time.Second
		s.dashboardCache = cache.NewRedisDashboardCache(c.redis, ttl)
	}

	s.emailSender = newEmailSender(cfg, log)
	if p := newPusher(cfg, log); p != nil {
		s.pusher = p
		s.pushCheck = p
	}

	return s, nil
}

// newRedisClient returns nil when Redis is disabled or unreachable. The
// dashboard cache and rate limiting are then skipped.
func newRedisClient(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, dashboard cache and rate limiting are off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, continuing without it", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}

	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	return client
}

func newEmailSender(cfg *config.Config, log logger.Interface) common.EmailSender {
	sender, err := email.NewSMTPEmailService(cfg.Email, log)
	if err != nil {
		if !errors.Is(err, email.ErrEmailServiceNotConfigured) {
			log.Errorw("failed to initialize email service", "error", err)
		}
		return nil
	}
	return sender
}

// newPusher returns nil when push delivery is disabled. Callers must not
// store the nil pointer in an interface.
func newPusher(cfg *config.Config, log logger.Interface) *push.ShoutrrrPusher {
	pusher, err := push.NewShoutrrrPusher(cfg.Push, log)
	if err != nil {
		if !errors.Is(err, push.ErrPushNotConfigured) {
			log.Errorw("failed to initialize push delivery", "error", err)
		}
		return nil
	}
	return pusher
}
