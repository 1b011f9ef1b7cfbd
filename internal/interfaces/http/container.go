package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/conseccomms/conseccomms/internal/infrastructure/config"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases
// and handlers. It wires everything together and releases external
// connections in Shutdown().
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	settingsMiddleware   *middleware.SettingsMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	authRateLimiter      *middleware.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
// Optional collaborators (Redis, SMTP, push) degrade to disabled when they
// are not configured or unreachable.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.redis = newRedisClient(cfg, log)
	c.repos = newRepositories(db)

	svcs, err := newServices(c)
	if err != nil {
		if c.redis != nil {
			_ = c.redis.Close()
		}
		return nil, err
	}
	c.svcs = svcs

	c.ucs = newUseCases(c)
	c.hdlrs = newHandlers(c)
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtService, c.log)
	c.settingsMiddleware = middleware.NewSettingsMiddleware(c.ucs.getSettings, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, c.log)
	if c.redis != nil {
		c.authRateLimiter = middleware.NewRateLimiter(c.redis, "auth", authRateLimit, authRateWindow)
	}
}

// Engine returns the gin engine with every route registered.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections owned by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
