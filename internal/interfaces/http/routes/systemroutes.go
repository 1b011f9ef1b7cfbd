package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemRouteConfig struct {
	MetricsHandler http.Handler
	Version        string
}

// SetupSystemRoutes registers unauthenticated probes. /metrics is only
// mounted when a handler is configured.
func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": config.Version,
		})
	})

	if config.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(config.MetricsHandler))
	}
}
