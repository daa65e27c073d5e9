package server

import (
	"github.com/gin-gonic/gin"

	"hello-lambda-api/internal/middleware"
)

// NewEngine builds the local development HTTP server. Every request,
// whatever its path, is answered by the container's router.
func NewEngine(c *Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.StructuredLogger(c.Logger))
	engine.Use(middleware.RateLimiter(c.Config.Server.RateLimitRPS, c.Config.Server.RateLimitBurst, c.Logger))

	engine.HandleMethodNotAllowed = false
	engine.NoRoute(middleware.Dispatch(c.Router))

	return engine
}
