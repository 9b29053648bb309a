package main

import (
	"os"
	"time"

	"homevalue-aggregator/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupCORS configures CORS middleware
func setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	allowedOrigins := []string{"http://localhost:3000"}

	if os.Getenv("ENV") == "production" {
		corsConfig.AllowAllOrigins = false
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}

// setupMiddleware wires the middleware chain
func (a *App) setupMiddleware() {
	a.Router.Use(middleware.RequestID())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(gin.Recovery())
	a.Router.Use(setupCORS())
	a.Router.Use(middleware.SecureHeaders())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(middleware.ErrorHandler())
}
