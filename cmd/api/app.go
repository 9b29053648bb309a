package main

import (
	"net/http"

	"homevalue-aggregator/internal/handlers"
	"homevalue-aggregator/internal/middleware"
	"homevalue-aggregator/internal/services"
	"homevalue-aggregator/internal/transformers"
	"homevalue-aggregator/internal/validators"
	"homevalue-aggregator/pkg/avm"
	"homevalue-aggregator/pkg/config"
	"homevalue-aggregator/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Providers       []avm.Provider
	PropertyHandler *handlers.PropertyHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// provider clients, in configuration order
	a.Providers = []avm.Provider{
		avm.NewProvider1(a.Config.Providers.Provider1.BaseURL, a.Config.Providers.Provider1.APIKey),
		avm.NewProvider2(a.Config.Providers.Provider2.BaseURL, a.Config.Providers.Provider2.APIKey),
	}

	// transformers
	standardizer := transformers.NewPropertyStandardizer()

	// validators
	addressValidator := validators.NewAddressValidator()

	// services
	aggregatorService := services.NewAggregatorService(a.Providers, standardizer, addressValidator)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(aggregatorService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}
