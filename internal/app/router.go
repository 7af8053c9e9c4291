// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/labelforge/label-service/config"
	"github.com/labelforge/label-service/internal/http"
	"github.com/labelforge/label-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoHealthChecker adapts the MongoDB ping to the health handler interface.
type mongoHealthChecker struct {
	check func(context.Context) error
}

func (m mongoHealthChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.check(ctx)
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	composer service.LabelComposer,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var historyService service.RenderHistoryService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		historyService = dbComponents.HistoryService
	}

	handler := http.NewHandler(composer, historyService)
	healthHandler := http.NewHealthHandler()

	// Register database health and circuit breakers for monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoHealthChecker{check: dbComponents.DB.HealthCheck})
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.HistoryCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_render_history", dbComponents.HistoryCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		HashedAPIKeys:     cfg.Auth.HashedAPIKeys,
		JWTSecret:         cfg.Auth.JWTSecretKey,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		HistoryService:    historyService,
		Composer:          composer,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
