package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/translation-service/config"
	"github.com/guttosm/translation-service/internal/auth"
	"github.com/guttosm/translation-service/internal/http"
	"github.com/guttosm/translation-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.TranslationHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter wires the authenticator, handlers, and router
// configuration from the database components and app config.
func InitializeRouter(dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	credentialStore := auth.NewCredentialStore(cfg.Auth.APIKeys)
	if credentialStore.Len() == 0 {
		log.Warn().Msg("No API keys configured - all protected requests will be rejected")
	}
	authenticator := auth.NewAuthenticator(credentialStore)

	translationService := service.NewTranslationService(dbComponents.TranslationRepo)
	handler := http.NewTranslationHandler(translationService, dbComponents.LoggingService)

	healthHandler := http.NewHealthHandler()
	if dbComponents.TranslationsCB != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_translations", dbComponents.TranslationsCB)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Authenticator:  authenticator,
		LoggingService: dbComponents.LoggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
