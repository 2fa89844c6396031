// Package main is the entry point for the translation-service application.
//
// @title           Translation Service API
// @version         1.0.0
// @description     Multi-tenant key/value store for localized text strings.
//
//	Records are identified by (category, locale, key) and carry a mutable
//	current value plus an immutable initial value captured at creation time.
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key identifying the calling tenant. Required on all /api/translations routes.
//
// @tag.name        Translations
// @tag.description Translation CRUD operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/translation-service/config"
	"github.com/guttosm/translation-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
