package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/translation-service/config"
	"github.com/guttosm/translation-service/internal/circuitbreaker"
	"github.com/guttosm/translation-service/internal/repository"
	"github.com/guttosm/translation-service/internal/service"
)

// DatabaseComponents holds storage-related components.
type DatabaseComponents struct {
	TranslationRepo repository.TranslationRepositoryInterface
	LoggingService  service.LoggingService
	TranslationsCB  *circuitbreaker.CircuitBreaker
	Mongo           *repository.MongoDB
}

// InitializeDatabase sets up the translation store. With MongoDB enabled it
// connects, configures indexes and the logs TTL, and wraps the repository in
// a circuit breaker. When MongoDB is disabled or unreachable the service
// falls back to the in-memory store (no persisted audit logs in that mode).
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		log.Info().Msg("MongoDB disabled - using in-memory translation store")
		return &DatabaseComponents{
			TranslationRepo: repository.NewMemoryTranslationRepository(),
		}
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - falling back to in-memory store")
		return &DatabaseComponents{
			TranslationRepo: repository.NewMemoryTranslationRepository(),
		}
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	translationsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-translations",
	})

	translationRepo := repository.NewTranslationRepository(db)
	translationRepoWithCB := repository.NewTranslationRepositoryWithCircuitBreaker(translationRepo, translationsCB)

	logsRepo := repository.NewLogsRepository(db)
	loggingService := service.NewLoggingService(logsRepo)

	return &DatabaseComponents{
		TranslationRepo: translationRepoWithCB,
		LoggingService:  loggingService,
		TranslationsCB:  translationsCB,
		Mongo:           db,
	}
}
