package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/translation-service/config"
	"github.com/guttosm/translation-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function: logger first, then storage, then
// the router with the authentication gate. There is no runtime container;
// everything is plain constructor wiring.
func InitializeApp(cfg config.Config) *gin.Engine {
	InitializeLogger()

	dbComponents := InitializeDatabase(cfg.Database)

	routerComponents := InitializeRouter(dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
