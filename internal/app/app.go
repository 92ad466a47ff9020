package app

import (
	"tb-console/internal/config"
	"tb-console/internal/middleware"
	"tb-console/internal/notify"
	"tb-console/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App is the wired console: router plus the background poller, which
// main runs on its own cancellable context.
type App struct {
	Router *gin.Engine
	Poller *notify.Poller
}

func Build(cfg config.Config, logger *zap.Logger) (*App, error) {
	st, err := store.OpenSQLite(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Info("local store ready", zap.String("data_dir", cfg.DataDir))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ContextLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	poller := registerModules(router, cfg, st, logger)

	return &App{Router: router, Poller: poller}, nil
}
