package main

import (
	"context"
	"time"

	"tb-console/internal/app"
	"tb-console/internal/bootstrap"
	"tb-console/internal/config"
	"tb-console/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()

	a, err := app.Build(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	pollCtx, stopPoller := context.WithCancel(context.Background())
	go a.Poller.Run(pollCtx)

	bootstrap.StartHTTPServer(
		a.Router,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
		stopPoller,
	)
}
