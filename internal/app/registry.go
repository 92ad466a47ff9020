package app

import (
	"tb-console/internal/auth"
	"tb-console/internal/config"
	"tb-console/internal/console"
	"tb-console/internal/dashboard"
	"tb-console/internal/modules"
	"tb-console/internal/nav"
	"tb-console/internal/notes"
	"tb-console/internal/notify"
	"tb-console/internal/prefs"
	"tb-console/internal/session"
	"tb-console/internal/store"
	"tb-console/internal/updates"
	"tb-console/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	st store.Store,
	logger *zap.Logger,
) *notify.Poller {
	// --- Core state ---
	sessions := session.NewManager(st, logger)
	client := upstream.New(cfg.UpstreamBaseURL, sessions, logger)

	// --- Services ---
	prefsService := prefs.NewService(st, logger)
	updatesService := updates.NewService(st, logger)
	notesService := notes.NewService(st, logger)
	modulesService := modules.NewService(st, client, logger)
	authService := auth.NewService(client, sessions, prefsService, logger)
	dashboardService := dashboard.NewService(client, modulesService, notesService, logger)

	poller := notify.NewPoller(
		sessions, client, updatesService, st,
		notify.BellPlayer{}, cfg.PollInterval, logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	updatesHandler := updates.NewHandler(updatesService)
	notesHandler := notes.NewHandler(notesService)
	modulesHandler := modules.NewHandler(modulesService)
	prefsHandler := prefs.NewHandler(prefsService, sessions)
	notifyHandler := notify.NewHandler(poller)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	consoleHandler := console.NewHandler(client)

	// --- Routes ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		nav.RegisterRoutes(api, sessions)
		prefs.RegisterRoutes(api, prefsHandler, sessions)
		updates.RegisterRoutes(api, updatesHandler, sessions)
		notes.RegisterRoutes(api, notesHandler, sessions)
		modules.RegisterRoutes(api, modulesHandler, sessions)
		notify.RegisterRoutes(api, notifyHandler, sessions)
		dashboard.RegisterRoutes(api, dashboardHandler, sessions)
		console.RegisterRoutes(api, consoleHandler, sessions)
	}

	return poller
}
