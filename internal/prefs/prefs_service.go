package prefs

import (
	"context"
	"time"

	"tb-console/internal/store"

	"go.uber.org/zap"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	defaultPage = "/dashboard"
)

// Settings is the console-wide configuration blob, stored whole under
// simpleSettings with the field names a browser export carries. Reads
// merge the stored blob over the defaults, so a partial or older blob
// keeps working.
type Settings struct {
	SidebarCollapsed   bool   `json:"sidebarCollapsed"`
	DefaultPage        string `json:"defaultPage"`
	ShowStatsCards     bool   `json:"showStatsCards"`
	ShowRecentActivity bool   `json:"showRecentActivity"`
	ShowQuickInsights  bool   `json:"showQuickInsights"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

func defaultSettings() Settings {
	return Settings{
		DefaultPage:        defaultPage,
		ShowStatsCards:     true,
		ShowRecentActivity: true,
		ShowQuickInsights:  true,
	}
}

//go:generate mockgen -source=prefs_service.go -destination=mock/prefs_service_mock.go -package=mock
type Service interface {
	// Theme resolves the per-user theme, falling back to the shared
	// pre-login slot, then to light. userID 0 means not logged in.
	Theme(ctx context.Context, userID int) string
	ToggleTheme(ctx context.Context, userID int) (string, error)

	Settings(ctx context.Context) Settings
	SaveSettings(ctx context.Context, s Settings) (Settings, error)
}

type service struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(st store.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		store:  st,
		logger: logger.Named("prefs.service"),
		now:    time.Now,
	}
}

func themeKey(userID int) string {
	if userID == 0 {
		return store.KeyTheme
	}
	return store.ThemeKey(userID)
}

func (s *service) Theme(ctx context.Context, userID int) string {
	var theme string
	if userID != 0 && store.GetJSON(ctx, s.store, store.ThemeKey(userID), &theme) && theme != "" {
		return theme
	}
	if store.GetJSON(ctx, s.store, store.KeyTheme, &theme) && theme != "" {
		return theme
	}
	return ThemeLight
}

func (s *service) ToggleTheme(ctx context.Context, userID int) (string, error) {
	next := ThemeLight
	if s.Theme(ctx, userID) == ThemeLight {
		next = ThemeDark
	}
	if err := store.SetJSON(ctx, s.store, themeKey(userID), next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *service) Settings(ctx context.Context) Settings {
	out := defaultSettings()
	store.GetJSON(ctx, s.store, store.KeySettings, &out)
	if out.DefaultPage == "" {
		out.DefaultPage = defaultPage
	}
	return out
}

func (s *service) SaveSettings(ctx context.Context, in Settings) (Settings, error) {
	if in.DefaultPage == "" {
		in.DefaultPage = defaultPage
	}
	in.UpdatedAt = s.now().Format(time.RFC3339)

	if err := store.SetJSON(ctx, s.store, store.KeySettings, in); err != nil {
		s.logger.Error("persist settings failed", zap.Error(err))
		return Settings{}, err
	}
	s.logger.Info("settings saved", zap.String("default_page", in.DefaultPage))
	return in, nil
}
