package prefs

import (
	"net/http"

	"tb-console/internal/access"
	"tb-console/internal/domain"
	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	sessions access.SessionSource
}

func NewHandler(service Service, sessions access.SessionSource) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// Theme works logged out too: the login page is themed before any
// session exists.
func (h *Handler) Theme(c *gin.Context) {
	userID := h.sessions.Current().UserID
	theme := h.service.Theme(c.Request.Context(), userID)
	response.Success(c, http.StatusOK, gin.H{"theme": theme}, nil)
}

func (h *Handler) ToggleTheme(c *gin.Context) {
	userID := h.sessions.Current().UserID
	theme, err := h.service.ToggleTheme(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "could not persist theme", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"theme": theme}, nil)
}

func (h *Handler) Settings(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Settings(c.Request.Context()), nil)
}

func (h *Handler) SaveSettings(c *gin.Context) {
	var in Settings
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "malformed settings payload", nil)
		return
	}
	saved, err := h.service.SaveSettings(c.Request.Context(), in)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "could not persist settings", nil)
		return
	}
	response.Success(c, http.StatusOK, saved, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	theme := r.Group("/theme")
	{
		theme.GET("", h.Theme)
		theme.PUT("/toggle", h.ToggleTheme)
	}

	settings := r.Group("/settings")
	settings.Use(access.Require(sessions, domain.RoleAdmin))
	{
		settings.GET("", h.Settings)
		settings.PUT("", h.SaveSettings)
	}
}
