package nav

import (
	"net/http"

	"tb-console/internal/access"
	"tb-console/internal/domain"
	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Navigation is everything the shell needs to draw itself for one role.
type Navigation struct {
	Menu         []Item `json:"menu"`
	Shortcuts    []Item `json:"shortcuts"`
	QuickActions []Item `json:"quickActions"`
}

func Get(c *gin.Context) {
	role := domain.Role(c.GetString("role"))
	response.Success(c, http.StatusOK, Navigation{
		Menu:         MenuFor(role),
		Shortcuts:    ShortcutsFor(role),
		QuickActions: QuickActionsFor(role),
	}, nil)
}

func RegisterRoutes(r *gin.RouterGroup, sessions access.SessionSource) {
	// Authentication only: an unknown role still gets the fallback menu.
	r.GET("/nav", access.Require(sessions), Get)
}
