package notify

import (
	"tb-console/internal/access"
	"tb-console/internal/domain"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	group := r.Group("/notifications")
	group.Use(access.Require(sessions,
		domain.RoleAdmin, domain.RoleHR, domain.RolePM, domain.RoleEmployee))
	{
		group.GET("", h.List)
		group.GET("/unread", h.Unread)
		group.DELETE("", h.ClearAll)
		group.POST("/refresh", h.Refresh)
		group.GET("/chime", h.Chime)
	}
}
