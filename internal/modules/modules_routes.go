package modules

import (
	"tb-console/internal/access"
	"tb-console/internal/domain"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	group := r.Group("/projects/:projectId/modules")
	group.Use(access.Require(sessions, domain.RoleAdmin, domain.RolePM))
	{
		group.GET("", h.List)
		group.POST("", h.Add)
		group.PUT("/:moduleId/toggle", h.Toggle)
		group.DELETE("/:moduleId", h.Remove)
		group.GET("/progress", h.Progress)
	}

	progress := r.Group("/progress")
	progress.Use(access.Require(sessions, domain.RoleAdmin, domain.RolePM))
	{
		progress.GET("", h.ProgressAll)
	}
}
