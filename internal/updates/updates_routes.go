package updates

import (
	"tb-console/internal/access"
	"tb-console/internal/domain"
	"tb-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	group := r.Group("/updates")
	group.Use(access.Require(sessions,
		domain.RoleAdmin, domain.RoleHR, domain.RolePM, domain.RoleEmployee))
	{
		group.GET("", h.List)
		group.POST("", middleware.RateLimitByUser(2, 5), h.Post)
		group.DELETE("/:id", h.Delete)
	}
}
