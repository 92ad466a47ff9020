package dashboard

import (
	"net/http"

	"tb-console/internal/access"
	"tb-console/internal/domain"
	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Summary(c.Request.Context()), nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	group := r.Group("/dashboard")
	group.Use(access.Require(sessions,
		domain.RoleAdmin, domain.RoleHR, domain.RolePM, domain.RoleEmployee))
	{
		group.GET("", h.Summary)
	}
}
