package notes

import (
	"net/http"
	"strconv"

	"tb-console/internal/access"
	"tb-console/internal/domain"
	"tb-console/internal/middleware"
	"tb-console/internal/shared/apperror"
	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, nil)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	note, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, note, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid note id", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	group := r.Group("/notes")
	group.Use(access.Require(sessions,
		domain.RoleAdmin, domain.RoleHR, domain.RolePM, domain.RoleEmployee))
	{
		group.GET("", h.List)
		group.POST("", middleware.RateLimitByUser(2, 5), h.Add)
		group.DELETE("/:id", h.Delete)
	}
}
