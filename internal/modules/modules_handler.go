package modules

import (
	"net/http"
	"strconv"

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

func projectIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("projectId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid project id", nil)
		return 0, false
	}
	return id, true
}

func moduleIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("moduleId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid module id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	list, err := h.service.List(c.Request.Context(), projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modules": list, "progress": Progress(list)}, nil)
}

func (h *Handler) Add(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	var req AddModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	module, err := h.service.Add(c.Request.Context(), projectID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, module, nil)
}

func (h *Handler) Toggle(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	moduleID, ok := moduleIDParam(c)
	if !ok {
		return
	}

	module, err := h.service.Toggle(c.Request.Context(), projectID, moduleID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, module, nil)
}

func (h *Handler) Remove(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	moduleID, ok := moduleIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), projectID, moduleID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": moduleID}, nil)
}

func (h *Handler) Progress(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	progress, err := h.service.Progress(c.Request.Context(), projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"projectId": projectID, "progress": progress}, nil)
}

func (h *Handler) ProgressAll(c *gin.Context) {
	all, err := h.service.ProgressAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, all, nil)
}
