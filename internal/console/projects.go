package console

import (
	"net/http"

	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.client.ListProjects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, projects, nil)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	project, err := h.client.GetProject(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, project, nil)
}

func (h *Handler) CreateProject(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	project, err := h.client.CreateProject(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project, nil)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	project, err := h.client.UpdateProject(c.Request.Context(), id, payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, project, nil)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.client.DeleteProject(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}

func (h *Handler) ProjectRequirements(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	reqs, err := h.client.RequirementsByProject(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reqs, nil)
}

func (h *Handler) AddRequirement(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	req, err := h.client.AddRequirement(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req, nil)
}

func (h *Handler) UpdateRequirement(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	req, err := h.client.UpdateRequirement(c.Request.Context(), id, payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req, nil)
}

func (h *Handler) DeleteRequirement(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.client.DeleteRequirement(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}
