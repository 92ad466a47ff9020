package console

import (
	"net/http"

	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) MySkills(c *gin.Context) {
	skills, err := h.client.MySkills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skills, nil)
}

func (h *Handler) ListEmployeeSkills(c *gin.Context) {
	skills, err := h.client.ListEmployeeSkills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skills, nil)
}

func (h *Handler) UserSkills(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	skills, err := h.client.UserSkills(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skills, nil)
}

func (h *Handler) AddEmployeeSkill(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	skill, err := h.client.AddEmployeeSkill(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, skill, nil)
}

func (h *Handler) UpdateEmployeeSkill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	skill, err := h.client.UpdateEmployeeSkill(c.Request.Context(), id, payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skill, nil)
}

func (h *Handler) DeleteEmployeeSkill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.client.DeleteEmployeeSkill(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}
