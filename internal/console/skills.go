package console

import (
	"net/http"

	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.client.ListSkills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skills, nil)
}

func (h *Handler) GetSkill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	skill, err := h.client.GetSkill(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skill, nil)
}

func (h *Handler) CreateSkill(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	skill, err := h.client.CreateSkill(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, skill, nil)
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	skill, err := h.client.UpdateSkill(c.Request.Context(), id, payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, skill, nil)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.client.DeleteSkill(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}
