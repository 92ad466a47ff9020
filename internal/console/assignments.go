package console

import (
	"net/http"

	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AllAssignments(c *gin.Context) {
	assignments, err := h.client.AllAssignments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, assignments, nil)
}

func (h *Handler) MyAssignments(c *gin.Context) {
	assignments, err := h.client.MyAssignments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, assignments, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	assignment, err := h.client.Assign(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, assignment, nil)
}

func (h *Handler) ReleaseAssignment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if err := h.client.ReleaseAssignment(c.Request.Context(), id, payload); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"released": id}, nil)
}

// FindCandidates runs the skill match for a project and returns ranked
// candidates.
func (h *Handler) FindCandidates(c *gin.Context) {
	projectID, ok := idParam(c, "projectId")
	if !ok {
		return
	}
	matches, err := h.client.FindCandidates(c.Request.Context(), projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, matches, nil)
}

func (h *Handler) UserStats(c *gin.Context) {
	stats, err := h.client.GetUserStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}
