package notify

import (
	"net/http"

	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	poller *Poller
}

func NewHandler(poller *Poller) *Handler {
	return &Handler{poller: poller}
}

// List returns the current notifications and marks them read, the same
// effect as opening the bell dropdown.
func (h *Handler) List(c *gin.Context) {
	items := h.poller.Open()
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Unread(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"unread": h.poller.Unread()}, nil)
}

func (h *Handler) ClearAll(c *gin.Context) {
	h.poller.ClearAll()
	response.Success(c, http.StatusOK, gin.H{"cleared": true}, nil)
}

// Refresh forces a poll cycle ahead of the next tick.
func (h *Handler) Refresh(c *gin.Context) {
	count := h.poller.CheckNow(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"new": count}, nil)
}

// Chime serves the synthesized alert sound.
func (h *Handler) Chime(c *gin.Context) {
	c.Data(http.StatusOK, "audio/wav", ChimeWAV())
}
