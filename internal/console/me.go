package console

import (
	"net/http"

	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Me returns the logged-in user's own profile, for the account page.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt("user_id")
	user, err := h.client.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user, nil)
}
