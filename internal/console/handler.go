// Package console is the thin proxy layer between the browser UI and
// the TalentBridge backend. Handlers forward payloads as-is and pass
// backend errors through with their original status; every route is
// gated with the literal role set of the screen it backs.
package console

import (
	"errors"
	"net/http"
	"strconv"

	"tb-console/internal/shared/apperror"
	"tb-console/internal/shared/response"
	"tb-console/internal/upstream"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *upstream.Client
}

func NewHandler(client *upstream.Client) *Handler {
	return &Handler{client: client}
}

func writeError(c *gin.Context, err error) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		response.Error(c, upErr.Status, apperror.CodeUpstreamError, upErr.Error(), nil)
		return
	}
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// bindPayload accepts any JSON object. Field validation is the
// backend's job; the console does not duplicate its rules.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "malformed JSON payload", nil)
		return nil, false
	}
	return payload, true
}
