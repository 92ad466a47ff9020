package auth

import (
	"errors"
	"net/http"

	"tb-console/internal/shared/apperror"
	"tb-console/internal/shared/response"
	"tb-console/internal/upstream"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// writeError passes backend rejections through with their own status,
// so "invalid credentials" stays a 401 rather than becoming a 502.
func writeError(c *gin.Context, err error) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		response.Error(c, upErr.Status, apperror.CodeUpstreamError, upErr.Error(), nil)
		return
	}
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess, nil)
}

func (h *Handler) Current(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Current(c.Request.Context()), nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"redirect": "/login"}, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"registered": true}, nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true}, nil)
}
