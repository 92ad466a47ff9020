package auth

import (
	"tb-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	session := r.Group("/session")
	{
		session.POST("", middleware.RateLimitByIP(0.5, 5), h.Login)
		session.GET("", h.Current)
		session.DELETE("", h.Logout)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.2, 3), h.Register)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.2, 3), h.ForgotPassword)
	}
}
