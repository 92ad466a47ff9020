package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func userRouter(limit gin.HandlerFunc, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/thing", func(c *gin.Context) {
		if email != "" {
			c.Set("user_email", email)
		}
		c.Next()
	}, limit, func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/thing", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitByUserExhaustsBurst(t *testing.T) {
	r := userRouter(RateLimitByUser(1, 2), "emp@corp.io")

	assert.Equal(t, http.StatusCreated, post(r))
	assert.Equal(t, http.StatusCreated, post(r))
	assert.Equal(t, http.StatusTooManyRequests, post(r))
}

func TestRateLimitByUserBudgetsArePerEmail(t *testing.T) {
	limit := RateLimitByUser(1, 1)

	one := userRouter(limit, "one@corp.io")
	two := userRouter(limit, "two@corp.io")

	assert.Equal(t, http.StatusCreated, post(one))
	assert.Equal(t, http.StatusTooManyRequests, post(one))
	assert.Equal(t, http.StatusCreated, post(two))
}

func TestRateLimitByUserSkipsAnonymous(t *testing.T) {
	r := userRouter(RateLimitByUser(1, 1), "")

	assert.Equal(t, http.StatusCreated, post(r))
	assert.Equal(t, http.StatusCreated, post(r))
}
