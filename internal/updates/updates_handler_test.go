package updates

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tb-console/internal/domain"
	"tb-console/internal/session"
	"tb-console/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessions struct {
	sess session.Session
}

func (f *fakeSessions) Current() session.Session { return f.sess }

func newTestRouter(svc Service, sessions *fakeSessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterRoutes(api, NewHandler(svc), sessions)
	return r
}

func TestDeleteEndpointGatedToAuthorOrAdmin(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(st, zap.NewNop())

	posted, err := svc.Post(context.Background(), "admin@corp.io", domain.RoleAdmin, PostUpdateRequest{Content: "quarterly goals"})
	require.NoError(t, err)

	sessions := &fakeSessions{sess: session.Session{
		Token: "t", Role: domain.RoleEmployee, UserID: 7, Email: "emp@corp.io",
	}}
	r := newTestRouter(svc, sessions)

	// An employee cannot delete an admin-authored update.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/updates/%d", posted.ID), nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	feed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed, 1, "the update survives the rejected delete")

	// The author deletes it fine.
	sessions.sess = session.Session{
		Token: "t", Role: domain.RoleAdmin, UserID: 1, Email: "admin@corp.io",
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/updates/%d", posted.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	feed, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
}
