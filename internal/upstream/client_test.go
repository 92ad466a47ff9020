package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok-123"}, zap.NewNop())
	_, err := c.ListSkills(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t","role":"HR","userId":3}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{}, zap.NewNop())
	resp, err := c.Login(context.Background(), "hr@corp.io", "pw")
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "t", resp.Token)
	assert.Equal(t, "HR", resp.Role)
	assert.Equal(t, 3, resp.UserID)
}

func TestClient_BackendErrorPayloadPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"skill already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "t"}, zap.NewNop())
	_, err := c.CreateSkill(context.Background(), map[string]any{"name": "Go"})

	var apiErr *Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "skill already exists", apiErr.Error())
}

func TestClient_UndecodableErrorBodyIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "t"}, zap.NewNop())
	_, err := c.MyAssignments(context.Background())

	var apiErr *Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream returned status 502", apiErr.Error())
}

func TestClient_PathsAndMethods(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.String()})
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "t"}, zap.NewNop())
	ctx := context.Background()

	_, _ = c.GetProject(ctx, 7)
	_ = c.ReactivateUser(ctx, 9)
	_, _ = c.FindCandidates(ctx, 4)
	_ = c.DeleteEmployeeSkill(ctx, 11)
	_, _ = c.ListInactiveUsers(ctx, 2, 10)

	assert.Equal(t, []call{
		{http.MethodGet, "/api/projects/7"},
		{http.MethodPut, "/api/users/9/reactivate"},
		{http.MethodPost, "/api/match/find-candidates/4"},
		{http.MethodDelete, "/api/employee-skills/11"},
		{http.MethodGet, "/api/users/inactive?page=2&size=10"},
	}, calls)
}
