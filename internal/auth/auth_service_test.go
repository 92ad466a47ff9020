package auth

import (
	"context"
	"testing"

	"tb-console/internal/prefs"
	"tb-console/internal/session"
	"tb-console/internal/store"
	"tb-console/internal/upstream"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	LoginFunc          func(ctx context.Context, email, password string) (upstream.LoginResponse, error)
	RegisterFunc       func(ctx context.Context, req upstream.RegisterRequest) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (upstream.LoginResponse, error) {
	return f.LoginFunc(ctx, email, password)
}

func (f *fakeBackend) Register(ctx context.Context, req upstream.RegisterRequest) error {
	return f.RegisterFunc(ctx, req)
}

func (f *fakeBackend) ForgotPassword(ctx context.Context, email string) error {
	return f.ForgotPasswordFunc(ctx, email)
}

func signedToken(t *testing.T, email, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  role,
	})
	s, err := tok.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)
	return s
}

func newTestService(t *testing.T, backend Authenticator) (Service, *session.Manager, store.Store) {
	t.Helper()
	st := store.NewMemory()
	sessions := session.NewManager(st, zap.NewNop())
	prefsSvc := prefs.NewService(st, zap.NewNop())
	return NewService(backend, sessions, prefsSvc, zap.NewNop()), sessions, st
}

func TestLoginInstallsSessionAndRedirects(t *testing.T) {
	token := signedToken(t, "hr@tb.io", "HR")
	backend := &fakeBackend{LoginFunc: func(_ context.Context, email, password string) (upstream.LoginResponse, error) {
		assert.Equal(t, "hr@tb.io", email)
		assert.Equal(t, "secret", password)
		return upstream.LoginResponse{Token: token, Role: "HR", UserID: 3}, nil
	}}
	svc, sessions, st := newTestService(t, backend)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, st, store.KeySettings, prefs.Settings{DefaultPage: "/employees"}))

	resp, err := svc.Login(ctx, LoginRequest{Email: "hr@tb.io", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, resp.Authenticated)
	assert.Equal(t, "hr@tb.io", resp.Email)
	assert.Equal(t, "HR", resp.Role)
	assert.Equal(t, "/employees", resp.Redirect, "configured landing page wins over the dashboard")
	assert.Equal(t, prefs.ThemeLight, resp.Theme)

	sess := sessions.Current()
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "hr@tb.io", sess.Email)
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	backend := &fakeBackend{LoginFunc: func(context.Context, string, string) (upstream.LoginResponse, error) {
		return upstream.LoginResponse{}, &upstream.Error{Status: 401, Message: "Invalid credentials"}
	}}
	svc, sessions, _ := newTestService(t, backend)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "x@tb.io", Password: "nope"})
	var upErr *upstream.Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, 401, upErr.Status)
	assert.False(t, sessions.Current().Authenticated())
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	token := signedToken(t, "emp@tb.io", "EMPLOYEE")
	backend := &fakeBackend{LoginFunc: func(context.Context, string, string) (upstream.LoginResponse, error) {
		return upstream.LoginResponse{Token: token, Role: "EMPLOYEE", UserID: 7}, nil
	}}
	svc, sessions, st := newTestService(t, backend)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Email: "emp@tb.io", Password: "pw"})
	require.NoError(t, err)

	svc.Logout(ctx)
	assert.False(t, sessions.Current().Authenticated())
	_, found, err := st.Get(ctx, store.KeyAuthData)
	require.NoError(t, err)
	assert.False(t, found, "persisted session removed")

	resp := svc.Current(ctx)
	assert.False(t, resp.Authenticated)
	assert.Equal(t, "/login", resp.Redirect)
}

func TestRegisterForwardsPayload(t *testing.T) {
	var got upstream.RegisterRequest
	backend := &fakeBackend{RegisterFunc: func(_ context.Context, req upstream.RegisterRequest) error {
		got = req
		return nil
	}}
	svc, _, _ := newTestService(t, backend)

	err := svc.Register(context.Background(), RegisterRequest{
		Username: "jdoe",
		FullName: "J. Doe",
		Email:    "jdoe@tb.io",
		Role:     "EMPLOYEE",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got.Username)
	assert.Equal(t, "EMPLOYEE", got.Role)
}
