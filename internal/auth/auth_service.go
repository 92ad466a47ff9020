package auth

import (
	"context"

	"tb-console/internal/domain"
	"tb-console/internal/prefs"
	"tb-console/internal/session"
	"tb-console/internal/upstream"

	"go.uber.org/zap"
)

// Authenticator is the slice of the backend client the session
// endpoints need.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (upstream.LoginResponse, error)
	Register(ctx context.Context, req upstream.RegisterRequest) error
	ForgotPassword(ctx context.Context, email string) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) SessionResponse
	Register(ctx context.Context, req RegisterRequest) error
	ForgotPassword(ctx context.Context, email string) error
}

type service struct {
	backend  Authenticator
	sessions *session.Manager
	prefs    prefs.Service
	logger   *zap.Logger
}

func NewService(backend Authenticator, sessions *session.Manager, prefsSvc prefs.Service, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		backend:  backend,
		sessions: sessions,
		prefs:    prefsSvc,
		logger:   logger.Named("auth.service"),
	}
}

// Login exchanges credentials with the backend and installs the
// session. The redirect is the configured landing page, so admins can
// point every fresh login somewhere other than the dashboard.
func (s *service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	resp, err := s.backend.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("login rejected", zap.String("email", req.Email), zap.Error(err))
		return SessionResponse{}, err
	}

	sess := s.sessions.Set(ctx, resp.Token, domain.Role(resp.Role), resp.UserID)
	s.logger.Info("login",
		zap.String("email", sess.Email),
		zap.String("role", string(sess.Role)),
	)

	return SessionResponse{
		Authenticated: true,
		Email:         sess.Email,
		Role:          string(sess.Role),
		UserID:        sess.UserID,
		Theme:         s.prefs.Theme(ctx, sess.UserID),
		Redirect:      s.prefs.Settings(ctx).DefaultPage,
	}, nil
}

func (s *service) Logout(ctx context.Context) {
	sess := s.sessions.Current()
	s.sessions.Clear(ctx)
	if sess.Authenticated() {
		s.logger.Info("logout", zap.String("email", sess.Email))
	}
}

func (s *service) Current(ctx context.Context) SessionResponse {
	sess := s.sessions.Current()
	if !sess.Authenticated() {
		return SessionResponse{Redirect: "/login"}
	}
	return SessionResponse{
		Authenticated: true,
		Email:         sess.Email,
		Role:          string(sess.Role),
		UserID:        sess.UserID,
		Theme:         s.prefs.Theme(ctx, sess.UserID),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	return s.backend.Register(ctx, upstream.RegisterRequest{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		Phone:    req.Phone,
		Password: req.Password,
	})
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	return s.backend.ForgotPassword(ctx, email)
}
