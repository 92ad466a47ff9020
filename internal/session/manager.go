package session

import (
	"context"
	"sync"

	"tb-console/internal/domain"
	"tb-console/internal/store"

	"go.uber.org/zap"
)

// Manager is the process-wide session store. The current session is
// cached in memory and mirrored to the KV store under authData so it
// survives restarts. Login fully overwrites it; logout clears every
// field and removes the persisted copy.
type Manager struct {
	mu      sync.RWMutex
	current Session
	store   store.Store
	logger  *zap.Logger
}

func NewManager(st store.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.L()
	}
	m := &Manager{store: st, logger: logger.Named("session.manager")}
	m.restore()
	return m
}

func (m *Manager) restore() {
	var sess Session
	if store.GetJSON(context.Background(), m.store, store.KeyAuthData, &sess) {
		m.current = sess
		m.logger.Info("session restored",
			zap.String("role", string(sess.Role)),
			zap.Int("user_id", sess.UserID),
		)
	}
}

// Set replaces the session after a successful login. Claims are decoded
// here, once; a decode failure leaves email (and role, if the caller
// passed none) blank but is not fatal.
func (m *Manager) Set(ctx context.Context, token string, role domain.Role, userID int) Session {
	sess := Session{Token: token, Role: role, UserID: userID}

	claims, err := DecodeClaims(token)
	if err != nil {
		m.logger.Warn("token decode failed", zap.Error(err))
	} else {
		sess.Email = claims.Email
		if sess.Role == "" {
			sess.Role = domain.Role(claims.Role)
		}
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	if err := store.SetJSON(ctx, m.store, store.KeyAuthData, sess); err != nil {
		m.logger.Error("persist session failed", zap.Error(err))
	}
	return sess
}

// Clear logs the user out. All fields go back to their zero values.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()

	if err := m.store.Delete(ctx, store.KeyAuthData); err != nil {
		m.logger.Error("delete persisted session failed", zap.Error(err))
	}
}

// Token satisfies the upstream client's token source. Empty when
// logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Token
}

func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
