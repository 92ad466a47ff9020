package access

import (
	"tb-console/internal/domain"
	"tb-console/internal/session"
)

// Decision is the render outcome for one gated route.
type Decision int

const (
	// DecisionAllow renders the wrapped content unchanged.
	DecisionAllow Decision = iota
	// DecisionLogin redirects to the login page (no session token).
	DecisionLogin
	// DecisionHome redirects to the authenticated landing page (role
	// not in the route's allowed set).
	DecisionHome
)

const (
	LoginPath = "/login"
	HomePath  = "/dashboard"
)

// Decide gates one route. Role sets are enumerated explicitly per
// route; an empty allowed set means any authenticated user. Denials are
// not logged or persisted anywhere.
func Decide(sess session.Session, allowed []domain.Role) Decision {
	if !sess.Authenticated() {
		return DecisionLogin
	}
	if len(allowed) == 0 {
		return DecisionAllow
	}
	for _, role := range allowed {
		if sess.Role == role {
			return DecisionAllow
		}
	}
	return DecisionHome
}
