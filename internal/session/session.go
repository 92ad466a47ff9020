package session

import (
	"tb-console/internal/domain"
)

// Session is the authenticated identity held by the console. A non-empty
// token means the user is authenticated; Role is authoritative for every
// gating decision. Email is derived from the token claims exactly once,
// when the session is created, and stored alongside the raw fields so no
// caller ever re-decodes the token.
type Session struct {
	Token  string      `json:"token"`
	Role   domain.Role `json:"role"`
	UserID int         `json:"userId"`
	Email  string      `json:"email"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
