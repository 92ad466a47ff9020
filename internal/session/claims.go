package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend-issued token payload the console
// cares about.
type Claims struct {
	Email string
	Role  string
}

var errNoClaims = errors.New("token carries no map claims")

// DecodeClaims reads the claims from the token's payload segment without
// verifying the signature. The backend re-enforces authorization on
// every call; the decoded claims drive UI decisions only, so a decode
// here is a convenience, not a security control.
func DecodeClaims(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errNoClaims
	}

	var c Claims
	if email, ok := mapClaims["email"].(string); ok {
		c.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		c.Role = role
	}
	return c, nil
}
