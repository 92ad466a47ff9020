package domain

// Role is the sole basis for route and menu gating. There is no
// hierarchy: every gated route enumerates the full set of roles it
// allows, and ADMIN inherits nothing implicitly.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RolePM       Role = "PM"
	RoleEmployee Role = "EMPLOYEE"
)

// AudienceAll is the broadcast target for team updates ("to" field).
const AudienceAll = "ALL"

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RolePM, RoleEmployee:
		return true
	default:
		return false
	}
}

// AllRoles in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHR, RolePM, RoleEmployee}
}
