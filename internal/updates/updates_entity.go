package updates

import "tb-console/internal/domain"

// Update is one posted team announcement. The feed lives whole in a
// single storage slot, newest first; entries are created and deleted,
// never edited in place.
type Update struct {
	// ID is the creation time in unix milliseconds.
	ID int64 `json:"id"`

	Content string      `json:"content"`
	Author  string      `json:"author"` // poster's email
	Role    domain.Role `json:"role"`   // poster's role

	// To targets a role, or ALL for broadcast.
	To string `json:"to"`
	// TargetUser narrows to one email, or ALL for every user of To.
	TargetUser string `json:"targetUser"`

	// Timestamp is a display string, set at post time.
	Timestamp string `json:"timestamp"`
}

// VisibleTo reports whether the update should surface for the given
// identity. Three predicates, all must pass: not self-authored, role
// targeting matches, user targeting matches. The author exemption means
// posters never get notified about their own updates.
func (u Update) VisibleTo(role domain.Role, email string) bool {
	if u.Author == email {
		return false
	}
	if u.To != domain.AudienceAll && u.To != string(role) {
		return false
	}
	if u.TargetUser != "" && u.TargetUser != domain.AudienceAll && u.TargetUser != email {
		return false
	}
	return true
}
