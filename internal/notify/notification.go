package notify

import "time"

const (
	KindAssignment = "assignment"
	KindUpdate     = "update"
)

// Notification is one surfaced alert. The list is in-memory only;
// what prevents re-surfacing across restarts is the persisted seen-sets,
// not this list.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      string    `json:"type"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}
