package notes

// Note is one dashboard sticky note. The list is shared, not
// per-user, and lives whole in a single storage slot.
type Note struct {
	// ID is the creation time in unix milliseconds.
	ID int64 `json:"id"`

	Topic       string `json:"topic"`
	Description string `json:"description"`

	// Text is the pre-topic format. Old entries carry it instead of
	// Topic/Description and must keep rendering.
	Text string `json:"text,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// Body returns the display text for both formats.
func (n Note) Body() string {
	if n.Description != "" {
		return n.Description
	}
	return n.Text
}
