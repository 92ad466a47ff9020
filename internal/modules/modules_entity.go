package modules

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
)

// Module is one tracked unit of project work. The per-project list
// lives whole in a single storage slot and is the only source for the
// project's progress number.
type Module struct {
	// ID is the creation time in unix milliseconds.
	ID int64 `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// Status is PENDING or COMPLETED; Toggle flips between the two.
	Status string `json:"status"`
}

// Progress is the completion percentage of one list, rounded to the
// nearest integer. An empty list is 0, not an error.
func Progress(list []Module) int {
	if len(list) == 0 {
		return 0
	}
	completed := 0
	for _, m := range list {
		if m.Status == StatusCompleted {
			completed++
		}
	}
	return int(float64(completed)/float64(len(list))*100 + 0.5)
}
