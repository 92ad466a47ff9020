package upstream

import (
	"context"
	"fmt"
)

func (c *Client) AllAssignments(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	err := c.get(ctx, "/api/assignments/all", &assignments)
	return assignments, err
}

func (c *Client) Assign(ctx context.Context, payload map[string]any) (Assignment, error) {
	var assignment Assignment
	err := c.post(ctx, "/api/assignments/assign", payload, &assignment)
	return assignment, err
}

func (c *Client) ReleaseAssignment(ctx context.Context, id int, payload map[string]any) error {
	return c.put(ctx, fmt.Sprintf("/api/assignments/release/%d", id), payload, nil)
}

// MyAssignments lists the logged-in employee's assignments; the poller
// diffs this feed for new-work notifications.
func (c *Client) MyAssignments(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	err := c.get(ctx, "/api/assignments/my-assignments", &assignments)
	return assignments, err
}
