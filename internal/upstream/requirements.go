package upstream

import (
	"context"
	"fmt"
)

func (c *Client) RequirementsByProject(ctx context.Context, projectID int) ([]Requirement, error) {
	var reqs []Requirement
	err := c.get(ctx, fmt.Sprintf("/api/project-requirements/project/%d", projectID), &reqs)
	return reqs, err
}

func (c *Client) AddRequirement(ctx context.Context, payload map[string]any) (Requirement, error) {
	var req Requirement
	err := c.post(ctx, "/api/project-requirements", payload, &req)
	return req, err
}

func (c *Client) UpdateRequirement(ctx context.Context, id int, payload map[string]any) (Requirement, error) {
	var req Requirement
	err := c.put(ctx, fmt.Sprintf("/api/project-requirements/%d", id), payload, &req)
	return req, err
}

func (c *Client) DeleteRequirement(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/project-requirements/%d", id))
}
