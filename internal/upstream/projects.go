package upstream

import (
	"context"
	"fmt"
)

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := c.get(ctx, "/api/projects", &projects)
	return projects, err
}

func (c *Client) GetProject(ctx context.Context, id int) (Project, error) {
	var project Project
	err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), &project)
	return project, err
}

func (c *Client) CreateProject(ctx context.Context, payload map[string]any) (Project, error) {
	var project Project
	err := c.post(ctx, "/api/projects", payload, &project)
	return project, err
}

func (c *Client) UpdateProject(ctx context.Context, id int, payload map[string]any) (Project, error) {
	var project Project
	err := c.put(ctx, fmt.Sprintf("/api/projects/%d", id), payload, &project)
	return project, err
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/projects/%d", id))
}
