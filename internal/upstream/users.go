package upstream

import (
	"context"
	"fmt"
)

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.get(ctx, "/api/users", &users)
	return users, err
}

func (c *Client) GetUser(ctx context.Context, id int) (User, error) {
	var user User
	err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), &user)
	return user, err
}

func (c *Client) UpdateUser(ctx context.Context, id int, payload map[string]any) (User, error) {
	var user User
	err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), payload, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

func (c *Client) ListInactiveUsers(ctx context.Context, page, size int) ([]User, error) {
	var users []User
	err := c.get(ctx, fmt.Sprintf("/api/users/inactive?page=%d&size=%d", page, size), &users)
	return users, err
}

func (c *Client) ReactivateUser(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/api/users/%d/reactivate", id), nil, nil)
}

func (c *Client) GetUserStats(ctx context.Context) (UserStats, error) {
	var stats UserStats
	err := c.get(ctx, "/api/users/stats", &stats)
	return stats, err
}
