package upstream

import (
	"context"
	"fmt"
)

func (c *Client) ListSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := c.get(ctx, "/api/skills", &skills)
	return skills, err
}

func (c *Client) GetSkill(ctx context.Context, id int) (Skill, error) {
	var skill Skill
	err := c.get(ctx, fmt.Sprintf("/api/skills/%d", id), &skill)
	return skill, err
}

func (c *Client) CreateSkill(ctx context.Context, payload map[string]any) (Skill, error) {
	var skill Skill
	err := c.post(ctx, "/api/skills", payload, &skill)
	return skill, err
}

func (c *Client) UpdateSkill(ctx context.Context, id int, payload map[string]any) (Skill, error) {
	var skill Skill
	err := c.put(ctx, fmt.Sprintf("/api/skills/%d", id), payload, &skill)
	return skill, err
}

func (c *Client) DeleteSkill(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/skills/%d", id))
}
