package upstream

import (
	"context"
	"fmt"
)

func (c *Client) MySkills(ctx context.Context) ([]EmployeeSkill, error) {
	var skills []EmployeeSkill
	err := c.get(ctx, "/api/employee-skills/my-skills", &skills)
	return skills, err
}

func (c *Client) ListEmployeeSkills(ctx context.Context) ([]EmployeeSkill, error) {
	var skills []EmployeeSkill
	err := c.get(ctx, "/api/employee-skills", &skills)
	return skills, err
}

func (c *Client) UserSkills(ctx context.Context, userID int) ([]EmployeeSkill, error) {
	var skills []EmployeeSkill
	err := c.get(ctx, fmt.Sprintf("/api/employee-skills/user/%d", userID), &skills)
	return skills, err
}

// AddEmployeeSkill posts a skill claim. The backend fills userId from
// the auth principal for employees; ADMIN/HR may pass one explicitly.
func (c *Client) AddEmployeeSkill(ctx context.Context, payload map[string]any) (EmployeeSkill, error) {
	var skill EmployeeSkill
	err := c.post(ctx, "/api/employee-skills", payload, &skill)
	return skill, err
}

func (c *Client) UpdateEmployeeSkill(ctx context.Context, id int, payload map[string]any) (EmployeeSkill, error) {
	var skill EmployeeSkill
	err := c.put(ctx, fmt.Sprintf("/api/employee-skills/%d", id), payload, &skill)
	return skill, err
}

func (c *Client) DeleteEmployeeSkill(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/employee-skills/%d", id))
}
