package upstream

import (
	"context"
	"fmt"
)

// FindCandidates runs the backend matching algorithm for a project and
// returns the scored candidates. All scoring lives server-side.
func (c *Client) FindCandidates(ctx context.Context, projectID int) ([]MatchResult, error) {
	var results []MatchResult
	err := c.post(ctx, fmt.Sprintf("/api/match/find-candidates/%d", projectID), nil, &results)
	return results, err
}
