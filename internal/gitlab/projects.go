// internal/gitlab/projects.go
package gitlab

import (
	"context"

	"gitlab-timesheet/internal/model"
)

// DiscoverProjects resolves the set of projects to report on: the union of
// projects the user owns and projects the user is a member of (plus every
// active project when includeAll is set), filtered against the configured
// allow-list. Order follows first appearance, so repeated runs yield the
// same project sequence.
func (c *Client) DiscoverProjects(ctx context.Context, allowlist []int64, includeAll bool) []model.Project {
	candidates := c.listProjects(ctx, "owned=true")
	candidates = append(candidates, c.listProjects(ctx, "membership=true")...)
	if includeAll {
		candidates = append(candidates, c.listProjects(ctx, "archived=false")...)
	}

	allowed := make(map[int64]bool, len(allowlist))
	for _, id := range allowlist {
		allowed[id] = true
	}

	seen := make(map[int64]bool, len(candidates))
	var projects []model.Project
	for _, p := range candidates {
		if !allowed[p.ID] || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		projects = append(projects, p)
	}

	return projects
}
