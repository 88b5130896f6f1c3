// internal/gitlab/client.go
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"gitlab-timesheet/internal/model"
)

// perPage is the page size requested from the GitLab API.
const perPage = 100

// Client is an authenticated GitLab REST API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates and configures a new Client instance.
// The provided token is used to create an authenticated http.Client;
// GitLab accepts personal access tokens as Bearer tokens.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: tc,
		logger:     logger,
	}
}

// fetchAll retrieves every page of a collection endpoint, following the
// Link rel="next" header until exhausted. On a network error or non-2xx
// response it logs the failure and returns whatever has been accumulated
// so far; callers must treat a short result as potentially incomplete.
func fetchAll[T any](ctx context.Context, c *Client, url string) []T {
	var all []T

	for url != "" {
		c.logger.Debug("Fetching page", "url", url)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			c.logger.Warn("Failed to build request", "url", url, "error", err)
			break
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("Failed to retrieve data", "url", url, "error", err)
			break
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			c.logger.Warn("Failed to read response body", "url", url, "error", err)
			break
		}

		if resp.StatusCode != http.StatusOK {
			c.logger.Warn("Failed to retrieve data",
				"url", url, "status", resp.StatusCode, "body", string(body))
			break
		}

		var page []T
		if err := json.Unmarshal(body, &page); err != nil {
			c.logger.Warn("Failed to decode response", "url", url, "error", err)
			break
		}

		all = append(all, page...)
		url = nextPageURL(resp.Header)
	}

	return all
}

// nextPageURL extracts the rel="next" target from a Link header,
// returning "" on the last page.
func nextPageURL(h http.Header) string {
	for _, link := range strings.Split(h.Get("Link"), ",") {
		parts := strings.Split(strings.TrimSpace(link), ";")
		if len(parts) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
		for _, attr := range parts[1:] {
			if strings.TrimSpace(attr) == `rel="next"` {
				return target
			}
		}
	}
	return ""
}

// ListProjectEvents fetches all activity events for a project.
// The result may be partial if a page fails to load.
func (c *Client) ListProjectEvents(ctx context.Context, projectID int64) []model.Event {
	url := fmt.Sprintf("%s/projects/%d/events?per_page=%d", c.baseURL, projectID, perPage)
	return fetchAll[model.Event](ctx, c, url)
}

// listProjects fetches all projects matching the given query string.
func (c *Client) listProjects(ctx context.Context, query string) []model.Project {
	url := fmt.Sprintf("%s/projects?%s&per_page=%d", c.baseURL, query, perPage)
	return fetchAll[model.Project](ctx, c, url)
}
