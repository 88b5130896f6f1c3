// internal/gitlab/client_test.go
package gitlab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestClient creates a httptest server and a client pointing to it.
func setupTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient(server.URL, "test-token", logger)
	return client, server
}

// linkNext writes a GitLab-style pagination header pointing at page.
func linkNext(w http.ResponseWriter, base string, page int) {
	w.Header().Set("Link", fmt.Sprintf(`<%s?page=%d>; rel="next"`, base, page))
}

func TestListProjectEvents_FollowsPagination(t *testing.T) {
	var server *httptest.Server
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/1/events", r.URL.Path)
		switch r.URL.Query().Get("page") {
		case "":
			linkNext(w, server.URL+"/projects/1/events", 2)
			fmt.Fprintln(w, `[{"action_name": "pushed to", "created_at": "2024-03-05T10:00:00Z"}]`)
		case "2":
			linkNext(w, server.URL+"/projects/1/events", 3)
			fmt.Fprintln(w, `[{"action_name": "commented on", "created_at": "2024-03-06T10:00:00Z"}]`)
		default:
			fmt.Fprintln(w, `[{"action_name": "closed", "created_at": "2024-03-07T10:00:00Z"}]`)
		}
	})
	client, s := setupTestClient(t, handler)
	server = s

	events := client.ListProjectEvents(context.Background(), 1)

	require.Len(t, events, 3)
	// Server-given order preserved, pages concatenated in fetch order.
	assert.Equal(t, "pushed to", events[0].ActionName)
	assert.Equal(t, "commented on", events[1].ActionName)
	assert.Equal(t, "closed", events[2].ActionName)
}

func TestListProjectEvents_PartialResultOnFailure(t *testing.T) {
	var server *httptest.Server
	var requestCount int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&requestCount, 1) {
		case 1:
			linkNext(w, server.URL+"/projects/1/events", 2)
			fmt.Fprintln(w, `[{"action_name": "pushed to"}, {"action_name": "merged"}]`)
		default:
			// Page 2 of 3 fails; page 3 must never be requested.
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintln(w, `{"message": "boom"}`)
		}
	})
	client, s := setupTestClient(t, handler)
	server = s

	events := client.ListProjectEvents(context.Background(), 1)

	assert.Len(t, events, 2, "should keep page 1's records")
	assert.Equal(t, int32(2), atomic.LoadInt32(&requestCount))
}

func TestListProjectEvents_NetworkFailureYieldsEmpty(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient("http://127.0.0.1:0", "test-token", logger)

	events := client.ListProjectEvents(context.Background(), 1)

	assert.Empty(t, events)
}

func TestListProjectEvents_SendsBearerToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprintln(w, `[]`)
	})
	client, _ := setupTestClient(t, handler)

	client.ListProjectEvents(context.Background(), 1)
}

func TestDiscoverProjects(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects", r.URL.Path)
		switch {
		case r.URL.Query().Get("owned") == "true":
			fmt.Fprintln(w, `[{"id": 1, "name": "alpha"}, {"id": 2, "name": "beta"}]`)
		case r.URL.Query().Get("membership") == "true":
			fmt.Fprintln(w, `[{"id": 2, "name": "beta"}, {"id": 3, "name": "gamma"}]`)
		default:
			fmt.Fprintln(w, `[{"id": 4, "name": "delta"}]`)
		}
	})
	client, _ := setupTestClient(t, handler)

	t.Run("union filtered by allow-list without duplicates", func(t *testing.T) {
		projects := client.DiscoverProjects(context.Background(), []int64{1, 2, 3}, false)

		require.Len(t, projects, 3)
		assert.Equal(t, "alpha", projects[0].Name)
		assert.Equal(t, "beta", projects[1].Name)
		assert.Equal(t, "gamma", projects[2].Name)
	})

	t.Run("allow-list excludes unlisted projects", func(t *testing.T) {
		projects := client.DiscoverProjects(context.Background(), []int64{3}, false)

		require.Len(t, projects, 1)
		assert.Equal(t, int64(3), projects[0].ID)
	})

	t.Run("all-projects toggle widens the candidate set", func(t *testing.T) {
		projects := client.DiscoverProjects(context.Background(), []int64{1, 4}, true)

		require.Len(t, projects, 2)
		assert.Equal(t, int64(1), projects[0].ID)
		assert.Equal(t, int64(4), projects[1].ID)
	})
}

func TestNextPageURL(t *testing.T) {
	h := http.Header{}
	h.Set("Link", `<https://gitlab.example.com/api/v4/projects/1/events?page=2&per_page=100>; rel="next", <https://gitlab.example.com/api/v4/projects/1/events?page=5&per_page=100>; rel="last"`)
	assert.Equal(t,
		"https://gitlab.example.com/api/v4/projects/1/events?page=2&per_page=100",
		nextPageURL(h))

	assert.Equal(t, "", nextPageURL(http.Header{}))

	h = http.Header{}
	h.Set("Link", `<https://gitlab.example.com/api/v4/projects/1/events?page=1>; rel="first"`)
	assert.Equal(t, "", nextPageURL(h))
}
