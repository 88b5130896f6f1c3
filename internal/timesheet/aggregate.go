// internal/timesheet/aggregate.go
package timesheet

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab-timesheet/internal/model"
)

const (
	// Number of projects to fetch events for in parallel
	concurrency = 5
)

// EventLister retrieves the activity events of one project. A failed page
// shows up as a short result, never as an error.
type EventLister interface {
	ListProjectEvents(ctx context.Context, projectID int64) []model.Event
}

// Aggregator folds per-project event streams into per-day buckets.
type Aggregator struct {
	events EventLister
	logger *slog.Logger
	userID string
}

// NewAggregator creates a new Aggregator for the given target user.
func NewAggregator(events EventLister, logger *slog.Logger, userID string) *Aggregator {
	return &Aggregator{
		events: events,
		logger: logger,
		userID: userID,
	}
}

// Aggregate fetches events for every project concurrently and merges them
// into a calendar-complete bucket set for [first, last]. Merging happens
// after all fetches complete, in project input order, so the result does
// not depend on completion timing.
func (a *Aggregator) Aggregate(ctx context.Context, projects []model.Project, first, last time.Time) DayBuckets {
	buckets := NewDayBuckets(first, last)

	eventsByProject := make([][]model.Event, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, project := range projects {
		i, project := i, project
		g.Go(func() error {
			a.logger.Info("Fetching events", "project", project.Name, "project_id", project.ID)
			eventsByProject[i] = a.events.ListProjectEvents(gctx, project.ID)
			return nil
		})
	}
	_ = g.Wait() // workers only collect; fetch failures already degraded to partial results

	for i, project := range projects {
		a.mergeProject(buckets, project, eventsByProject[i])
	}

	return buckets
}

// mergeProject walks one project's events in server order and folds them
// into the buckets. Evidence is only ever added: days outside the period or
// events by other authors are skipped, and a no-note event never erases
// notes already recorded for that day.
func (a *Aggregator) mergeProject(buckets DayBuckets, project model.Project, events []model.Event) {
	for _, ev := range events {
		bucket, ok := buckets[ev.Day()]
		if !ok {
			continue
		}
		if ev.Author.Username != a.userID {
			continue
		}

		note, kind := classify(ev)
		switch kind {
		case noteUnknown:
			a.logger.Warn("Unknown action kind",
				"action", ev.ActionName, "project", project.Name)
		case noteNone:
			bucket.markSeen()
		default:
			bucket.add(note)
		}
	}
}
