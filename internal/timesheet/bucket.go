// internal/timesheet/bucket.go
package timesheet

import (
	"sort"
	"strings"
	"time"
)

// BucketState distinguishes the two kinds of "empty" a day can be in:
// a day nothing has been seen for yet, and a day whose events were all
// examined but produced nothing worth reporting.
type BucketState int

const (
	// StatePending means no event for this day has been examined.
	StatePending BucketState = iota
	// StateConfirmedEmpty means events were seen but none were reportable.
	StateConfirmedEmpty
	// StateHasNotes means the day carries at least one classification.
	StateHasNotes
)

// DayBucket accumulates classification strings for one calendar day.
type DayBucket struct {
	State BucketState
	Notes []string
}

// markSeen records that an event was examined for this day without yielding
// a note. It never downgrades a day that already has notes.
func (b *DayBucket) markSeen() {
	if b.State == StatePending {
		b.State = StateConfirmedEmpty
	}
}

// add appends a classification string unless the prefix heuristic suppresses
// it: a note longer than 8 characters whose first 6 characters already occur
// inside an existing entry is considered repeated push/ref noise and skipped.
func (b *DayBucket) add(note string) {
	if len(note) > 8 {
		for _, existing := range b.Notes {
			if strings.Contains(existing, note[:6]) {
				return
			}
		}
	}
	b.Notes = append(b.Notes, note)
	b.State = StateHasNotes
}

// DayBuckets maps every "YYYY-MM-DD" key of the reporting period to its
// bucket. Every day of the period is present from construction onward.
type DayBuckets map[string]*DayBucket

// NewDayBuckets creates one pending bucket per calendar day in [first, last].
func NewDayBuckets(first, last time.Time) DayBuckets {
	buckets := make(DayBuckets)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		buckets[d.Format(dateFormat)] = &DayBucket{}
	}
	return buckets
}

// Dates returns the bucket keys in ascending order.
func (b DayBuckets) Dates() []string {
	dates := make([]string, 0, len(b))
	for date := range b {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
