// internal/timesheet/classify.go
package timesheet

import (
	"fmt"

	"gitlab-timesheet/internal/model"
)

// noteKind is the outcome of classifying one event.
type noteKind int

const (
	// noteText carries a human-readable summary for the day's note.
	noteText noteKind = iota
	// noteNone means the event was seen but contributes nothing worth
	// reporting. Distinct from "no event seen at all".
	noteNone
	// noteUnknown marks an action kind outside the known taxonomy.
	noteUnknown
)

// classify maps one event to a short descriptive string. It is a pure
// function over the known GitLab action kinds; anything else comes back as
// noteUnknown so the caller can surface it without aborting the run.
func classify(ev model.Event) (string, noteKind) {
	switch ev.ActionName {
	case "pushed to", "pushed new":
		if ev.PushData.Ref == "" {
			return "", noteNone
		}
		return ev.PushData.Ref, noteText
	case "closed":
		note := fmt.Sprintf("%d-%s", ev.TargetIID, ev.TargetTitle)
		// Suppress near-empty titles.
		if len(note) <= 3 {
			return "", noteNone
		}
		return note, noteText
	case "created", "updated", "reopened", "merged":
		return fmt.Sprintf("%s !%d", ev.TargetType, ev.TargetIID), noteText
	case "commented on", "accepted", "opened", "assigned", "unassigned",
		"labeled", "unlabeled", "deleted":
		return "", noteNone
	default:
		return "", noteUnknown
	}
}
