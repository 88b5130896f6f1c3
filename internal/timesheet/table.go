// internal/timesheet/table.go
package timesheet

import (
	"strconv"
	"strings"

	"gitlab-timesheet/internal/model"
)

// BuildTable converts day buckets into the final row set: exactly one row
// per calendar day, ascending by date. Days without notes keep their date
// and leave every other column blank. userID is the 'given.surname'
// identity; mandayHours is the fixed hours value for a worked day.
func BuildTable(buckets DayBuckets, userID string, mandayHours int) []model.Row {
	given, surname, _ := strings.Cut(userID, ".")

	var rows []model.Row
	for _, date := range buckets.Dates() {
		bucket := buckets[date]
		if bucket.State != StateHasNotes {
			rows = append(rows, model.Row{Date: date})
			continue
		}
		rows = append(rows, model.Row{
			Surname: surname,
			Name:    given,
			Date:    date,
			Hours:   strconv.Itoa(mandayHours),
			Note:    joinNotes(bucket.Notes),
		})
	}
	return rows
}

// joinNotes deduplicates the day's classification strings (keeping first
// occurrence so output is stable) and joins them with ", ", trimming stray
// commas and whitespace.
func joinNotes(notes []string) string {
	seen := make(map[string]bool, len(notes))
	var unique []string
	for _, n := range notes {
		if seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}

	joined := strings.TrimSpace(strings.Join(unique, ", "))
	joined = strings.Trim(joined, ",")
	return strings.TrimSpace(joined)
}
