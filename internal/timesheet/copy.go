// internal/timesheet/copy.go
package timesheet

import (
	"log/slog"

	"gitlab-timesheet/internal/model"
)

// CopyFromTo copies every field except the date from one day's row onto
// another, for manual correction after report generation. sourceDay and
// targetDay are day-of-month strings (e.g. "05") resolved against the
// table's own year-month. If either date is missing the table is returned
// unchanged. Applying the same copy twice is a no-op the second time.
func CopyFromTo(rows []model.Row, sourceDay, targetDay string, logger *slog.Logger) []model.Row {
	if len(rows) == 0 {
		return rows
	}
	yearMonth := rows[0].Date[:7]
	sourceDate := yearMonth + "-" + sourceDay
	targetDate := yearMonth + "-" + targetDay

	src := indexByDate(rows, sourceDate)
	dst := indexByDate(rows, targetDate)
	if src < 0 || dst < 0 {
		logger.Warn("Source or target date not found in table",
			"source", sourceDate, "target", targetDate)
		return rows
	}

	rows[dst].Surname = rows[src].Surname
	rows[dst].Name = rows[src].Name
	rows[dst].Hours = rows[src].Hours
	rows[dst].Note = rows[src].Note
	return rows
}

func indexByDate(rows []model.Row, date string) int {
	for i := range rows {
		if rows[i].Date == date {
			return i
		}
	}
	return -1
}
