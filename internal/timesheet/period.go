// internal/timesheet/period.go
package timesheet

import "time"

// dateFormat is the day key layout used throughout the timesheet.
const dateFormat = "2006-01-02"

// ResolvePeriod computes the first and last calendar day of the reporting
// month. Up to and including cutoverDay the report still targets the month
// containing a reference date 30 days back, so early-month runs cover the
// previous month; the rollover into a previous year is handled correctly.
func ResolvePeriod(today time.Time, cutoverDay int) (first, last time.Time) {
	first = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if today.Day() <= cutoverDay {
		ref := today.AddDate(0, 0, -30)
		first = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, today.Location())
	}
	last = first.AddDate(0, 1, -1)
	return first, last
}
