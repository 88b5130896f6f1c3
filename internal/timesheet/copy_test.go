// internal/timesheet/copy_test.go
package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab-timesheet/internal/model"
)

func sampleTable() []model.Row {
	first, last := marchPeriod()
	buckets := NewDayBuckets(first, last)
	buckets["2024-03-05"].add("feature-x")
	return BuildTable(buckets, "jane.doe", 8)
}

func TestCopyFromTo(t *testing.T) {
	rows := sampleTable()

	rows = CopyFromTo(rows, "05", "06", discardLogger())

	src := rows[4]
	dst := rows[5]
	assert.Equal(t, "2024-03-06", dst.Date, "date must never be copied")
	assert.Equal(t, src.Surname, dst.Surname)
	assert.Equal(t, src.Name, dst.Name)
	assert.Equal(t, src.Hours, dst.Hours)
	assert.Equal(t, src.Note, dst.Note)
}

func TestCopyFromTo_Idempotent(t *testing.T) {
	once := CopyFromTo(sampleTable(), "05", "06", discardLogger())

	snapshot := make([]model.Row, len(once))
	copy(snapshot, once)

	twice := CopyFromTo(once, "05", "06", discardLogger())
	assert.Equal(t, snapshot, twice)
}

func TestCopyFromTo_MissingDayIsNoOp(t *testing.T) {
	original := sampleTable()
	snapshot := make([]model.Row, len(original))
	copy(snapshot, original)

	assert.Equal(t, snapshot, CopyFromTo(original, "40", "06", discardLogger()))
	assert.Equal(t, snapshot, CopyFromTo(original, "05", "40", discardLogger()))
}

func TestCopyFromTo_EmptyTable(t *testing.T) {
	var rows []model.Row
	require.Empty(t, CopyFromTo(rows, "05", "06", discardLogger()))
}
