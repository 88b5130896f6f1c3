// internal/export/export.go
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"gitlab-timesheet/internal/model"
)

// header is the column order of the exported timesheet.
var header = []string{"surname", "name", "date", "hours", "note"}

// Filename derives the workbook name from the table's year-month and the
// user's surname: {year}-{month}-{SURNAME}_timesheet.xlsx.
func Filename(rows []model.Row, userID string) string {
	yearMonth := ""
	if len(rows) > 0 {
		yearMonth = rows[0].Date[:7]
	}
	_, surname, _ := strings.Cut(userID, ".")
	return fmt.Sprintf("%s-%s_timesheet.xlsx", yearMonth, strings.ToUpper(surname))
}

// WriteXLSX saves the table as an Excel workbook under dir, creating the
// directory if needed, and returns the written file path.
func WriteXLSX(dir string, rows []model.Row, userID string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, Filename(rows, userID))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return "", err
		}
	}

	for i, row := range rows {
		values := []string{row.Surname, row.Name, row.Date, row.Hours, row.Note}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	return path, nil
}

// Print writes the table as aligned columns, one line per calendar day.
func Print(w io.Writer, rows []model.Row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.Surname, row.Name, row.Date, row.Hours, row.Note)
	}
	tw.Flush()
}
