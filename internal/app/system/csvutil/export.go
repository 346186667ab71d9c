// internal/app/system/csvutil/export.go
package csvutil

import (
	"encoding/csv"
	"io"

	"github.com/dalemusser/mentorhub/internal/domain/models"
)

// ScheduleHeader is the first row of a schedule export.
var ScheduleHeader = []string{
	"Student ID", "Student Name", "Mentor ID", "Mentor Name",
	"Type", "Date", "Slot", "Zoom Link", "Status",
}

// WriteScheduleCSV writes one row per assignment in the order given.
func WriteScheduleCSV(w io.Writer, as []models.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ScheduleHeader); err != nil {
		return err
	}
	for _, a := range as {
		row := []string{
			a.StudentID, a.StudentName, a.MentorID, a.MentorName,
			a.Type, a.Date, a.Slot, a.ZoomLink, a.Status,
		}
		for i := range row {
			row[i] = sanitizeCSVField(row[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// sanitizeCSVField prefixes values that spreadsheet apps would evaluate as
// formulas with a single quote.
func sanitizeCSVField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
