package report

import (
	"encoding/csv"
	"io"
)

var exportHeader = []string{"Name", "Email", "College Name", "Department", "Submission Date", "Event Date"}

// WriteCSV streams the export rows to w in the legacy column order.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.FullName,
			r.Email,
			r.CollegeName,
			r.Department,
			r.CreatedAt.Format(timestampFormat),
			r.EventDate.Format(dateFormat),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
