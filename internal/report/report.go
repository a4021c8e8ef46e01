// Package report builds the admin listing and the CSV export over the
// filtered registration query. Both views come from the same store query,
// so the displayed total always matches the exported row count.
package report

import (
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/registration"
)

const (
	dateFormat      = "02 Jan 2006"
	timestampFormat = "02 Jan 2006 15:04:05"
)

type Engine struct {
	store *registration.Store
}

func NewEngine(store *registration.Store) *Engine {
	return &Engine{store: store}
}

// ReportRow is the admin table layout: event date sits third.
type ReportRow struct {
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	EventDate   time.Time `json:"event_date"`
	CollegeName string    `json:"college_name"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"created_at"`
	EventID     uint      `json:"event_id"`
}

// ExportRow is the CSV layout consumed by existing downstream tooling:
// same columns as the report but with the event date moved last.
type ExportRow struct {
	FullName    string
	Email       string
	CollegeName string
	Department  string
	CreatedAt   time.Time
	EventDate   time.Time
	EventID     uint
}

type Report struct {
	Rows  []ReportRow
	Total int
}

// BuildReport returns the filtered listing plus its total. Zero-valued
// filters mean unfiltered.
func (e *Engine) BuildReport(date time.Time, eventID uint) (Report, error) {
	rows, err := e.store.ListFiltered(date, eventID)
	if err != nil {
		return Report{}, err
	}

	report := Report{Rows: make([]ReportRow, len(rows)), Total: len(rows)}
	for i, r := range rows {
		report.Rows[i] = ReportRow{
			FullName:    r.FullName,
			Email:       r.Email,
			EventDate:   r.EventDate,
			CollegeName: r.CollegeName,
			Department:  r.Department,
			CreatedAt:   r.CreatedAt,
			EventID:     r.EventID,
		}
	}
	return report, nil
}

// BuildExport returns the export dataset for the same filters as
// BuildReport, row for row.
func (e *Engine) BuildExport(date time.Time, eventID uint) ([]ExportRow, error) {
	rows, err := e.store.ListFiltered(date, eventID)
	if err != nil {
		return nil, err
	}

	out := make([]ExportRow, len(rows))
	for i, r := range rows {
		out[i] = ExportRow{
			FullName:    r.FullName,
			Email:       r.Email,
			CollegeName: r.CollegeName,
			Department:  r.Department,
			CreatedAt:   r.CreatedAt,
			EventDate:   r.EventDate,
			EventID:     r.EventID,
		}
	}
	return out, nil
}

// ExportFilename names a download generated at now, e.g.
// event_registrations_20260829153000.csv.
func ExportFilename(now time.Time) string {
	return "event_registrations_" + now.Format("20060102150405") + ".csv"
}
