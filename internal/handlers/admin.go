package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/options"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/report"
	"github.com/danielgtaylor/huma/v2"
)

type AdminHandler struct {
	catalog  *catalog.Catalog
	resolver *options.Resolver
	engine   *report.Engine
	now      func() time.Time
}

func NewAdminHandler(c *catalog.Catalog, r *options.Resolver, e *report.Engine) *AdminHandler {
	return &AdminHandler{
		catalog:  c,
		resolver: r,
		engine:   e,
		now:      time.Now,
	}
}

type CreateEventRequest struct {
	Body struct {
		Name              string `json:"name" doc:"Event name" required:"true" minLength:"1"`
		Category          string `json:"category" doc:"Event category" required:"true" enum:"Online Workshop,Hackathon,Conference,One-day Workshop"`
		RegistrationStart string `json:"registration_start" doc:"Registration start date (YYYY-MM-DD)" required:"true"`
		RegistrationEnd   string `json:"registration_end" doc:"Registration end date (YYYY-MM-DD)" required:"true"`
		EventDate         string `json:"event_date" doc:"Event date (YYYY-MM-DD)" required:"true"`
	}
}

type CreateEventResponse struct {
	Body struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
}

// HandleCreateEvent persists a new event after checking the window chain:
// start before end, event date after the window closes.
func (h *AdminHandler) HandleCreateEvent(ctx context.Context, input *CreateEventRequest) (*CreateEventResponse, error) {
	start, err := time.Parse(dateParamFormat, input.Body.RegistrationStart)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid registration_start, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateParamFormat, input.Body.RegistrationEnd)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid registration_end, expected YYYY-MM-DD")
	}
	eventDate, err := time.Parse(dateParamFormat, input.Body.EventDate)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid event_date, expected YYYY-MM-DD")
	}

	id, err := h.catalog.CreateEvent(catalog.EventFields{
		Name:              input.Body.Name,
		Category:          input.Body.Category,
		EventDate:         eventDate,
		RegistrationStart: start,
		RegistrationEnd:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidWindow):
			return nil, huma.Error422UnprocessableEntity("Registration end date must be after start date, and the event date must be after registration ends.")
		case errors.Is(err, catalog.ErrInvalidCategory):
			return nil, huma.Error422UnprocessableEntity("Unknown event category.")
		default:
			return nil, huma.Error500InternalServerError("Failed to create event: " + err.Error())
		}
	}

	res := &CreateEventResponse{}
	res.Body.ID = id
	res.Body.Message = h.windowMessage(models.Event{
		RegistrationStart: start,
		RegistrationEnd:   end,
	})
	return res, nil
}

// windowMessage reproduces the admin feedback shown after saving an
// event: whether registration is upcoming, open, or already over.
func (h *AdminHandler) windowMessage(event models.Event) string {
	switch h.catalog.Status(event, h.now()) {
	case catalog.WindowUpcoming:
		return "Registration will start on " + event.RegistrationStart.Format("02 Jan 2006")
	case catalog.WindowClosed:
		return "Registration ended on " + event.RegistrationEnd.Format("02 Jan 2006")
	default:
		return "Registration is OPEN."
	}
}

type AdminFilterRequest struct {
	Date string `query:"date" doc:"Event date filter (YYYY-MM-DD)"`
}

type AdminFilterResponse struct {
	Body struct {
		Dates  []DateOption  `json:"dates"`
		Events []EventOption `json:"events"`
	}
}

// HandleFilterOptions resolves the admin report filters: every event
// date ever configured, and the events on the selected date. Unlike the
// registration form, closed events are included.
func (h *AdminHandler) HandleFilterOptions(ctx context.Context, input *AdminFilterRequest) (*AdminFilterResponse, error) {
	dates, err := h.resolver.ResolveAdminDates()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to resolve dates: " + err.Error())
	}

	res := &AdminFilterResponse{}
	res.Body.Dates = dateOptions(dates)
	res.Body.Events = []EventOption{}

	if input.Date != "" {
		date, err := time.Parse(dateParamFormat, input.Date)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid date, expected YYYY-MM-DD")
		}
		names, err := h.resolver.ResolveAdminEventNames(date)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to resolve events: " + err.Error())
		}
		res.Body.Events = eventOptions(names)
	}
	return res, nil
}

type ListRegistrationsRequest struct {
	Date    string `query:"date" doc:"Event date filter (YYYY-MM-DD)"`
	EventID uint   `query:"event_id" doc:"Event id filter"`
}

type RegistrationRow struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	EventDate   string `json:"event_date"`
	CollegeName string `json:"college_name"`
	Department  string `json:"department"`
	CreatedAt   string `json:"created_at"`
}

type ListRegistrationsResponse struct {
	Body struct {
		Rows  []RegistrationRow `json:"rows"`
		Total int               `json:"total"`
	}
}

// HandleListRegistrations returns the filtered report. The total always
// equals what the CSV export would produce for the same filters, since
// both read the same query.
func (h *AdminHandler) HandleListRegistrations(ctx context.Context, input *ListRegistrationsRequest) (*ListRegistrationsResponse, error) {
	date, err := parseOptionalDate(input.Date)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid date, expected YYYY-MM-DD")
	}

	rep, err := h.engine.BuildReport(date, input.EventID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to build report: " + err.Error())
	}

	res := &ListRegistrationsResponse{}
	res.Body.Total = rep.Total
	res.Body.Rows = make([]RegistrationRow, len(rep.Rows))
	for i, r := range rep.Rows {
		res.Body.Rows[i] = RegistrationRow{
			FullName:    r.FullName,
			Email:       r.Email,
			EventDate:   r.EventDate.Format("02 Jan 2006"),
			CollegeName: r.CollegeName,
			Department:  r.Department,
			CreatedAt:   r.CreatedAt.Format("02 Jan 2006 15:04:05"),
		}
	}
	return res, nil
}

// HandleExportCSV streams the filtered registrations as a CSV download.
// Plain chi handler: the response is a byte stream, not a JSON body.
func (h *AdminHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	date, err := parseOptionalDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var eventID uint
	if raw := r.URL.Query().Get("event_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid event_id", http.StatusBadRequest)
			return
		}
		eventID = uint(id)
	}

	rows, err := h.engine.BuildExport(date, eventID)
	if err != nil {
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.ExportFilename(h.now()))
	if err := report.WriteCSV(w, rows); err != nil {
		http.Error(w, "Failed to write export", http.StatusInternalServerError)
	}
}

func parseOptionalDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateParamFormat, raw)
}
