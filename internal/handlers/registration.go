package handlers

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/config"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/notifier"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/options"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/registration"
	"github.com/danielgtaylor/huma/v2"
)

const dateParamFormat = "2006-01-02"

type RegistrationHandler struct {
	catalog   *catalog.Catalog
	resolver  *options.Resolver
	validator *registration.Validator
	store     *registration.Store
	notifier  notifier.Notifier
	cfg       *config.Config
	now       func() time.Time
}

func NewRegistrationHandler(c *catalog.Catalog, r *options.Resolver, v *registration.Validator, s *registration.Store, n notifier.Notifier, cfg *config.Config) *RegistrationHandler {
	return &RegistrationHandler{
		catalog:   c,
		resolver:  r,
		validator: v,
		store:     s,
		notifier:  n,
		cfg:       cfg,
		now:       time.Now,
	}
}

type DateOption struct {
	Value string `json:"value" doc:"Date in YYYY-MM-DD form, used as the filter value"`
	Label string `json:"label" doc:"Human-readable date, e.g. 02 Jan 2006"`
}

type EventOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FormOptionsRequest struct {
	Category string `query:"category" doc:"Currently selected event category"`
	Date     string `query:"date" doc:"Currently selected event date (YYYY-MM-DD)"`
	EventID  uint   `query:"event_id" doc:"Currently selected event id"`
}

type FormOptionsResponse struct {
	Body struct {
		Message          string        `json:"message,omitempty"`
		Categories       []string      `json:"categories"`
		Dates            []DateOption  `json:"dates"`
		Events           []EventOption `json:"events"`
		SelectedCategory string        `json:"selected_category,omitempty"`
		SelectedDate     string        `json:"selected_date,omitempty"`
		SelectedEventID  uint          `json:"selected_event_id,omitempty"`
	}
}

// HandleFormOptions resolves the three cascading dropdowns for the
// registration form. The UI calls this again on every upstream change.
func (h *RegistrationHandler) HandleFormOptions(ctx context.Context, input *FormOptionsRequest) (*FormOptionsResponse, error) {
	sel := options.Selection{Category: input.Category, EventID: input.EventID}
	if input.Date != "" {
		date, err := time.Parse(dateParamFormat, input.Date)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid date, expected YYYY-MM-DD")
		}
		sel.Date = date
	}

	form, err := h.resolver.ResolveForm(sel, h.now())
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to resolve options: " + err.Error())
	}

	res := &FormOptionsResponse{}
	res.Body.Categories = form.Categories
	if len(form.Categories) == 0 {
		res.Body.Message = "No events open for registration currently."
		return res, nil
	}

	res.Body.Dates = dateOptions(form.Dates)
	res.Body.Events = eventOptions(form.Events)
	res.Body.SelectedCategory = form.SelectedCategory
	if !form.SelectedDate.IsZero() {
		res.Body.SelectedDate = form.SelectedDate.Format(dateParamFormat)
	}
	res.Body.SelectedEventID = form.SelectedEventID
	return res, nil
}

type RegisterRequest struct {
	Body struct {
		FullName    string `json:"full_name" doc:"Full name, letters, digits and spaces only" required:"true"`
		Email       string `json:"email" doc:"Email address the confirmation is sent to" required:"true"`
		CollegeName string `json:"college_name" doc:"College name, letters, digits and spaces only" required:"true"`
		Department  string `json:"department" doc:"Department, letters, digits and spaces only" required:"true"`
		EventID     uint   `json:"event_id" doc:"Id of the event to register for" required:"true"`
	}
}

type RegisterResponse struct {
	Body struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
}

// HandleRegister validates and persists a registration, then sends the
// confirmation. The window and duplicate checks run here against current
// state, never against what the form showed at render time.
func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*RegisterResponse, error) {
	now := h.now()

	submission := registration.Input{
		FullName:    input.Body.FullName,
		Email:       input.Body.Email,
		CollegeName: input.Body.CollegeName,
		Department:  input.Body.Department,
		EventID:     input.Body.EventID,
	}

	if err := h.validator.Validate(submission, now); err != nil {
		var verrs registration.ValidationErrors
		if errors.As(err, &verrs) {
			if errors.Is(verrs, registration.ErrDuplicateRegistration) {
				return nil, huma.Error409Conflict("You have already registered for this event.")
			}
			details := make([]error, len(verrs))
			for i, fe := range verrs {
				details[i] = &huma.ErrorDetail{Message: fe.Err.Error(), Location: "body." + fe.Field}
			}
			return nil, huma.Error422UnprocessableEntity("Validation failed", details...)
		}
		return nil, huma.Error500InternalServerError("Failed to validate registration: " + err.Error())
	}

	reg, err := h.store.Insert(models.Registration{
		EventID:     input.Body.EventID,
		Email:       input.Body.Email,
		FullName:    input.Body.FullName,
		CollegeName: input.Body.CollegeName,
		Department:  input.Body.Department,
	}, now)
	if err != nil {
		if errors.Is(err, registration.ErrDuplicateRegistration) {
			return nil, huma.Error409Conflict("You have already registered for this event.")
		}
		return nil, huma.Error500InternalServerError("Failed to save registration: " + err.Error())
	}

	event, err := h.catalog.GetEvent(reg.EventID)
	if err == nil {
		h.notify(reg, event)
	}

	res := &RegisterResponse{}
	res.Body.ID = reg.ID
	res.Body.Message = "Registration successful. A confirmation email has been sent."
	return res, nil
}

// notify fans out the confirmation: always to the registrant, and to the
// admin when the notification flag is on and a recipient resolves. The
// registration is already committed, so delivery failures are only logged.
func (h *RegistrationHandler) notify(reg models.Registration, event models.Event) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.NotifyRegistration(reg.Email, reg, event); err != nil {
		log.Printf("Failed to notify registrant %s: %v", reg.Email, err)
	}
	if h.cfg != nil && h.cfg.AdminNotificationEnabled {
		if admin := h.cfg.AdminRecipient(); admin != "" {
			if err := h.notifier.NotifyRegistration(admin, reg, event); err != nil {
				log.Printf("Failed to notify admin %s: %v", admin, err)
			}
		}
	}
}

func dateOptions(dates []time.Time) []DateOption {
	out := make([]DateOption, len(dates))
	for i, d := range dates {
		out[i] = DateOption{Value: d.Format(dateParamFormat), Label: d.Format("02 Jan 2006")}
	}
	return out
}

func eventOptions(events map[uint]string) []EventOption {
	out := make([]EventOption, 0, len(events))
	for id, name := range events {
		out = append(out, EventOption{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
