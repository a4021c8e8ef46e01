// Package catalog is the source of truth for event definitions: which
// events exist, when they are open for registration, and which dates and
// categories are selectable.
package catalog

import (
	"errors"
	"slices"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidWindow is returned when the registration window is empty
	// or the event date does not fall after the window closes.
	ErrInvalidWindow = errors.New("registration start must precede registration end, and the event date must follow registration end")

	// ErrInvalidCategory is returned for a category outside the fixed set.
	ErrInvalidCategory = errors.New("unknown event category")

	// ErrEventNotFound is returned when an event id does not exist.
	ErrEventNotFound = errors.New("event not found")
)

type Catalog struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// EventFields is the admin input for creating an event.
type EventFields struct {
	Name              string
	Category          string
	EventDate         time.Time
	RegistrationStart time.Time
	RegistrationEnd   time.Time
}

// CreateEvent validates the window chain and persists a new event,
// returning its id. Events are immutable after this point.
func (c *Catalog) CreateEvent(fields EventFields) (uint, error) {
	if !fields.RegistrationStart.Before(fields.RegistrationEnd) {
		return 0, ErrInvalidWindow
	}
	if !fields.EventDate.After(fields.RegistrationEnd) {
		return 0, ErrInvalidWindow
	}
	if !slices.Contains(models.Categories, fields.Category) {
		return 0, ErrInvalidCategory
	}

	event := models.Event{
		Name:              fields.Name,
		Category:          fields.Category,
		EventDate:         fields.EventDate,
		RegistrationStart: fields.RegistrationStart,
		RegistrationEnd:   fields.RegistrationEnd,
	}
	if err := c.db.Create(&event).Error; err != nil {
		return 0, err
	}
	return event.ID, nil
}

// GetEvent fetches one event by id.
func (c *Catalog) GetEvent(id uint) (models.Event, error) {
	var event models.Event
	if err := c.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

// ListActiveEvents returns the events whose registration window contains
// now, in creation order. An empty result is not an error; it means no
// events are open.
func (c *Catalog) ListActiveEvents(now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := c.db.
		Where("registration_start <= ? AND registration_end >= ?", now, now).
		Order("id asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListActiveCategories returns the distinct categories among active
// events in first-seen order. The first entry doubles as the default
// selection in the registration form.
func (c *Catalog) ListActiveCategories(now time.Time) ([]string, error) {
	events, err := c.ListActiveEvents(now)
	if err != nil {
		return nil, err
	}

	var categories []string
	seen := map[string]bool{}
	for _, e := range events {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories, nil
}

// ListEventsByDate returns all events held on the exact date, with no
// activity-window restriction.
func (c *Catalog) ListEventsByDate(date time.Time) ([]models.Event, error) {
	var events []models.Event
	err := c.db.
		Where("event_date = ?", date).
		Order("id asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListDistinctEventDates returns every distinct event date in ascending
// order, with no activity-window restriction. Used by the admin filter,
// which needs to see past events too.
func (c *Catalog) ListDistinctEventDates() ([]time.Time, error) {
	var dates []time.Time
	err := c.db.Model(&models.Event{}).
		Distinct("event_date").
		Order("event_date asc").
		Pluck("event_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// WindowStatus classifies an event's registration window relative to now.
type WindowStatus int

const (
	WindowUpcoming WindowStatus = iota
	WindowOpen
	WindowClosed
)

func (c *Catalog) Status(event models.Event, now time.Time) WindowStatus {
	switch {
	case now.Before(event.RegistrationStart):
		return WindowUpcoming
	case now.After(event.RegistrationEnd):
		return WindowClosed
	default:
		return WindowOpen
	}
}
