package models

import (
	"time"

	"gorm.io/gorm"
)

// Categories an event can be created under. The set is fixed; the admin
// form offers exactly these options.
const (
	CategoryOnlineWorkshop = "Online Workshop"
	CategoryHackathon      = "Hackathon"
	CategoryConference     = "Conference"
	CategoryOneDayWorkshop = "One-day Workshop"
)

var Categories = []string{
	CategoryOnlineWorkshop,
	CategoryHackathon,
	CategoryConference,
	CategoryOneDayWorkshop,
}

// Event is an admin-defined event with a registration window.
// Events are never updated or deleted once created.
type Event struct {
	gorm.Model
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	EventDate         time.Time `json:"event_date"`
	RegistrationStart time.Time `json:"registration_start"`
	RegistrationEnd   time.Time `json:"registration_end"`
}

// Open reports whether the registration window contains now.
func (e Event) Open(now time.Time) bool {
	return !now.Before(e.RegistrationStart) && !now.After(e.RegistrationEnd)
}
