package models

import (
	"gorm.io/gorm"
)

// Registration is one visitor's registration for one event. The composite
// unique index guarantees at most one row per (email, event) pair even
// under concurrent submissions.
type Registration struct {
	gorm.Model
	EventID     uint   `json:"event_id" gorm:"uniqueIndex:idx_email_event"`
	Email       string `json:"email" gorm:"uniqueIndex:idx_email_event"`
	FullName    string `json:"full_name"`
	CollegeName string `json:"college_name"`
	Department  string `json:"department"`
	Event       Event  `json:"-" gorm:"foreignKey:EventID"`
}
