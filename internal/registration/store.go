package registration

import (
	"errors"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"gorm.io/gorm"
)

// Store persists accepted registrations and serves the report queries.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ExistsByEmailAndEvent reports whether a registration already exists for
// the (email, event) pair. Used by the validator for a field-scoped
// duplicate message; the unique index on the table is the actual
// guarantee under concurrent submissions.
func (s *Store) ExistsByEmailAndEvent(email string, eventID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Registration{}).
		Where("email = ? AND event_id = ?", email, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert persists a new registration with CreatedAt = now. A losing racer
// on the (email, event) unique index gets ErrDuplicateRegistration, so
// check-then-insert cannot produce two rows.
func (s *Store) Insert(reg models.Registration, now time.Time) (models.Registration, error) {
	reg.CreatedAt = now
	if err := s.db.Create(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Registration{}, ErrDuplicateRegistration
		}
		return models.Registration{}, err
	}
	return reg, nil
}

// Row is one registration joined with its event's date, the shared shape
// behind both the admin report and the CSV export.
type Row struct {
	FullName    string
	Email       string
	CollegeName string
	Department  string
	CreatedAt   time.Time
	EventDate   time.Time
	EventID     uint
}

// ListFiltered returns registrations joined with their event, optionally
// narrowed by exact event date and/or event id. Zero values mean no
// filter. Rows come back in insertion order.
func (s *Store) ListFiltered(date time.Time, eventID uint) ([]Row, error) {
	query := s.db.Model(&models.Registration{}).
		Joins("JOIN events ON events.id = registrations.event_id").
		Select("registrations.full_name, registrations.email, registrations.college_name, registrations.department, registrations.created_at, registrations.event_id, events.event_date").
		Order("registrations.id asc")

	if !date.IsZero() {
		query = query.Where("events.event_date = ?", date)
	}
	if eventID != 0 {
		query = query.Where("registrations.event_id = ?", eventID)
	}

	var rows []Row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
