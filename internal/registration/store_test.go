package registration

import (
	"errors"
	"testing"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.Registration{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func seedEvent(t *testing.T, c *catalog.Catalog, name string, eventDate time.Time) uint {
	t.Helper()
	id, err := c.CreateEvent(catalog.EventFields{
		Name:              name,
		Category:          models.CategoryConference,
		RegistrationStart: day(1),
		RegistrationEnd:   day(10),
		EventDate:         eventDate,
	})
	if err != nil {
		t.Fatalf("CreateEvent(%q) returned error: %v", name, err)
	}
	return id
}

func TestInsert_SetsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	eventID := seedEvent(t, catalog.New(db), "AI Day", day(20))

	now := day(5)
	reg, err := store.Insert(models.Registration{
		EventID: eventID, Email: "jane@x.com",
		FullName: "Jane Roe", CollegeName: "MIT", Department: "CS",
	}, now)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if reg.ID == 0 {
		t.Error("expected an assigned id")
	}
	if !reg.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, reg.CreatedAt)
	}
}

func TestInsert_DuplicateRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	c := catalog.New(db)
	eventID := seedEvent(t, c, "AI Day", day(20))
	otherID := seedEvent(t, c, "Go Day", day(21))

	reg := models.Registration{
		EventID: eventID, Email: "jane@x.com",
		FullName: "Jane Roe", CollegeName: "MIT", Department: "CS",
	}
	if _, err := store.Insert(reg, day(5)); err != nil {
		t.Fatalf("first Insert returned error: %v", err)
	}

	// Same (email, event) hits the unique index even without the
	// validator's pre-check.
	if _, err := store.Insert(reg, day(6)); !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("expected ErrDuplicateRegistration, got %v", err)
	}

	// Same email, different event is fine.
	reg.EventID = otherID
	if _, err := store.Insert(reg, day(6)); err != nil {
		t.Errorf("Insert for a different event returned error: %v", err)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 surviving rows, got %d", count)
	}
}

func TestExistsByEmailAndEvent(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	eventID := seedEvent(t, catalog.New(db), "AI Day", day(20))

	exists, err := store.ExistsByEmailAndEvent("jane@x.com", eventID)
	if err != nil {
		t.Fatalf("ExistsByEmailAndEvent returned error: %v", err)
	}
	if exists {
		t.Error("expected no registration yet")
	}

	if _, err := store.Insert(models.Registration{
		EventID: eventID, Email: "jane@x.com",
		FullName: "Jane Roe", CollegeName: "MIT", Department: "CS",
	}, day(5)); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	exists, err = store.ExistsByEmailAndEvent("jane@x.com", eventID)
	if err != nil {
		t.Fatalf("ExistsByEmailAndEvent returned error: %v", err)
	}
	if !exists {
		t.Error("expected registration to exist")
	}
}

func TestListFiltered(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	c := catalog.New(db)
	aiDay := seedEvent(t, c, "AI Day", day(20))
	goDay := seedEvent(t, c, "Go Day", day(21))

	seed := []models.Registration{
		{EventID: aiDay, Email: "a@x.com", FullName: "Alice A", CollegeName: "MIT", Department: "CS"},
		{EventID: goDay, Email: "b@x.com", FullName: "Bob B", CollegeName: "IIT", Department: "EE"},
		{EventID: aiDay, Email: "c@x.com", FullName: "Cara C", CollegeName: "MIT", Department: "ME"},
	}
	for _, reg := range seed {
		if _, err := store.Insert(reg, day(5)); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	// Unfiltered: everything, insertion order, joined event date present.
	rows, err := store.ListFiltered(time.Time{}, 0)
	if err != nil {
		t.Fatalf("ListFiltered returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Email != "a@x.com" || rows[1].Email != "b@x.com" || rows[2].Email != "c@x.com" {
		t.Errorf("unexpected order: %+v", rows)
	}
	if !rows[0].EventDate.Equal(day(20)) {
		t.Errorf("expected joined event date %v, got %v", day(20), rows[0].EventDate)
	}

	// By event date.
	rows, err = store.ListFiltered(day(20), 0)
	if err != nil {
		t.Fatalf("ListFiltered returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows on day 20, got %d", len(rows))
	}

	// By event id.
	rows, err = store.ListFiltered(time.Time{}, goDay)
	if err != nil {
		t.Fatalf("ListFiltered returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Email != "b@x.com" {
		t.Errorf("expected only b@x.com for Go Day, got %+v", rows)
	}

	// Both filters.
	rows, err = store.ListFiltered(day(20), goDay)
	if err != nil {
		t.Fatalf("ListFiltered returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows for mismatched filters, got %+v", rows)
	}
}
