// Package options derives the dependent option sets behind the cascading
// category → date → event-name selection. Changing an upstream value
// invalidates every downstream option set, so callers re-resolve on each
// change rather than caching.
package options

import (
	"slices"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
)

type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// ResolveCategories returns the selectable categories for the
// registration form: distinct categories of active events, first-seen
// order.
func (r *Resolver) ResolveCategories(now time.Time) ([]string, error) {
	return r.catalog.ListActiveCategories(now)
}

// ResolveDates returns the ascending distinct event dates among active
// events of the given category. Empty category resolves to no dates.
func (r *Resolver) ResolveDates(category string, now time.Time) ([]time.Time, error) {
	if category == "" {
		return nil, nil
	}
	events, err := r.catalog.ListActiveEvents(now)
	if err != nil {
		return nil, err
	}

	var dates []time.Time
	for _, e := range events {
		if e.Category != category {
			continue
		}
		if !containsTime(dates, e.EventDate) {
			dates = append(dates, e.EventDate)
		}
	}
	slices.SortFunc(dates, time.Time.Compare)
	return dates, nil
}

// ResolveEventNames returns id → name for active events matching the
// category and exact date. Empty date resolves to no names.
func (r *Resolver) ResolveEventNames(category string, date time.Time, now time.Time) (map[uint]string, error) {
	if date.IsZero() {
		return map[uint]string{}, nil
	}
	events, err := r.catalog.ListActiveEvents(now)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	for _, e := range events {
		if e.Category == category && e.EventDate.Equal(date) {
			names[e.ID] = e.Name
		}
	}
	return names, nil
}

// Selection is the visitor's current (possibly partial) choice.
type Selection struct {
	Category string
	Date     time.Time
	EventID  uint
}

// FormOptions is everything the registration form needs to render its
// three dropdowns for a given selection.
type FormOptions struct {
	Categories []string
	Dates      []time.Time
	Events     map[uint]string

	SelectedCategory string
	SelectedDate     time.Time
	SelectedEventID  uint
}

// ResolveForm recomputes all three option sets for the selection,
// applying the default-selection policy: an unset category defaults to
// the first category, an unset date to the first date under the
// (possibly defaulted) category. Event name is never auto-selected. A
// stale downstream selection that is no longer reachable from its parent
// is cleared, not kept.
func (r *Resolver) ResolveForm(sel Selection, now time.Time) (FormOptions, error) {
	var out FormOptions

	categories, err := r.ResolveCategories(now)
	if err != nil {
		return out, err
	}
	out.Categories = categories
	if len(categories) == 0 {
		return out, nil
	}

	out.SelectedCategory = sel.Category
	if out.SelectedCategory == "" || !slices.Contains(categories, out.SelectedCategory) {
		out.SelectedCategory = categories[0]
	}

	dates, err := r.ResolveDates(out.SelectedCategory, now)
	if err != nil {
		return out, err
	}
	out.Dates = dates

	out.SelectedDate = sel.Date
	if out.SelectedDate.IsZero() || !containsTime(dates, out.SelectedDate) {
		out.SelectedDate = time.Time{}
		if len(dates) > 0 {
			out.SelectedDate = dates[0]
		}
	}

	events, err := r.ResolveEventNames(out.SelectedCategory, out.SelectedDate, now)
	if err != nil {
		return out, err
	}
	out.Events = events

	if _, ok := events[sel.EventID]; ok {
		out.SelectedEventID = sel.EventID
	}
	return out, nil
}

// ResolveAdminDates returns every distinct event date, past ones
// included, for the admin report filter.
func (r *Resolver) ResolveAdminDates() ([]time.Time, error) {
	return r.catalog.ListDistinctEventDates()
}

// ResolveAdminEventNames returns id → name for all events on the exact
// date, regardless of category or registration window. Empty date
// resolves to no names.
func (r *Resolver) ResolveAdminEventNames(date time.Time) (map[uint]string, error) {
	names := map[uint]string{}
	if date.IsZero() {
		return names, nil
	}
	events, err := r.catalog.ListEventsByDate(date)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		names[e.ID] = e.Name
	}
	return names, nil
}

func containsTime(list []time.Time, v time.Time) bool {
	for _, t := range list {
		if t.Equal(v) {
			return true
		}
	}
	return false
}
