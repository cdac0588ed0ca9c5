// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DateWindow is an optional inclusive calendar-day range restricting which
// transactions are considered. Either bound may be nil (open). Selecting a
// budget period does not imply a window; only an explicit range does.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (w DateWindow) IsZero() bool {
	return w.Start == nil && w.End == nil
}

// Bounds returns the window as half-open [from, to) UTC timestamps covering
// whole calendar days, so time-of-day on stored dates never affects matching.
// A nil bound stays nil.
func (w DateWindow) Bounds() (from, to *time.Time) {
	if w.Start != nil {
		f := TruncateToDay(*w.Start)
		from = &f
	}
	if w.End != nil {
		t := TruncateToDay(*w.End).AddDate(0, 0, 1)
		to = &t
	}
	return from, to
}

// TruncateToDay returns midnight UTC of the calendar day containing t.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
