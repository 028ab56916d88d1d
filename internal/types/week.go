package types

import (
	"fmt"
	"time"
)

// Week is a calendar week running from Monday 00:00:00.000 to
// Sunday 23:59:59.999.
//
// The week start is always Monday, independent of the locale
// conventions of the host.
type Week struct {
	Start time.Time `json:"start" example:"2026-08-31T00:00:00Z"` // Monday, midnight
	End   time.Time `json:"end" example:"2026-09-06T23:59:59.999Z"`
}

// WeekOf returns the week that contains the reference instant,
// in the reference's location.
func WeekOf(reference time.Time) Week {
	// time.Weekday has Sunday as 0, shift so that Monday is 0
	offset := (int(reference.Weekday()) + 6) % 7

	year, month, day := reference.AddDate(0, 0, -offset).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, reference.Location())

	return Week{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Millisecond),
	}
}

// Contains reports whether the time instant is in the week.
// Both boundaries are inclusive.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// String returns the week formatted as "YYYY-MM-DD/YYYY-MM-DD".
func (w Week) String() string {
	return fmt.Sprintf("%s/%s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}
