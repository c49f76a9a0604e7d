package schedule

import (
	"fmt"
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// Week holds the seven calendar dates of one schedule week plus the stable
// key used to correlate persisted checks with a rendered grid.
type Week struct {
	// Dates are the seven consecutive days at 00:00, starting from the
	// canonical week-start weekday
	Dates []time.Time

	// Key is the ISO-8601 string of the week-start instant. Callers treat
	// it as an opaque lookup/storage key.
	Key string
}

// Start returns the week-start instant (midnight of Dates[0])
func (w Week) Start() time.Time {
	return w.Dates[0]
}

// ComputeWeek locates the most recent (or same-day) occurrence of
// weekStartDay at or before reference, at midnight, and returns that date
// plus the next six consecutive days. Pure, always succeeds.
func ComputeWeek(reference time.Time, weekStartDay time.Weekday) Week {
	back := (int(reference.Weekday()) - int(weekStartDay) + domain.DefaultWeekDays) % domain.DefaultWeekDays
	start := time.Date(reference.Year(), reference.Month(), reference.Day()-back, 0, 0, 0, 0, reference.Location())

	dates := make([]time.Time, domain.DefaultWeekDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	return Week{Dates: dates, Key: TimeKey(start)}
}

// ParseWeekKey parses a week key back into its week-start instant
func ParseWeekKey(key string) (time.Time, error) {
	start, err := time.Parse(domain.TimeKeyFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule: invalid week key %q: %w", key, err)
	}
	return start, nil
}

// ShiftWeek adds deltaWeeks*7 days to the parsed week-start instant and
// re-serializes. Used for next/previous week navigation without recomputing
// from "today". ShiftWeek(ShiftWeek(k, n), -n) == k.
func ShiftWeek(weekKey string, deltaWeeks int) (string, error) {
	start, err := ParseWeekKey(weekKey)
	if err != nil {
		return "", err
	}
	return TimeKey(start.AddDate(0, 0, deltaWeeks*domain.DefaultWeekDays)), nil
}
