package schedule

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// TimeKey returns the canonical slot key for an instant: seconds and
// sub-second precision normalized to zero, serialized as ISO-8601. Every
// lookup into a blocked set and every weekKey goes through this one
// function so that grid-produced instants always hit or miss cleanly.
func TimeKey(t time.Time) string {
	return Normalize(t).Format(domain.TimeKeyFormat)
}

// Normalize drops seconds and sub-second precision; slot math operates at
// minute granularity only
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

// SetTimeOfDay re-anchors tod's hour/minute onto date's calendar date.
// Open/close times and check end times are stored as arbitrary timestamps
// whose date component is not meaningful; the grid must be rendered against
// each real calendar date of the week.
func SetTimeOfDay(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, date.Location())
}

// Slots produces the ordered times-of-day of a single day's bookable grid:
// open's and close's hour/minute are re-anchored onto anchor's date, then
// stepped by stepMinutes from open toward close, stopping strictly before
// close. An openTime >= closeTime (compared by time-of-day) yields an empty
// grid - a room with no configured hours has no bookable slots, which is
// not an error. Deterministic for identical inputs, safe to memoize.
func Slots(open, close, anchor time.Time, stepMinutes int) []time.Time {
	if stepMinutes <= 0 {
		return nil
	}

	start := SetTimeOfDay(anchor, open)
	end := SetTimeOfDay(anchor, close)

	var times []time.Time
	for t := start; t.Before(end); t = t.Add(time.Duration(stepMinutes) * time.Minute) {
		times = append(times, t)
	}
	return times
}
