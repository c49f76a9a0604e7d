package schedule

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// Occupancy classifies concrete slot instants against a week's existing
// checks. Built fresh per request from the week-scoped check set; holds no
// shared state and is safe for concurrent reads once built.
type Occupancy struct {
	blocked map[string]struct{}
	step    int
}

// BuildOccupancy walks every contributing check from its start across the
// whole steps its duration covers, recording each visited instant's key.
// Walking (rather than range comparison) guarantees the blocked-set keys
// are exactly the slot grid's own keys, and a residual partial step at the
// tail blocks nothing: a 10:00-10:45 check at a 30-minute step blocks only
// 10:00, matching the span it renders with.
//
// If viewerID is non-nil, only checks owned by that trainer contribute:
// each trainer sees only their own blocked slots, other trainers' checks
// are invisible from this viewer's grid. A nil viewerID blocks for all
// checks.
func BuildOccupancy(checks []domain.Check, viewerID *string, stepMinutes int) *Occupancy {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultStepMinutes
	}

	o := &Occupancy{
		blocked: make(map[string]struct{}),
		step:    stepMinutes,
	}

	interval := time.Duration(stepMinutes) * time.Minute

	for _, check := range checks {
		if viewerID != nil && !check.IsOwnedBy(*viewerID) {
			continue
		}

		// spanSteps resolves a malformed interval (end <= start) to a
		// single blocked slot rather than rejecting it: this is display
		// logic, not a system of record.
		start := Normalize(check.StartTime)
		for i := 0; i < spanSteps(check, stepMinutes); i++ {
			o.blocked[TimeKey(start.Add(time.Duration(i)*interval))] = struct{}{}
		}
	}

	return o
}

// IsBlocked reports whether the exact slot instant is covered by a
// contributing check
func (o *Occupancy) IsBlocked(t time.Time) bool {
	_, ok := o.blocked[TimeKey(t)]
	return ok
}

// SpanOf returns the number of consecutive grid rows a check occupies,
// derived from its duration floored to the nearest whole step, minimum 1.
//
// The end's hour/minute is re-anchored onto the start's date before
// differencing, so an end timestamp accidentally carrying a different date
// component does not inflate the span. A duration that is not an exact
// multiple of the step truncates to the floor; the residual minutes are
// neither blocked nor rendered.
func (o *Occupancy) SpanOf(c domain.Check) int {
	return spanSteps(c, o.step)
}

// spanSteps is the single source of a check's step footprint: both the
// blocked-set walk and the rendered row-span derive from it, so the two
// can never disagree about which slots a check covers.
func spanSteps(c domain.Check, step int) int {
	end := SetTimeOfDay(c.StartTime, c.EndTime)
	minutes := int(end.Sub(Normalize(c.StartTime)).Minutes())

	span := minutes / step
	if span < 1 {
		span = 1
	}
	return span
}

// Step returns the slot step the occupancy was built with. Callers must
// render the grid with the same step.
func (o *Occupancy) Step() int {
	return o.step
}
