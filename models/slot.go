package models

import "time"

// TimeSlot is a fixed-duration candidate appointment window aligned to the
// working-hours grid. Start and End are timezone-aware instants with Start < End.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the slot length.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlaps reports whether the slot intersects the half-open interval
// [start, end). Touching boundaries do not conflict: an event ending exactly
// at the slot's start, or starting exactly at its end, leaves the slot free.
func (s TimeSlot) Overlaps(start, end time.Time) bool {
	return start.Before(s.End) && end.After(s.Start)
}
