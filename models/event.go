package models

import "time"

// CalendarEvent is an event as held by the external calendar. The calendar
// owns and mutates it; this service only reads, creates, or deletes whole
// events and never holds one beyond a single request.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	// AllDay marks events that arrived with a date-only start/end. Their
	// Start/End are already normalized to local midnight instants.
	AllDay bool `json:"allDay,omitempty"`
}
