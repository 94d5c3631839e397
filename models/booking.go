package models

// BookingRequest carries the caller's details for a booking attempt.
// Transient input; the external calendar event is the only record kept.
type BookingRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Date    string `json:"date" binding:"required"` // "2006-01-02"
	Time    string `json:"time" binding:"required"` // "15:04"
}

// CancelRequest identifies an appointment for cancellation: the event
// overlapping the slot at Date/Time whose summary contains Name
// (case-insensitive).
type CancelRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// AvailabilityRequest asks whether a specific slot is free, or lists a day's
// free slots when Time is empty.
type AvailabilityRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time,omitempty"`
}

// BookingConfirmation is returned on a successful booking. EventID is the
// external calendar's identifier for the created event.
type BookingConfirmation struct {
	EventID string   `json:"eventId"`
	Slot    TimeSlot `json:"slot"`
}
