package scheduling

import "fmt"

// DomainError is an expected outcome of normal operation, distinguished from
// transport faults, which propagate as calendar.GatewayError.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrClosedDay means the requested date has no working-hours window.
	ErrClosedDay = &DomainError{Code: "closedDay", Message: "no working hours on the requested day"}
	// ErrOutOfHours means the slot falls outside the day's window.
	ErrOutOfHours = &DomainError{Code: "outOfHours", Message: "slot is outside working hours"}
	// ErrSlotConflict means the slot is, or turned out to be, occupied.
	ErrSlotConflict = &DomainError{Code: "slotConflict", Message: "slot is already taken"}
	// ErrAppointmentNotFound means no event matched the cancellation request.
	ErrAppointmentNotFound = &DomainError{Code: "appointmentNotFound", Message: "no matching appointment found"}
)
