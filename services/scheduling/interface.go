package scheduling

import (
	"context"
	"sync"
	"time"

	"terminly/calendar"
	"terminly/models"
)

// SchedulingService answers slot availability and booking requests against
// the shared external calendar.
type SchedulingService interface {
	// ListFreeSlots returns the free slots of a local day in chronological
	// order. A closed day yields an empty result, not an error. A non-zero
	// notBefore drops slots starting before it.
	ListFreeSlots(ctx context.Context, date time.Time, notBefore time.Time) ([]models.TimeSlot, error)

	// CheckSlot reports whether a slot can be booked: ErrClosedDay or
	// ErrOutOfHours when the slot misses the working-hours window (decided
	// before any calendar lookup), ErrSlotConflict when an event overlaps it,
	// nil when it is free.
	CheckSlot(ctx context.Context, slot models.TimeSlot) error

	// Book re-checks the slot against freshly fetched events and inserts the
	// appointment. Returns ErrSlotConflict if a concurrent writer won the
	// race, detected by the re-check or by the calendar rejecting the insert.
	Book(ctx context.Context, slot models.TimeSlot, req models.BookingRequest) (*models.BookingConfirmation, error)

	// Cancel deletes the first event overlapping the slot whose summary
	// contains matchToken, case-insensitively. Returns ErrAppointmentNotFound
	// when nothing matches.
	Cancel(ctx context.Context, slot models.TimeSlot, matchToken string) error

	// NextFreeSlots scans forward from now, up to horizonDays, collecting
	// free slots in chronological order until count is reached. Returns fewer
	// when the horizon is exhausted first.
	NextFreeSlots(ctx context.Context, count, horizonDays int) ([]models.TimeSlot, error)

	// SlotAt builds the slot starting at the given local date and clock time.
	SlotAt(date, clock string) (models.TimeSlot, error)
}

// DefaultSchedulingEngine implements SchedulingService. The gateway is
// injected so tests can substitute a fake; the engine itself holds no
// appointment state between requests.
type DefaultSchedulingEngine struct {
	Gateway      calendar.Gateway
	Hours        WeeklyHours
	CalendarID   string
	SlotDuration time.Duration
	Location     *time.Location

	// Now overrides the scan clock in tests; nil means time.Now.
	Now func() time.Time

	// mu serializes Book and Cancel so same-process writers cannot race each
	// other between check and commit. Writers in other processes can still
	// race; closing that window needs an idempotency key or reservation layer
	// in front of the calendar, outside this service.
	mu sync.Mutex
}

var _ SchedulingService = (*DefaultSchedulingEngine)(nil)

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now().In(se.Location)
	}
	return time.Now().In(se.Location)
}

// SlotAt parses "2006-01-02" and "15:04" in the engine's location into the
// fixed-duration slot starting there.
func (se *DefaultSchedulingEngine) SlotAt(date, clock string) (models.TimeSlot, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, se.Location)
	if err != nil {
		return models.TimeSlot{}, err
	}
	return models.TimeSlot{Start: start, End: start.Add(se.SlotDuration)}, nil
}
