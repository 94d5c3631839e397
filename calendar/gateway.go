package calendar

import (
	"context"
	"time"

	"terminly/models"
)

// Gateway is the external calendar's list/insert/delete capability. The
// calendar is the system of record for appointments; this service consumes
// the interface and never caches event state across requests.
type Gateway interface {
	// ListEvents returns events overlapping [timeMin, timeMax), with
	// recurring instances already expanded and ordered by start time.
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]models.CalendarEvent, error)

	// InsertEvent creates a new event and returns it with the calendar's
	// assigned ID.
	InsertEvent(ctx context.Context, calendarID string, input EventInput) (*models.CalendarEvent, error)

	// DeleteEvent removes an event. Deleting an already-deleted event is
	// treated as success.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// EventInput is the body for a new calendar event.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
}
