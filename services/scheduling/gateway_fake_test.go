package scheduling

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"terminly/calendar"
	"terminly/models"
)

// fakeGateway is an in-memory calendar.Gateway for engine tests.
type fakeGateway struct {
	mu     sync.Mutex
	events []models.CalendarEvent
	nextID int

	listErr   error
	insertErr error
	deleteErr error

	listCalls   int
	insertCalls int
	deletedIDs  []string
}

var _ calendar.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]models.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	var result []models.CalendarEvent
	for _, ev := range f.events {
		if ev.Start.Before(timeMax) && ev.End.After(timeMin) {
			result = append(result, ev)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result, nil
}

func (f *fakeGateway) InsertEvent(ctx context.Context, calendarID string, input calendar.EventInput) (*models.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}

	f.nextID++
	ev := models.CalendarEvent{
		ID:          fmt.Sprintf("ev-%d", f.nextID),
		Summary:     input.Summary,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
	}
	f.events = append(f.events, ev)
	return &ev, nil
}

func (f *fakeGateway) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}

	for i, ev := range f.events {
		if ev.ID == eventID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			f.deletedIDs = append(f.deletedIDs, eventID)
			return nil
		}
	}
	// Already gone counts as deleted.
	f.deletedIDs = append(f.deletedIDs, eventID)
	return nil
}

// mustHours builds a policy or fails the test setup.
func mustHours(table map[string]string) WeeklyHours {
	wh, err := ParseWeeklyHours(table)
	if err != nil {
		panic(err)
	}
	return wh
}

// newTestEngine wires an engine with one-hour slots in UTC against fake.
func newTestEngine(fake *fakeGateway, table map[string]string) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Gateway:      fake,
		Hours:        mustHours(table),
		CalendarID:   "primary",
		SlotDuration: time.Hour,
		Location:     time.UTC,
	}
}
