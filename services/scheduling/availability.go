package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"terminly/models"
	"terminly/utils"
)

// IsFree reports whether no event overlaps the slot. Intervals are half-open:
// an event ending exactly at the slot's start, or starting exactly at its
// end, does not conflict. All-day events arrive from the gateway already
// normalized to midnight-to-midnight instants and block every slot they span.
func IsFree(slot models.TimeSlot, events []models.CalendarEvent) bool {
	for _, ev := range events {
		if slot.Overlaps(ev.Start, ev.End) {
			return false
		}
	}
	return true
}

// ListFreeSlots fetches the day's events with a single gateway call and
// evaluates every candidate slot against that one event set.
func (se *DefaultSchedulingEngine) ListFreeSlots(ctx context.Context, date time.Time, notBefore time.Time) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()

	win, ok := se.Hours.WindowFor(date)
	if !ok {
		logger.Debug("ListFreeSlots: day is closed", zap.String("date", date.Format("2006-01-02")))
		return nil, nil
	}

	candidates := GenerateSlots(date, win, se.SlotDuration, se.Location, notBefore)
	if len(candidates) == 0 {
		return nil, nil
	}

	windowStart := candidates[0].Start
	windowEnd := candidates[len(candidates)-1].End
	events, err := se.Gateway.ListEvents(ctx, se.CalendarID, windowStart, windowEnd)
	if err != nil {
		logger.Error("ListFreeSlots: failed to list events",
			zap.String("calendarID", se.CalendarID), zap.Error(err))
		return nil, err
	}

	var free []models.TimeSlot
	for _, slot := range candidates {
		if IsFree(slot, events) {
			free = append(free, slot)
		}
	}
	return free, nil
}

// CheckSlot rejects a closed-day or out-of-hours slot before any calendar
// lookup, then checks the slot's window against freshly fetched events.
func (se *DefaultSchedulingEngine) CheckSlot(ctx context.Context, slot models.TimeSlot) error {
	if err := se.checkWindow(slot); err != nil {
		return err
	}

	events, err := se.Gateway.ListEvents(ctx, se.CalendarID, slot.Start, slot.End)
	if err != nil {
		return err
	}
	if !IsFree(slot, events) {
		return ErrSlotConflict
	}
	return nil
}

func (se *DefaultSchedulingEngine) checkWindow(slot models.TimeSlot) error {
	win, ok := se.Hours.WindowFor(slot.Start.In(se.Location))
	if !ok {
		return ErrClosedDay
	}
	local := slot.Start.In(se.Location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, se.Location)
	open := midnight.Add(time.Duration(win.OpenMin) * time.Minute)
	close := midnight.Add(time.Duration(win.CloseMin) * time.Minute)
	if slot.Start.Before(open) || slot.End.After(close) {
		return ErrOutOfHours
	}
	return nil
}
