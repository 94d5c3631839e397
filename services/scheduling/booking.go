package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"terminly/calendar"
	"terminly/models"
	"terminly/utils"
)

// Book verifies the slot is still free immediately before inserting the
// appointment. Check and insert are two separate calendar round trips, so a
// writer in another process can still land between them; the calendar's own
// rejection of the insert is then reported as ErrSlotConflict.
func (se *DefaultSchedulingEngine) Book(ctx context.Context, slot models.TimeSlot, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	se.mu.Lock()
	defer se.mu.Unlock()

	if err := se.CheckSlot(ctx, slot); err != nil {
		return nil, err
	}

	input := calendar.EventInput{
		Summary:     fmt.Sprintf("%s (%s)", req.Name, req.Company),
		Description: fmt.Sprintf("Telefon: %s", req.Phone),
		Start:       slot.Start,
		End:         slot.End,
		Timezone:    se.Location.String(),
	}
	created, err := se.Gateway.InsertEvent(ctx, se.CalendarID, input)
	if err != nil {
		if calendar.IsConflict(err) {
			logger.Warn("Book: calendar rejected insert, slot taken concurrently",
				zap.Time("slotStart", slot.Start), zap.Error(err))
			return nil, ErrSlotConflict
		}
		logger.Error("Book: failed to insert event",
			zap.String("calendarID", se.CalendarID), zap.Error(err))
		return nil, err
	}

	logger.Info("Book: appointment created",
		zap.String("eventID", created.ID),
		zap.Time("slotStart", slot.Start))
	return &models.BookingConfirmation{EventID: created.ID, Slot: slot}, nil
}

// Cancel deletes the first event in gateway list order overlapping the slot
// whose summary contains matchToken, case-insensitively. Other events in the
// window are untouched. A second Cancel for the same appointment finds
// nothing and returns ErrAppointmentNotFound.
func (se *DefaultSchedulingEngine) Cancel(ctx context.Context, slot models.TimeSlot, matchToken string) error {
	logger := utils.GetLogger()

	se.mu.Lock()
	defer se.mu.Unlock()

	events, err := se.Gateway.ListEvents(ctx, se.CalendarID, slot.Start, slot.End)
	if err != nil {
		logger.Error("Cancel: failed to list events",
			zap.String("calendarID", se.CalendarID), zap.Error(err))
		return err
	}

	token := strings.ToLower(matchToken)
	for _, ev := range events {
		if !strings.Contains(strings.ToLower(ev.Summary), token) {
			continue
		}
		if err := se.Gateway.DeleteEvent(ctx, se.CalendarID, ev.ID); err != nil {
			logger.Error("Cancel: failed to delete event",
				zap.String("eventID", ev.ID), zap.Error(err))
			return err
		}
		logger.Info("Cancel: appointment deleted",
			zap.String("eventID", ev.ID),
			zap.Time("slotStart", slot.Start))
		return nil
	}
	return ErrAppointmentNotFound
}

// NextFreeSlots scans day by day from now up to horizonDays and collects free
// slots in chronological order. Today's scan starts at the next grid boundary
// at or after the current time. At most one gateway list call is made per
// day, and no lock is held while scanning.
func (se *DefaultSchedulingEngine) NextFreeSlots(ctx context.Context, count, horizonDays int) ([]models.TimeSlot, error) {
	if count <= 0 || horizonDays <= 0 {
		return nil, nil
	}

	now := se.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, se.Location)

	var collected []models.TimeSlot
	for d := 0; d < horizonDays && len(collected) < count; d++ {
		date := today.AddDate(0, 0, d)
		notBefore := time.Time{}
		if d == 0 {
			notBefore = now
		}
		free, err := se.ListFreeSlots(ctx, date, notBefore)
		if err != nil {
			return nil, err
		}
		for _, slot := range free {
			collected = append(collected, slot)
			if len(collected) == count {
				break
			}
		}
	}
	return collected, nil
}
