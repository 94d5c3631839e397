package scheduling

import (
	"time"

	"terminly/models"
)

// GenerateSlots enumerates candidate slots for a day: starting at the
// window's open, stepping by duration, while start+duration <= close.
// Consecutive slots are contiguous (each slot's end is the next slot's
// start). A non-zero notBefore advances the first slot to the smallest
// grid-aligned boundary at or after it. Returns nil when the window is too
// short for a single slot.
func GenerateSlots(day time.Time, win DayWindow, duration time.Duration, loc *time.Location, notBefore time.Time) []models.TimeSlot {
	if duration <= 0 {
		return nil
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	open := midnight.Add(time.Duration(win.OpenMin) * time.Minute)
	close := midnight.Add(time.Duration(win.CloseMin) * time.Minute)

	start := open
	if !notBefore.IsZero() && notBefore.After(open) {
		// Round up to the next grid boundary relative to open.
		offset := notBefore.Sub(open)
		steps := offset / duration
		if offset%duration != 0 {
			steps++
		}
		start = open.Add(steps * duration)
	}

	var slots []models.TimeSlot
	for !start.Add(duration).After(close) {
		end := start.Add(duration)
		slots = append(slots, models.TimeSlot{Start: start, End: end})
		start = end
	}
	return slots
}
