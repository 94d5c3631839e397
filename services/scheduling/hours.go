package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// DayWindow is a day's open/close bounds in minutes from local midnight
// (e.g., 480 for 8:00 AM).
type DayWindow struct {
	OpenMin  int
	CloseMin int
}

// WeeklyHours maps each weekday to its window. Days without an entry are
// closed. Immutable after ParseWeeklyHours.
type WeeklyHours struct {
	windows [7]*DayWindow // indexed by time.Weekday
}

var weekdayKeys = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// ParseWeeklyHours builds the policy from a config table of weekday key to
// "HH:MM-HH:MM". An empty or "closed" value marks the day closed. Malformed
// entries are a configuration error, surfaced at startup.
func ParseWeeklyHours(table map[string]string) (WeeklyHours, error) {
	var wh WeeklyHours
	for key, value := range table {
		day, ok := weekdayKeys[strings.ToLower(key)]
		if !ok {
			return WeeklyHours{}, fmt.Errorf("unknown weekday %q in working hours", key)
		}
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, "closed") {
			continue
		}
		openStr, closeStr, found := strings.Cut(value, "-")
		if !found {
			return WeeklyHours{}, fmt.Errorf("working hours for %s: expected \"HH:MM-HH:MM\", got %q", key, value)
		}
		openMin, err := parseClock(openStr)
		if err != nil {
			return WeeklyHours{}, fmt.Errorf("working hours for %s: %w", key, err)
		}
		closeMin, err := parseClock(closeStr)
		if err != nil {
			return WeeklyHours{}, fmt.Errorf("working hours for %s: %w", key, err)
		}
		if closeMin <= openMin {
			return WeeklyHours{}, fmt.Errorf("working hours for %s: close %q not after open %q", key, closeStr, openStr)
		}
		wh.windows[day] = &DayWindow{OpenMin: openMin, CloseMin: closeMin}
	}
	return wh, nil
}

// WindowFor returns the window for the date's weekday. ok is false when the
// day is closed. Pure lookup, no side effects.
func (wh WeeklyHours) WindowFor(date time.Time) (DayWindow, bool) {
	win := wh.windows[date.Weekday()]
	if win == nil {
		return DayWindow{}, false
	}
	return *win, true
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
