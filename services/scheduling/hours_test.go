package scheduling

import (
	"testing"
	"time"
)

func TestParseWeeklyHours(t *testing.T) {
	tests := []struct {
		name    string
		table   map[string]string
		wantErr bool
	}{
		{
			name:  "full week",
			table: map[string]string{"mon": "08:00-18:00", "tue": "08:00-18:00", "sat": "10:00-14:00"},
		},
		{
			name:  "closed marker",
			table: map[string]string{"mon": "08:00-18:00", "sun": "closed"},
		},
		{
			name:  "empty value means closed",
			table: map[string]string{"mon": "08:00-18:00", "sun": ""},
		},
		{
			name:    "unknown weekday",
			table:   map[string]string{"monday": "08:00-18:00"},
			wantErr: true,
		},
		{
			name:    "missing separator",
			table:   map[string]string{"mon": "08:00"},
			wantErr: true,
		},
		{
			name:    "garbage time",
			table:   map[string]string{"mon": "8am-6pm"},
			wantErr: true,
		},
		{
			name:    "close before open",
			table:   map[string]string{"mon": "18:00-08:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWeeklyHours(tt.table)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeeklyHours() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWindowFor(t *testing.T) {
	wh := mustHours(map[string]string{
		"mon": "08:00-16:00",
		"sat": "10:00-14:00",
	})

	monday := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	win, ok := wh.WindowFor(monday)
	if !ok {
		t.Fatal("expected Monday to be open")
	}
	if win.OpenMin != 8*60 || win.CloseMin != 16*60 {
		t.Fatalf("unexpected Monday window: %+v", win)
	}

	saturday := time.Date(2026, 9, 12, 12, 0, 0, 0, time.UTC)
	win, ok = wh.WindowFor(saturday)
	if !ok || win.OpenMin != 10*60 {
		t.Fatalf("unexpected Saturday window: %+v ok=%v", win, ok)
	}

	sunday := time.Date(2026, 9, 13, 12, 0, 0, 0, time.UTC)
	if _, ok := wh.WindowFor(sunday); ok {
		t.Fatal("expected Sunday to be closed")
	}
}

func TestWindowForUppercaseKeys(t *testing.T) {
	wh, err := ParseWeeklyHours(map[string]string{"MON": "09:00-17:00"})
	if err != nil {
		t.Fatalf("ParseWeeklyHours() error = %v", err)
	}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if _, ok := wh.WindowFor(monday); !ok {
		t.Fatal("expected uppercase weekday key to be accepted")
	}
}
