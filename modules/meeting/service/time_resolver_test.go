package service

import (
	"testing"
	"time"

	"equimeet/core/errors"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		name      string
		utc       time.Time
		timezone  string
		wantLocal string
		wantDay   int
	}{
		{
			name:      "utc passthrough",
			utc:       time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
			timezone:  "UTC",
			wantLocal: "2025-03-12 10:00",
			wantDay:   3,
		},
		{
			name:      "tokyo ahead of utc",
			utc:       time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
			timezone:  "Asia/Tokyo",
			wantLocal: "2025-03-12 19:00",
			wantDay:   3,
		},
		{
			name:      "new york crosses midnight backwards",
			utc:       time.Date(2025, 1, 10, 3, 0, 0, 0, time.UTC),
			timezone:  "America/New_York",
			wantLocal: "2025-01-09 22:00",
			wantDay:   4,
		},
		{
			name:      "sunday maps to seven",
			utc:       time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC),
			timezone:  "UTC",
			wantLocal: "2025-03-16 12:00",
			wantDay:   7,
		},
		{
			name:      "monday maps to one",
			utc:       time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC),
			timezone:  "Europe/Paris",
			wantLocal: "2025-03-17 13:00",
			wantDay:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, day, appErr := Localize(tt.utc, tt.timezone)
			if appErr != nil {
				t.Fatalf("Localize(%v, %q) returned error: %v", tt.utc, tt.timezone, appErr)
			}
			if got := local.Format("2006-01-02 15:04"); got != tt.wantLocal {
				t.Errorf("local time = %s, want %s", got, tt.wantLocal)
			}
			if day != tt.wantDay {
				t.Errorf("iso weekday = %d, want %d", day, tt.wantDay)
			}
		})
	}
}

func TestLocalizePreservesInstant(t *testing.T) {
	utc := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	local, _, appErr := Localize(utc, "Australia/Sydney")
	if appErr != nil {
		t.Fatalf("Localize returned error: %v", appErr)
	}
	if !local.Equal(utc) {
		t.Errorf("localized time is a different instant: %v vs %v", local, utc)
	}
}

func TestLocalizeRejectsUnknownTimezone(t *testing.T) {
	for _, tz := range []string{"", "Mars/Olympus_Mons", "EST5EDT4EVIL"} {
		_, _, appErr := Localize(time.Now(), tz)
		if appErr == nil {
			t.Errorf("Localize(%q) = nil error, want invalid timezone", tz)
			continue
		}
		if appErr.Code != errors.ErrInvalidTimezone {
			t.Errorf("Localize(%q) error code = %s, want %s", tz, appErr.Code, errors.ErrInvalidTimezone)
		}
	}
}
