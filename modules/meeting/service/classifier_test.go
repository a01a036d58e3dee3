package service

import (
	"testing"
	"time"

	"equimeet/core/errors"
	holidayentity "equimeet/modules/holiday/entity"
	"equimeet/modules/meeting/entity"
	participantentity "equimeet/modules/participant/entity"
	policyentity "equimeet/modules/policy/entity"

	"github.com/google/uuid"
)

// tokyoPolicy is a 09:00-17:00 green window with one-hour buffers on
// either side, Monday through Friday.
func tokyoPolicy() policyentity.CountryPolicy {
	return policyentity.CountryPolicy{
		CountryCode:        "JP",
		GreenStart:         9 * 60,
		GreenEnd:           17 * 60,
		OrangeMorningStart: 8 * 60,
		OrangeMorningEnd:   9 * 60,
		OrangeEveningStart: 17 * 60,
		OrangeEveningEnd:   18 * 60,
		WorkDays:           []int{1, 2, 3, 4, 5},
	}
}

func tokyoParticipant() participantentity.Participant {
	return participantentity.Participant{
		ID:          uuid.New(),
		Name:        "Yuki",
		Timezone:    "Asia/Tokyo",
		CountryCode: "JP",
	}
}

// tokyoTime builds the UTC instant whose Tokyo wall clock reads the
// given local hour and minute on 2025-03-12, a Wednesday.
func tokyoTime(hour, minute int) time.Time {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	return time.Date(2025, 3, 12, hour, minute, 0, 0, loc).UTC()
}

func TestClassifyTimeBands(t *testing.T) {
	tests := []struct {
		name       string
		candidate  time.Time
		wantStatus entity.ComfortStatus
		wantReason string
	}{
		{"mid green window", tokyoTime(11, 0), entity.StatusGreen, ReasonOptimalHours},
		{"green start is inclusive", tokyoTime(9, 0), entity.StatusGreen, ReasonOptimalHours},
		{"last green minute", tokyoTime(16, 59), entity.StatusGreen, ReasonOptimalHours},
		{"green end is exclusive", tokyoTime(17, 0), entity.StatusOrange, ReasonBufferHours},
		{"morning buffer", tokyoTime(8, 30), entity.StatusOrange, ReasonBufferHours},
		{"morning buffer start is inclusive", tokyoTime(8, 0), entity.StatusOrange, ReasonBufferHours},
		{"evening buffer", tokyoTime(17, 45), entity.StatusOrange, ReasonBufferHours},
		{"before morning buffer", tokyoTime(7, 59), entity.StatusRed, ReasonOutsideHours},
		{"evening buffer end is exclusive", tokyoTime(18, 0), entity.StatusRed, ReasonOutsideHours},
		{"middle of the night", tokyoTime(2, 0), entity.StatusRed, ReasonOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, appErr := Classify(tokyoParticipant(), tt.candidate, tokyoPolicy(), nil)
			if appErr != nil {
				t.Fatalf("Classify returned error: %v", appErr)
			}
			if a.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", a.Status, tt.wantStatus)
			}
			if a.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", a.Reason, tt.wantReason)
			}
		})
	}
}

func TestClassifyNonWorkingDay(t *testing.T) {
	// 2025-03-15 is a Saturday in Tokyo.
	loc, _ := time.LoadLocation("Asia/Tokyo")
	saturdayNoon := time.Date(2025, 3, 15, 12, 0, 0, 0, loc).UTC()

	a, appErr := Classify(tokyoParticipant(), saturdayNoon, tokyoPolicy(), nil)
	if appErr != nil {
		t.Fatalf("Classify returned error: %v", appErr)
	}
	if a.Status != entity.StatusCritical {
		t.Errorf("status = %s, want %s", a.Status, entity.StatusCritical)
	}
	if a.Reason != ReasonNonWorkingDay {
		t.Errorf("reason = %q, want %q", a.Reason, ReasonNonWorkingDay)
	}
}

func TestClassifyHolidayOverridesEverything(t *testing.T) {
	holidays := []holidayentity.Holiday{
		{Date: "2025-03-12", Name: "Foundation Day", CountryCode: "JP"},
	}

	// Noon on a working Wednesday would be green without the holiday.
	a, appErr := Classify(tokyoParticipant(), tokyoTime(12, 0), tokyoPolicy(), holidays)
	if appErr != nil {
		t.Fatalf("Classify returned error: %v", appErr)
	}
	if a.Status != entity.StatusCritical {
		t.Errorf("status = %s, want %s", a.Status, entity.StatusCritical)
	}
	if want := "National Holiday: Foundation Day"; a.Reason != want {
		t.Errorf("reason = %q, want %q", a.Reason, want)
	}
}

func TestClassifyHolidayMatchesLocalDate(t *testing.T) {
	// 23:30 UTC on March 11 is already March 12 in Tokyo, so the March
	// 12 holiday must fire even though the UTC date differs.
	holidays := []holidayentity.Holiday{
		{Date: "2025-03-12", Name: "Foundation Day", CountryCode: "JP"},
	}

	candidate := time.Date(2025, 3, 11, 23, 30, 0, 0, time.UTC)
	a, appErr := Classify(tokyoParticipant(), candidate, tokyoPolicy(), holidays)
	if appErr != nil {
		t.Fatalf("Classify returned error: %v", appErr)
	}
	if a.Status != entity.StatusCritical {
		t.Errorf("status = %s, want %s", a.Status, entity.StatusCritical)
	}
}

func TestClassifyGapBetweenWindowsIsRed(t *testing.T) {
	// Policy with a hole between the morning buffer and the green window.
	policy := tokyoPolicy()
	policy.OrangeMorningStart = 7 * 60
	policy.OrangeMorningEnd = 8 * 60
	policy.GreenStart = 10 * 60

	a, appErr := Classify(tokyoParticipant(), tokyoTime(9, 0), policy, nil)
	if appErr != nil {
		t.Fatalf("Classify returned error: %v", appErr)
	}
	if a.Status != entity.StatusRed {
		t.Errorf("status = %s, want %s", a.Status, entity.StatusRed)
	}
	if a.Reason != ReasonOutsideHours {
		t.Errorf("reason = %q, want %q", a.Reason, ReasonOutsideHours)
	}
}

func TestClassifyInvalidTimezone(t *testing.T) {
	p := tokyoParticipant()
	p.Timezone = "Not/AZone"

	_, appErr := Classify(p, tokyoTime(12, 0), tokyoPolicy(), nil)
	if appErr == nil {
		t.Fatal("Classify with invalid timezone = nil error, want invalid timezone")
	}
	if appErr.Code != errors.ErrInvalidTimezone {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrInvalidTimezone)
	}
}
