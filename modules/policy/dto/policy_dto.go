package dto

import (
	"fmt"

	"equimeet/modules/policy/entity"
)

// ===================== Request DTOs =====================

// PolicyRequest carries a working-hours override. Times are "HH:MM"
// wall-clock strings; work_days are ISO weekdays (1=Monday..7=Sunday).
type PolicyRequest struct {
	GreenStart         string `json:"green_start" validate:"required"`
	GreenEnd           string `json:"green_end" validate:"required"`
	OrangeMorningStart string `json:"orange_morning_start" validate:"required"`
	OrangeMorningEnd   string `json:"orange_morning_end" validate:"required"`
	OrangeEveningStart string `json:"orange_evening_start" validate:"required"`
	OrangeEveningEnd   string `json:"orange_evening_end" validate:"required"`
	WorkDays           []int  `json:"work_days" validate:"required"`
}

// ===================== Response DTOs =====================

// PolicyResponse renders a policy with "HH:MM" times.
type PolicyResponse struct {
	CountryCode        string `json:"country_code"`
	GreenStart         string `json:"green_start"`
	GreenEnd           string `json:"green_end"`
	OrangeMorningStart string `json:"orange_morning_start"`
	OrangeMorningEnd   string `json:"orange_morning_end"`
	OrangeEveningStart string `json:"orange_evening_start"`
	OrangeEveningEnd   string `json:"orange_evening_end"`
	WorkDays           []int  `json:"work_days"`
}

// EffectivePolicyResponse includes which resolution tier produced the policy.
type EffectivePolicyResponse struct {
	PolicyResponse
	Source entity.PolicySource `json:"source"`
}

// ===================== Time helpers =====================

// ParseMinutes converts an "HH:MM" string into minutes of the day.
func ParseMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

// FormatMinutes converts minutes of the day back into "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ===================== Mapper functions =====================

// ToPolicyResponse maps the engine value type to the API shape.
func ToPolicyResponse(p entity.CountryPolicy) PolicyResponse {
	return PolicyResponse{
		CountryCode:        p.CountryCode,
		GreenStart:         FormatMinutes(p.GreenStart),
		GreenEnd:           FormatMinutes(p.GreenEnd),
		OrangeMorningStart: FormatMinutes(p.OrangeMorningStart),
		OrangeMorningEnd:   FormatMinutes(p.OrangeMorningEnd),
		OrangeEveningStart: FormatMinutes(p.OrangeEveningStart),
		OrangeEveningEnd:   FormatMinutes(p.OrangeEveningEnd),
		WorkDays:           p.WorkDays,
	}
}

// ToCountryPolicy parses a request into the engine value type.
func ToCountryPolicy(countryCode string, req *PolicyRequest) (entity.CountryPolicy, error) {
	greenStart, err := ParseMinutes(req.GreenStart)
	if err != nil {
		return entity.CountryPolicy{}, err
	}
	greenEnd, err := ParseMinutes(req.GreenEnd)
	if err != nil {
		return entity.CountryPolicy{}, err
	}
	omStart, err := ParseMinutes(req.OrangeMorningStart)
	if err != nil {
		return entity.CountryPolicy{}, err
	}
	omEnd, err := ParseMinutes(req.OrangeMorningEnd)
	if err != nil {
		return entity.CountryPolicy{}, err
	}
	oeStart, err := ParseMinutes(req.OrangeEveningStart)
	if err != nil {
		return entity.CountryPolicy{}, err
	}
	oeEnd, err := ParseMinutes(req.OrangeEveningEnd)
	if err != nil {
		return entity.CountryPolicy{}, err
	}

	return entity.CountryPolicy{
		CountryCode:        countryCode,
		GreenStart:         greenStart,
		GreenEnd:           greenEnd,
		OrangeMorningStart: omStart,
		OrangeMorningEnd:   omEnd,
		OrangeEveningStart: oeStart,
		OrangeEveningEnd:   oeEnd,
		WorkDays:           req.WorkDays,
	}, nil
}
