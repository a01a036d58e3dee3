package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PolicySource tells where an effective policy came from.
type PolicySource string

const (
	PolicySourceCustom   PolicySource = "custom"
	PolicySourceDefault  PolicySource = "default"
	PolicySourceFallback PolicySource = "fallback"
)

// CountryPolicy describes the working-hours windows for one country.
// All times are minutes of the local day (0..1440); every window is
// half-open [start, end). WorkDays holds ISO weekdays, 1=Monday..7=Sunday.
type CountryPolicy struct {
	CountryCode        string `json:"country_code"`
	GreenStart         int    `json:"green_start"`
	GreenEnd           int    `json:"green_end"`
	OrangeMorningStart int    `json:"orange_morning_start"`
	OrangeMorningEnd   int    `json:"orange_morning_end"`
	OrangeEveningStart int    `json:"orange_evening_start"`
	OrangeEveningEnd   int    `json:"orange_evening_end"`
	WorkDays           []int  `json:"work_days"`
}

// IsWorkDay reports whether the given ISO weekday is a working day.
func (p CountryPolicy) IsWorkDay(isoWeekday int) bool {
	for _, d := range p.WorkDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// CustomPolicy is an organizer-defined override for one country.
// At most one row exists per (organizer_id, country_code).
type CustomPolicy struct {
	ID                 uuid.UUID     `db:"id" json:"id"`
	OrganizerID        uuid.UUID     `db:"organizer_id" json:"organizer_id"`
	CountryCode        string        `db:"country_code" json:"country_code"`
	GreenStart         int           `db:"green_start" json:"green_start"`
	GreenEnd           int           `db:"green_end" json:"green_end"`
	OrangeMorningStart int           `db:"orange_morning_start" json:"orange_morning_start"`
	OrangeMorningEnd   int           `db:"orange_morning_end" json:"orange_morning_end"`
	OrangeEveningStart int           `db:"orange_evening_start" json:"orange_evening_start"`
	OrangeEveningEnd   int           `db:"orange_evening_end" json:"orange_evening_end"`
	WorkDays           pq.Int64Array `db:"work_days" json:"work_days"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updated_at"`
}

// ToCountryPolicy converts the stored row into the value type used by
// the scheduling engine.
func (c *CustomPolicy) ToCountryPolicy() CountryPolicy {
	days := make([]int, 0, len(c.WorkDays))
	for _, d := range c.WorkDays {
		days = append(days, int(d))
	}
	return CountryPolicy{
		CountryCode:        c.CountryCode,
		GreenStart:         c.GreenStart,
		GreenEnd:           c.GreenEnd,
		OrangeMorningStart: c.OrangeMorningStart,
		OrangeMorningEnd:   c.OrangeMorningEnd,
		OrangeEveningStart: c.OrangeEveningStart,
		OrangeEveningEnd:   c.OrangeEveningEnd,
		WorkDays:           days,
	}
}
