package entity

import (
	"time"

	policyentity "equimeet/modules/policy/entity"

	"github.com/google/uuid"
)

// ComfortStatus is the four-level comfort classification for one
// participant at a candidate meeting time.
type ComfortStatus string

const (
	StatusGreen    ComfortStatus = "green"
	StatusOrange   ComfortStatus = "orange"
	StatusRed      ComfortStatus = "red"
	StatusCritical ComfortStatus = "critical"
)

// ParticipantAssessment is the classification of one participant for
// one candidate instant. Derived, never persisted; recomputed on every
// scoring call.
type ParticipantAssessment struct {
	ParticipantID uuid.UUID                  `json:"participant_id"`
	Name          string                     `json:"name"`
	Timezone      string                     `json:"timezone"`
	CountryCode   string                     `json:"country_code"`
	LocalTime     time.Time                  `json:"local_time"`
	Status        ComfortStatus              `json:"status"`
	Reason        string                     `json:"reason"`
	Policy        policyentity.CountryPolicy `json:"policy"`
}

// EquityResult is the aggregate fairness of one candidate instant:
// a 0-100 score plus the per-status breakdown.
type EquityResult struct {
	Score         float64 `json:"score"`
	GreenCount    int     `json:"green_count"`
	OrangeCount   int     `json:"orange_count"`
	RedCount      int     `json:"red_count"`
	CriticalCount int     `json:"critical_count"`
}

// HeatmapSlot is one hour of the 24-hour equity scan.
type HeatmapSlot struct {
	Hour        int                     `json:"hour"`
	StartUTC    time.Time               `json:"start_utc"`
	Equity      EquityResult            `json:"equity"`
	Assessments []ParticipantAssessment `json:"assessments"`
}
