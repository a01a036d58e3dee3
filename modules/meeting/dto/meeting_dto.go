package dto

import (
	"time"

	"equimeet/modules/meeting/entity"

	"github.com/google/uuid"
)

// ===================== Requests =====================

type CreateMeetingRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	ParticipantIDs  []string `json:"participant_ids"`
}

type UpdateMeetingRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

type AddParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

// ScoreRequest carries a candidate start instant in RFC 3339 form.
type ScoreRequest struct {
	CandidateTime string `json:"candidate_time"`
}

// HeatmapRequest selects the day to scan. TargetDate is YYYY-MM-DD and
// names a UTC calendar day; TopN bounds the suggestion list.
type HeatmapRequest struct {
	TargetDate string `json:"target_date"`
	TopN       int    `json:"top_n"`
}

type SelectSlotRequest struct {
	StartTime string `json:"start_time"`
}

// ===================== Responses =====================

type MeetingResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	ShareCode       string     `json:"share_code"`
	Description     *string    `json:"description,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AssessmentResponse struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	Name          string    `json:"name"`
	Timezone      string    `json:"timezone"`
	CountryCode   string    `json:"country_code"`
	LocalTime     string    `json:"local_time"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason"`
}

type EquityResponse struct {
	Score         float64 `json:"score"`
	GreenCount    int     `json:"green_count"`
	OrangeCount   int     `json:"orange_count"`
	RedCount      int     `json:"red_count"`
	CriticalCount int     `json:"critical_count"`
}

// ScoreResponse is the assessment of one candidate instant. Degraded
// mirrors the holiday cache flag: holiday conflicts may be missing.
type ScoreResponse struct {
	MeetingID     uuid.UUID            `json:"meeting_id"`
	CandidateTime time.Time            `json:"candidate_time"`
	Degraded      bool                 `json:"degraded"`
	Equity        EquityResponse       `json:"equity"`
	Participants  []AssessmentResponse `json:"participants"`
}

type HeatmapSlotResponse struct {
	Hour         int                  `json:"hour"`
	StartUTC     time.Time            `json:"start_utc"`
	Equity       EquityResponse       `json:"equity"`
	Participants []AssessmentResponse `json:"participants"`
}

type HeatmapResponse struct {
	MeetingID   uuid.UUID             `json:"meeting_id"`
	TargetDate  string                `json:"target_date"`
	Degraded    bool                  `json:"degraded"`
	Slots       []HeatmapSlotResponse `json:"slots"`
	Suggestions []HeatmapSlotResponse `json:"suggestions"`
}

// SharedMeetingResponse is the public view behind a share code.
type SharedMeetingResponse struct {
	Title           string     `json:"title"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
}

// ===================== Mappers =====================

func ToMeetingResponse(m *entity.Meeting) *MeetingResponse {
	return &MeetingResponse{
		ID:              m.ID,
		Title:           m.Title,
		Slug:            m.Slug,
		ShareCode:       m.ShareCode,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		Status:          string(m.Status),
		ScheduledAt:     m.ScheduledAt,
		CreatedAt:       m.CreatedAt,
	}
}

func ToSharedMeetingResponse(m *entity.Meeting) *SharedMeetingResponse {
	return &SharedMeetingResponse{
		Title:           m.Title,
		DurationMinutes: m.DurationMinutes,
		Status:          string(m.Status),
		ScheduledAt:     m.ScheduledAt,
	}
}

func ToEquityResponse(e entity.EquityResult) EquityResponse {
	return EquityResponse{
		Score:         e.Score,
		GreenCount:    e.GreenCount,
		OrangeCount:   e.OrangeCount,
		RedCount:      e.RedCount,
		CriticalCount: e.CriticalCount,
	}
}

// ToAssessmentResponses formats local times as RFC 3339 so the zone
// offset stays visible to the client.
func ToAssessmentResponses(assessments []entity.ParticipantAssessment) []AssessmentResponse {
	result := make([]AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		result = append(result, AssessmentResponse{
			ParticipantID: a.ParticipantID,
			Name:          a.Name,
			Timezone:      a.Timezone,
			CountryCode:   a.CountryCode,
			LocalTime:     a.LocalTime.Format(time.RFC3339),
			Status:        string(a.Status),
			Reason:        a.Reason,
		})
	}
	return result
}

func ToHeatmapSlotResponses(slots []entity.HeatmapSlot) []HeatmapSlotResponse {
	result := make([]HeatmapSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, HeatmapSlotResponse{
			Hour:         slots[i].Hour,
			StartUTC:     slots[i].StartUTC,
			Equity:       ToEquityResponse(slots[i].Equity),
			Participants: ToAssessmentResponses(slots[i].Assessments),
		})
	}
	return result
}
