package dto

import (
	"time"

	"equimeet/modules/participant/entity"
)

// ===================== Request DTOs =====================

// CreateParticipantRequest adds a person to the organizer's roster.
type CreateParticipantRequest struct {
	Name        string `json:"name" validate:"required"`
	Timezone    string `json:"timezone" validate:"required"`
	CountryCode string `json:"country_code" validate:"required"`
	Notes       string `json:"notes"`
}

// UpdateParticipantRequest updates roster details. Empty fields keep
// their current value.
type UpdateParticipantRequest struct {
	Name        string `json:"name"`
	Timezone    string `json:"timezone"`
	CountryCode string `json:"country_code"`
	Notes       string `json:"notes"`
}

// ===================== Response DTOs =====================

// ParticipantResponse renders one roster entry.
type ParticipantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Timezone    string    `json:"timezone"`
	CountryCode string    `json:"country_code"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ===================== Mapper functions =====================

// ToParticipantResponse maps entity to DTO.
func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	resp := &ParticipantResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Timezone:    p.Timezone,
		CountryCode: p.CountryCode,
		CreatedAt:   p.CreatedAt,
	}
	if p.Notes != nil {
		resp.Notes = *p.Notes
	}
	return resp
}
