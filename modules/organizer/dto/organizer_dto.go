package dto

import (
	"time"

	"equimeet/modules/organizer/entity"

	"github.com/google/uuid"
)

// ===================== Requests =====================

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ===================== Responses =====================

type OrganizerResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries the signed token plus the account it identifies.
type AuthResponse struct {
	Token     string            `json:"token"`
	Organizer OrganizerResponse `json:"organizer"`
}

// ===================== Mappers =====================

func ToOrganizerResponse(o *entity.Organizer) OrganizerResponse {
	return OrganizerResponse{
		ID:        o.ID,
		Email:     o.Email,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
	}
}
