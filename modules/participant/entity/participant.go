package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one member of an organizer's roster: who they are,
// where their clock lives and which country's holidays apply to them.
type Participant struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OrganizerID uuid.UUID `db:"organizer_id" json:"organizer_id"`
	Name        string    `db:"name" json:"name"`
	Timezone    string    `db:"timezone" json:"timezone"`         // IANA identifier, e.g. Europe/Paris
	CountryCode string    `db:"country_code" json:"country_code"` // ISO-3166-1 alpha-2
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
