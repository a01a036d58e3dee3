package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle state of a meeting.
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting is an event the organizer is trying to place fairly across
// the roster's timezones.
type Meeting struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	OrganizerID     uuid.UUID     `db:"organizer_id" json:"organizer_id"`
	Title           string        `db:"title" json:"title"`
	Slug            string        `db:"slug" json:"slug"`
	ShareCode       string        `db:"share_code" json:"share_code"`
	Description     *string       `db:"description" json:"description,omitempty"`
	DurationMinutes int           `db:"duration_minutes" json:"duration_minutes"`
	Status          MeetingStatus `db:"status" json:"status"`
	ScheduledAt     *time.Time    `db:"scheduled_at" json:"scheduled_at,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// MeetingParticipant links a roster member to a meeting.
type MeetingParticipant struct {
	MeetingID     uuid.UUID `db:"meeting_id" json:"meeting_id"`
	ParticipantID uuid.UUID `db:"participant_id" json:"participant_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
