package repository

import (
	"context"
	"database/sql"

	"equimeet/core/database"
	"equimeet/core/logger"
	"equimeet/modules/meeting/entity"
	participantentity "equimeet/modules/participant/entity"

	"github.com/google/uuid"
)

// MeetingRepository persists meetings and their roster links.
type MeetingRepository struct {
	DB database.Database
}

func NewMeetingRepository(db database.Database) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

// MeetingRepositoryInterface defines the repository contract.
type MeetingRepositoryInterface interface {
	Create(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	GetByShareCode(ctx context.Context, shareCode string) (*entity.Meeting, error)
	GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Meeting, error)
	Update(ctx context.Context, meeting *entity.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddParticipant(ctx context.Context, meetingID, participantID uuid.UUID) error
	RemoveParticipant(ctx context.Context, meetingID, participantID uuid.UUID) error
	GetRoster(ctx context.Context, meetingID uuid.UUID) ([]participantentity.Participant, error)
}

const meetingColumns = `id, organizer_id, title, slug, share_code, description,
       duration_minutes, status, scheduled_at, created_at, updated_at`

// ===================== Meetings =====================

func (r *MeetingRepository) Create(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (organizer_id, title, slug, share_code, description, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + meetingColumns

	var saved entity.Meeting
	err := r.DB.GetContext(ctx, &saved, query,
		meeting.OrganizerID, meeting.Title, meeting.Slug, meeting.ShareCode,
		meeting.Description, meeting.DurationMinutes, meeting.Status)
	if err != nil {
		logger.Error("MeetingRepository:Create", err)
		return nil, err
	}

	return &saved, nil
}

func (r *MeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetByID", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) GetByShareCode(ctx context.Context, shareCode string) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE share_code = $1`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, shareCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetByShareCode", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE organizer_id = $1 ORDER BY created_at DESC`

	var meetings []entity.Meeting
	err := r.DB.SelectContext(ctx, &meetings, query, organizerID)
	if err != nil {
		logger.Error("MeetingRepository:GetByOrganizer", err)
		return nil, err
	}

	return meetings, nil
}

func (r *MeetingRepository) Update(ctx context.Context, meeting *entity.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $2, slug = $3, description = $4, duration_minutes = $5,
		    status = $6, scheduled_at = $7, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		meeting.ID, meeting.Title, meeting.Slug, meeting.Description,
		meeting.DurationMinutes, meeting.Status, meeting.ScheduledAt)
	if err != nil {
		logger.Error("MeetingRepository:Update", err)
		return err
	}
	return nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM meetings WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("MeetingRepository:Delete", err)
		return err
	}
	return nil
}

// ===================== Roster links =====================

// AddParticipant links a participant to a meeting. Adding the same
// participant twice is a no-op.
func (r *MeetingRepository) AddParticipant(ctx context.Context, meetingID, participantID uuid.UUID) error {
	query := `
		INSERT INTO meeting_participants (meeting_id, participant_id)
		VALUES ($1, $2)
		ON CONFLICT (meeting_id, participant_id) DO NOTHING
	`

	err := r.DB.ExecContext(ctx, query, meetingID, participantID)
	if err != nil {
		logger.Error("MeetingRepository:AddParticipant", err)
		return err
	}
	return nil
}

func (r *MeetingRepository) RemoveParticipant(ctx context.Context, meetingID, participantID uuid.UUID) error {
	query := `DELETE FROM meeting_participants WHERE meeting_id = $1 AND participant_id = $2`
	err := r.DB.ExecContext(ctx, query, meetingID, participantID)
	if err != nil {
		logger.Error("MeetingRepository:RemoveParticipant", err)
		return err
	}
	return nil
}

// GetRoster returns the full participant rows linked to a meeting.
func (r *MeetingRepository) GetRoster(ctx context.Context, meetingID uuid.UUID) ([]participantentity.Participant, error) {
	query := `
		SELECT p.id, p.organizer_id, p.name, p.timezone, p.country_code, p.notes,
		       p.created_at, p.updated_at
		FROM participants p
		JOIN meeting_participants mp ON mp.participant_id = p.id
		WHERE mp.meeting_id = $1
		ORDER BY p.name
	`

	var roster []participantentity.Participant
	err := r.DB.SelectContext(ctx, &roster, query, meetingID)
	if err != nil {
		logger.Error("MeetingRepository:GetRoster", err)
		return nil, err
	}

	return roster, nil
}
