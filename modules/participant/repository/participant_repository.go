package repository

import (
	"context"
	"database/sql"

	"equimeet/core/database"
	"equimeet/core/logger"
	"equimeet/modules/participant/entity"

	"github.com/google/uuid"
)

// ParticipantRepository handles roster database operations.
type ParticipantRepository struct {
	DB database.Database
}

func NewParticipantRepository(db database.Database) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// ParticipantRepositoryInterface defines the repository contract.
type ParticipantRepositoryInterface interface {
	Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Participant, error)
	Update(ctx context.Context, participant *entity.Participant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (organizer_id, name, timezone, country_code, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, organizer_id, name, timezone, country_code, notes, created_at, updated_at
	`

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query,
		participant.OrganizerID, participant.Name, participant.Timezone,
		participant.CountryCode, participant.Notes)
	if err != nil {
		logger.Error("ParticipantRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `
		SELECT id, organizer_id, name, timezone, country_code, notes, created_at, updated_at
		FROM participants WHERE id = $1
	`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}

	return &participant, nil
}

func (r *ParticipantRepository) GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT id, organizer_id, name, timezone, country_code, notes, created_at, updated_at
		FROM participants
		WHERE organizer_id = $1
		ORDER BY name
	`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query, organizerID)
	if err != nil {
		logger.Error("ParticipantRepository:GetByOrganizer", err)
		return nil, err
	}

	return participants, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entity.Participant) error {
	query := `
		UPDATE participants
		SET name = $2, timezone = $3, country_code = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		participant.ID, participant.Name, participant.Timezone,
		participant.CountryCode, participant.Notes)
	if err != nil {
		logger.Error("ParticipantRepository:Update", err)
		return err
	}
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ParticipantRepository:Delete", err)
		return err
	}
	return nil
}
