package repository

import (
	"context"
	"database/sql"

	"equimeet/core/database"
	"equimeet/core/logger"
	"equimeet/modules/organizer/entity"

	"github.com/google/uuid"
)

// OrganizerRepository persists organizer accounts.
type OrganizerRepository struct {
	DB database.Database
}

func NewOrganizerRepository(db database.Database) *OrganizerRepository {
	return &OrganizerRepository{DB: db}
}

// OrganizerRepositoryInterface defines the repository contract.
type OrganizerRepositoryInterface interface {
	Create(ctx context.Context, organizer *entity.Organizer) (*entity.Organizer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Organizer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Organizer, error)
}

func (r *OrganizerRepository) Create(ctx context.Context, organizer *entity.Organizer) (*entity.Organizer, error) {
	query := `
		INSERT INTO organizers (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, password_hash, created_at, updated_at
	`

	var created entity.Organizer
	err := r.DB.GetContext(ctx, &created, query, organizer.Email, organizer.Name, organizer.PasswordHash)
	if err != nil {
		logger.Error("OrganizerRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *OrganizerRepository) GetByEmail(ctx context.Context, email string) (*entity.Organizer, error) {
	query := `SELECT id, email, name, password_hash, created_at, updated_at FROM organizers WHERE email = $1`

	var organizer entity.Organizer
	err := r.DB.GetContext(ctx, &organizer, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OrganizerRepository:GetByEmail", err)
		return nil, err
	}

	return &organizer, nil
}

func (r *OrganizerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Organizer, error) {
	query := `SELECT id, email, name, password_hash, created_at, updated_at FROM organizers WHERE id = $1`

	var organizer entity.Organizer
	err := r.DB.GetContext(ctx, &organizer, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OrganizerRepository:GetByID", err)
		return nil, err
	}

	return &organizer, nil
}
