package repository

import (
	"context"
	"database/sql"

	"equimeet/core/database"
	"equimeet/core/logger"
	"equimeet/modules/policy/entity"

	"github.com/google/uuid"
)

// PolicyRepository persists organizer-defined working-hours overrides.
type PolicyRepository struct {
	DB database.Database
}

func NewPolicyRepository(db database.Database) *PolicyRepository {
	return &PolicyRepository{DB: db}
}

// PolicyRepositoryInterface defines the repository contract.
type PolicyRepositoryInterface interface {
	Upsert(ctx context.Context, policy *entity.CustomPolicy) (*entity.CustomPolicy, error)
	GetByOrganizerAndCountry(ctx context.Context, organizerID uuid.UUID, countryCode string) (*entity.CustomPolicy, error)
	GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.CustomPolicy, error)
	Delete(ctx context.Context, organizerID uuid.UUID, countryCode string) error
}

// Upsert inserts or replaces the custom policy for (organizer, country).
// The unique constraint keeps at most one row per pair.
func (r *PolicyRepository) Upsert(ctx context.Context, policy *entity.CustomPolicy) (*entity.CustomPolicy, error) {
	query := `
		INSERT INTO custom_policies (organizer_id, country_code, green_start, green_end,
		                             orange_morning_start, orange_morning_end,
		                             orange_evening_start, orange_evening_end, work_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (organizer_id, country_code) DO UPDATE SET
			green_start = $3, green_end = $4,
			orange_morning_start = $5, orange_morning_end = $6,
			orange_evening_start = $7, orange_evening_end = $8,
			work_days = $9, updated_at = NOW()
		RETURNING id, organizer_id, country_code, green_start, green_end,
		          orange_morning_start, orange_morning_end,
		          orange_evening_start, orange_evening_end, work_days,
		          created_at, updated_at
	`

	var saved entity.CustomPolicy
	err := r.DB.GetContext(ctx, &saved, query,
		policy.OrganizerID, policy.CountryCode,
		policy.GreenStart, policy.GreenEnd,
		policy.OrangeMorningStart, policy.OrangeMorningEnd,
		policy.OrangeEveningStart, policy.OrangeEveningEnd,
		policy.WorkDays)
	if err != nil {
		logger.Error("PolicyRepository:Upsert", err)
		return nil, err
	}

	return &saved, nil
}

func (r *PolicyRepository) GetByOrganizerAndCountry(ctx context.Context, organizerID uuid.UUID, countryCode string) (*entity.CustomPolicy, error) {
	query := `
		SELECT id, organizer_id, country_code, green_start, green_end,
		       orange_morning_start, orange_morning_end,
		       orange_evening_start, orange_evening_end, work_days,
		       created_at, updated_at
		FROM custom_policies
		WHERE organizer_id = $1 AND country_code = $2
	`

	var policy entity.CustomPolicy
	err := r.DB.GetContext(ctx, &policy, query, organizerID, countryCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PolicyRepository:GetByOrganizerAndCountry", err)
		return nil, err
	}

	return &policy, nil
}

func (r *PolicyRepository) GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.CustomPolicy, error) {
	query := `
		SELECT id, organizer_id, country_code, green_start, green_end,
		       orange_morning_start, orange_morning_end,
		       orange_evening_start, orange_evening_end, work_days,
		       created_at, updated_at
		FROM custom_policies
		WHERE organizer_id = $1
		ORDER BY country_code
	`

	var policies []entity.CustomPolicy
	err := r.DB.SelectContext(ctx, &policies, query, organizerID)
	if err != nil {
		logger.Error("PolicyRepository:GetByOrganizer", err)
		return nil, err
	}

	return policies, nil
}

func (r *PolicyRepository) Delete(ctx context.Context, organizerID uuid.UUID, countryCode string) error {
	query := `DELETE FROM custom_policies WHERE organizer_id = $1 AND country_code = $2`
	err := r.DB.ExecContext(ctx, query, organizerID, countryCode)
	if err != nil {
		logger.Error("PolicyRepository:Delete", err)
		return err
	}
	return nil
}
