package service

import (
	"context"
	"regexp"

	"equimeet/core/errors"
	"equimeet/modules/policy/dto"
	"equimeet/modules/policy/entity"
	"equimeet/modules/policy/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// PolicyService manages custom policies and resolves the effective
// working-hours policy for a country.
type PolicyService struct {
	repo repository.PolicyRepositoryInterface
}

// PolicyServiceInterface defines the service contract.
type PolicyServiceInterface interface {
	UpsertCustomPolicy(ctx context.Context, organizerID uuid.UUID, countryCode string, req *dto.PolicyRequest) (*dto.PolicyResponse, *errors.AppError)
	ListCustomPolicies(ctx context.Context, organizerID uuid.UUID) ([]dto.PolicyResponse, *errors.AppError)
	EffectivePolicy(ctx context.Context, organizerID uuid.UUID, countryCode string) (*dto.EffectivePolicyResponse, *errors.AppError)
	DeleteCustomPolicy(ctx context.Context, organizerID uuid.UUID, countryCode string) *errors.AppError

	// CustomPolicies and Resolve are consumed by the scheduling engine.
	CustomPolicies(ctx context.Context, organizerID uuid.UUID) (map[string]entity.CountryPolicy, *errors.AppError)
	Resolve(countryCode string, custom map[string]entity.CountryPolicy) (entity.CountryPolicy, entity.PolicySource)
}

func NewPolicyService(repo repository.PolicyRepositoryInterface) PolicyServiceInterface {
	return &PolicyService{repo: repo}
}

// Resolve applies the two-tier lookup: organizer custom policy first,
// then the built-in country default, then the global fallback. It never
// fails; some usable policy always comes back.
func (s *PolicyService) Resolve(countryCode string, custom map[string]entity.CountryPolicy) (entity.CountryPolicy, entity.PolicySource) {
	if p, ok := custom[countryCode]; ok {
		return p, entity.PolicySourceCustom
	}
	if p, ok := DefaultPolicy(countryCode); ok {
		return p, entity.PolicySourceDefault
	}
	return GlobalFallbackPolicy(countryCode), entity.PolicySourceFallback
}

// CustomPolicies loads the organizer's overrides keyed by country code.
func (s *PolicyService) CustomPolicies(ctx context.Context, organizerID uuid.UUID) (map[string]entity.CountryPolicy, *errors.AppError) {
	rows, err := s.repo.GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load custom policies", err)
	}

	custom := make(map[string]entity.CountryPolicy, len(rows))
	for i := range rows {
		custom[rows[i].CountryCode] = rows[i].ToCountryPolicy()
	}
	return custom, nil
}

func (s *PolicyService) UpsertCustomPolicy(ctx context.Context, organizerID uuid.UUID, countryCode string, req *dto.PolicyRequest) (*dto.PolicyResponse, *errors.AppError) {
	if !countryCodeRe.MatchString(countryCode) {
		return nil, errors.NewAppError(errors.ErrInvalidCountryCode, "Country code must be ISO-3166-1 alpha-2", nil)
	}

	policy, err := dto.ToCountryPolicy(countryCode, req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidPolicy, "Invalid time format", err)
	}

	if appErr := ValidatePolicy(policy); appErr != nil {
		return nil, appErr
	}

	days := make(pq.Int64Array, 0, len(policy.WorkDays))
	for _, d := range policy.WorkDays {
		days = append(days, int64(d))
	}

	saved, err := s.repo.Upsert(ctx, &entity.CustomPolicy{
		OrganizerID:        organizerID,
		CountryCode:        countryCode,
		GreenStart:         policy.GreenStart,
		GreenEnd:           policy.GreenEnd,
		OrangeMorningStart: policy.OrangeMorningStart,
		OrangeMorningEnd:   policy.OrangeMorningEnd,
		OrangeEveningStart: policy.OrangeEveningStart,
		OrangeEveningEnd:   policy.OrangeEveningEnd,
		WorkDays:           days,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save policy", err)
	}

	resp := dto.ToPolicyResponse(saved.ToCountryPolicy())
	return &resp, nil
}

func (s *PolicyService) ListCustomPolicies(ctx context.Context, organizerID uuid.UUID) ([]dto.PolicyResponse, *errors.AppError) {
	rows, err := s.repo.GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load policies", err)
	}

	result := make([]dto.PolicyResponse, 0, len(rows))
	for i := range rows {
		result = append(result, dto.ToPolicyResponse(rows[i].ToCountryPolicy()))
	}
	return result, nil
}

// EffectivePolicy returns the policy the engine would use for the
// country, annotated with its resolution tier.
func (s *PolicyService) EffectivePolicy(ctx context.Context, organizerID uuid.UUID, countryCode string) (*dto.EffectivePolicyResponse, *errors.AppError) {
	if !countryCodeRe.MatchString(countryCode) {
		return nil, errors.NewAppError(errors.ErrInvalidCountryCode, "Country code must be ISO-3166-1 alpha-2", nil)
	}

	custom, appErr := s.CustomPolicies(ctx, organizerID)
	if appErr != nil {
		return nil, appErr
	}

	policy, source := s.Resolve(countryCode, custom)
	return &dto.EffectivePolicyResponse{
		PolicyResponse: dto.ToPolicyResponse(policy),
		Source:         source,
	}, nil
}

func (s *PolicyService) DeleteCustomPolicy(ctx context.Context, organizerID uuid.UUID, countryCode string) *errors.AppError {
	if !countryCodeRe.MatchString(countryCode) {
		return errors.NewAppError(errors.ErrInvalidCountryCode, "Country code must be ISO-3166-1 alpha-2", nil)
	}

	existing, err := s.repo.GetByOrganizerAndCountry(ctx, organizerID, countryCode)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load policy", err)
	}
	if existing == nil {
		return errors.NewAppError(errors.ErrNotFound, "No custom policy for this country", nil)
	}

	if err := s.repo.Delete(ctx, organizerID, countryCode); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete policy", err)
	}
	return nil
}

// ValidatePolicy rejects malformed window ordering before any
// classification runs. Windows must satisfy
// orangeMorningStart <= orangeMorningEnd <= greenStart < greenEnd
// <= orangeEveningStart <= orangeEveningEnd, all within one day.
func ValidatePolicy(p entity.CountryPolicy) *errors.AppError {
	if p.OrangeMorningStart < 0 || p.OrangeEveningEnd > minutesPerDay {
		return errors.NewAppError(errors.ErrInvalidPolicy, "Windows must fall within 00:00-24:00", nil)
	}
	if p.GreenStart >= p.GreenEnd {
		return errors.NewAppError(errors.ErrInvalidPolicy, "Green window start must be before its end", nil)
	}
	if p.OrangeMorningStart > p.OrangeMorningEnd || p.OrangeMorningEnd > p.GreenStart {
		return errors.NewAppError(errors.ErrInvalidPolicy, "Morning buffer must precede the green window", nil)
	}
	if p.GreenEnd > p.OrangeEveningStart || p.OrangeEveningStart > p.OrangeEveningEnd {
		return errors.NewAppError(errors.ErrInvalidPolicy, "Evening buffer must follow the green window", nil)
	}
	if len(p.WorkDays) == 0 {
		return errors.NewAppError(errors.ErrInvalidPolicy, "At least one working day is required", nil)
	}
	seen := map[int]bool{}
	for _, d := range p.WorkDays {
		if d < 1 || d > 7 {
			return errors.NewAppError(errors.ErrInvalidPolicy, "Work days must be ISO weekdays 1-7", nil)
		}
		if seen[d] {
			return errors.NewAppError(errors.ErrInvalidPolicy, "Duplicate work day", nil)
		}
		seen[d] = true
	}
	return nil
}
