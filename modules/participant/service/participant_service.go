package service

import (
	"context"
	"regexp"
	"time"

	"equimeet/core/errors"
	"equimeet/modules/participant/dto"
	"equimeet/modules/participant/entity"
	"equimeet/modules/participant/repository"

	"github.com/google/uuid"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// ParticipantService handles roster business logic.
type ParticipantService struct {
	repo repository.ParticipantRepositoryInterface
}

// ParticipantServiceInterface defines the service contract.
type ParticipantServiceInterface interface {
	Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	GetByID(ctx context.Context, organizerID, id uuid.UUID) (*dto.ParticipantResponse, *errors.AppError)
	List(ctx context.Context, organizerID uuid.UUID) ([]dto.ParticipantResponse, *errors.AppError)
	Update(ctx context.Context, organizerID, id uuid.UUID, req *dto.UpdateParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	Delete(ctx context.Context, organizerID, id uuid.UUID) *errors.AppError
}

func NewParticipantService(repo repository.ParticipantRepositoryInterface) ParticipantServiceInterface {
	return &ParticipantService{repo: repo}
}

// validateLocation rejects unknown IANA identifiers and malformed
// country codes up front. A silently substituted timezone would corrupt
// every downstream status, so this always fails loudly.
func validateLocation(timezone, countryCode string) *errors.AppError {
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return errors.NewAppError(errors.ErrInvalidTimezone, "Unknown IANA timezone: "+timezone, err)
	}
	if !countryCodeRe.MatchString(countryCode) {
		return errors.NewAppError(errors.ErrInvalidCountryCode, "Country code must be ISO-3166-1 alpha-2", nil)
	}
	return nil
}

func (s *ParticipantService) Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}
	if appErr := validateLocation(req.Timezone, req.CountryCode); appErr != nil {
		return nil, appErr
	}

	participant := &entity.Participant{
		OrganizerID: organizerID,
		Name:        req.Name,
		Timezone:    req.Timezone,
		CountryCode: req.CountryCode,
	}
	if req.Notes != "" {
		participant.Notes = &req.Notes
	}

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create participant", err)
	}

	return dto.ToParticipantResponse(created), nil
}

func (s *ParticipantService) GetByID(ctx context.Context, organizerID, id uuid.UUID) (*dto.ParticipantResponse, *errors.AppError) {
	participant, appErr := s.owned(ctx, organizerID, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToParticipantResponse(participant), nil
}

func (s *ParticipantService) List(ctx context.Context, organizerID uuid.UUID) ([]dto.ParticipantResponse, *errors.AppError) {
	participants, err := s.repo.GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participants", err)
	}

	result := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		result = append(result, *dto.ToParticipantResponse(&participants[i]))
	}
	return result, nil
}

func (s *ParticipantService) Update(ctx context.Context, organizerID, id uuid.UUID, req *dto.UpdateParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	participant, appErr := s.owned(ctx, organizerID, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != "" {
		participant.Name = req.Name
	}
	if req.Timezone != "" {
		participant.Timezone = req.Timezone
	}
	if req.CountryCode != "" {
		participant.CountryCode = req.CountryCode
	}
	if req.Notes != "" {
		participant.Notes = &req.Notes
	}

	if appErr := validateLocation(participant.Timezone, participant.CountryCode); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.Update(ctx, participant); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update participant", err)
	}

	return dto.ToParticipantResponse(participant), nil
}

func (s *ParticipantService) Delete(ctx context.Context, organizerID, id uuid.UUID) *errors.AppError {
	if _, appErr := s.owned(ctx, organizerID, id); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete participant", err)
	}
	return nil
}

// owned loads a participant and checks organizer ownership.
func (s *ParticipantService) owned(ctx context.Context, organizerID, id uuid.UUID) (*entity.Participant, *errors.AppError) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}
	if participant.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	return participant, nil
}
