package service

import (
	"context"
	"regexp"
	"strings"

	"equimeet/core/config"
	"equimeet/core/errors"
	"equimeet/core/utils"
	"equimeet/modules/organizer/dto"
	"equimeet/modules/organizer/entity"
	"equimeet/modules/organizer/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

// OrganizerService handles account registration and login.
type OrganizerService struct {
	repo    repository.OrganizerRepositoryInterface
	authCfg config.AuthConfig
}

// OrganizerServiceInterface defines the service contract.
type OrganizerServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Profile(ctx context.Context, organizerID uuid.UUID) (*dto.OrganizerResponse, *errors.AppError)
}

func NewOrganizerService(repo repository.OrganizerRepositoryInterface, authCfg config.AuthConfig) OrganizerServiceInterface {
	return &OrganizerService{repo: repo, authCfg: authCfg}
}

func (s *OrganizerService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRe.MatchString(email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid email address", nil)
	}
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}
	if len(req.Password) < minPasswordLength {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 8 characters", nil)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check email", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	created, err := s.repo.Create(ctx, &entity.Organizer{
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create organizer", err)
	}

	return s.authResponse(created)
}

func (s *OrganizerService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	organizer, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load organizer", err)
	}
	if organizer == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	return s.authResponse(organizer)
}

func (s *OrganizerService) Profile(ctx context.Context, organizerID uuid.UUID) (*dto.OrganizerResponse, *errors.AppError) {
	organizer, err := s.repo.GetByID(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load organizer", err)
	}
	if organizer == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Organizer not found", nil)
	}

	resp := dto.ToOrganizerResponse(organizer)
	return &resp, nil
}

func (s *OrganizerService) authResponse(organizer *entity.Organizer) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(organizer.ID, s.authCfg.JWTSecret, s.authCfg.TokenTTL)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to sign token", err)
	}

	return &dto.AuthResponse{
		Token:     token,
		Organizer: dto.ToOrganizerResponse(organizer),
	}, nil
}
