package service

import (
	"context"
	"testing"

	"equimeet/core/errors"
	"equimeet/modules/participant/dto"
	"equimeet/modules/participant/entity"

	"github.com/google/uuid"
)

type fakeParticipantRepo struct {
	participants map[uuid.UUID]entity.Participant
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: make(map[uuid.UUID]entity.Participant)}
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *entity.Participant) (*entity.Participant, error) {
	saved := *p
	saved.ID = uuid.New()
	f.participants[saved.ID] = saved
	return &saved, nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Participant, error) {
	p, ok := f.participants[id]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (f *fakeParticipantRepo) GetByOrganizer(_ context.Context, organizerID uuid.UUID) ([]entity.Participant, error) {
	var result []entity.Participant
	for _, p := range f.participants {
		if p.OrganizerID == organizerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, p *entity.Participant) error {
	f.participants[p.ID] = *p
	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.participants, id)
	return nil
}

func TestCreateParticipantValidation(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())
	organizerID := uuid.New()

	tests := []struct {
		name     string
		req      dto.CreateParticipantRequest
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing name",
			req:      dto.CreateParticipantRequest{Timezone: "UTC", CountryCode: "FR"},
			wantCode: errors.ErrInvalidInput,
		},
		{
			name:     "unknown timezone",
			req:      dto.CreateParticipantRequest{Name: "Ada", Timezone: "Moon/Tranquility", CountryCode: "FR"},
			wantCode: errors.ErrInvalidTimezone,
		},
		{
			name:     "empty timezone",
			req:      dto.CreateParticipantRequest{Name: "Ada", Timezone: "", CountryCode: "FR"},
			wantCode: errors.ErrInvalidTimezone,
		},
		{
			name:     "lowercase country code",
			req:      dto.CreateParticipantRequest{Name: "Ada", Timezone: "UTC", CountryCode: "fr"},
			wantCode: errors.ErrInvalidCountryCode,
		},
		{
			name:     "three letter country code",
			req:      dto.CreateParticipantRequest{Name: "Ada", Timezone: "UTC", CountryCode: "FRA"},
			wantCode: errors.ErrInvalidCountryCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), organizerID, &tt.req)
			if appErr == nil {
				t.Fatal("Create = nil error, want validation failure")
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestCreateParticipant(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	resp, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateParticipantRequest{
		Name:        "Yuki",
		Timezone:    "Asia/Tokyo",
		CountryCode: "JP",
	})
	if appErr != nil {
		t.Fatalf("Create returned error: %v", appErr)
	}
	if resp.Name != "Yuki" || resp.Timezone != "Asia/Tokyo" || resp.CountryCode != "JP" {
		t.Errorf("response = %+v, want the created participant", resp)
	}
}

func TestParticipantOwnership(t *testing.T) {
	repo := newFakeParticipantRepo()
	svc := NewParticipantService(repo)
	owner := uuid.New()

	created, appErr := svc.Create(context.Background(), owner, &dto.CreateParticipantRequest{
		Name:        "Ada",
		Timezone:    "Europe/London",
		CountryCode: "GB",
	})
	if appErr != nil {
		t.Fatalf("Create returned error: %v", appErr)
	}

	createdID, err := uuid.Parse(created.ID)
	if err != nil {
		t.Fatalf("created ID %q is not a UUID: %v", created.ID, err)
	}

	if _, appErr := svc.GetByID(context.Background(), owner, createdID); appErr != nil {
		t.Errorf("owner GetByID returned error: %v", appErr)
	}

	_, appErr = svc.GetByID(context.Background(), uuid.New(), createdID)
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("foreign GetByID = %v, want forbidden", appErr)
	}

	appErr = svc.Delete(context.Background(), uuid.New(), createdID)
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("foreign Delete = %v, want forbidden", appErr)
	}
}
