package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"equimeet/core/errors"
	holidayentity "equimeet/modules/holiday/entity"
	"equimeet/modules/meeting/dto"
	"equimeet/modules/meeting/entity"
	participantentity "equimeet/modules/participant/entity"
	policyentity "equimeet/modules/policy/entity"
	policyrepository "equimeet/modules/policy/repository"
	policyservice "equimeet/modules/policy/service"

	"github.com/google/uuid"
)

// ===================== Fakes =====================

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]entity.Meeting
	rosters  map[uuid.UUID][]participantentity.Participant
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{
		meetings: make(map[uuid.UUID]entity.Meeting),
		rosters:  make(map[uuid.UUID][]participantentity.Participant),
	}
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entity.Meeting) (*entity.Meeting, error) {
	saved := *m
	saved.ID = uuid.New()
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.meetings[saved.ID] = saved
	return &saved, nil
}

func (f *fakeMeetingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, nil
	}
	copied := m
	return &copied, nil
}

func (f *fakeMeetingRepo) GetByShareCode(_ context.Context, shareCode string) (*entity.Meeting, error) {
	for _, m := range f.meetings {
		if m.ShareCode == shareCode {
			copied := m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMeetingRepo) GetByOrganizer(_ context.Context, organizerID uuid.UUID) ([]entity.Meeting, error) {
	var result []entity.Meeting
	for _, m := range f.meetings {
		if m.OrganizerID == organizerID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeetingRepo) Update(_ context.Context, m *entity.Meeting) error {
	f.meetings[m.ID] = *m
	return nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.meetings, id)
	return nil
}

func (f *fakeMeetingRepo) AddParticipant(_ context.Context, meetingID, participantID uuid.UUID) error {
	return nil
}

func (f *fakeMeetingRepo) RemoveParticipant(_ context.Context, meetingID, participantID uuid.UUID) error {
	return nil
}

func (f *fakeMeetingRepo) GetRoster(_ context.Context, meetingID uuid.UUID) ([]participantentity.Participant, error) {
	return f.rosters[meetingID], nil
}

type fakeParticipantRepo struct {
	participants map[uuid.UUID]participantentity.Participant
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *participantentity.Participant) (*participantentity.Participant, error) {
	return p, nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id uuid.UUID) (*participantentity.Participant, error) {
	p, ok := f.participants[id]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (f *fakeParticipantRepo) GetByOrganizer(_ context.Context, organizerID uuid.UUID) ([]participantentity.Participant, error) {
	return nil, nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, p *participantentity.Participant) error {
	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, id uuid.UUID) error {
	return nil
}

// fakePolicyRepo backs the real policy service with no custom rows, so
// resolution exercises the built-in defaults.
type fakePolicyRepo struct{}

func (fakePolicyRepo) Upsert(_ context.Context, p *policyentity.CustomPolicy) (*policyentity.CustomPolicy, error) {
	return p, nil
}

func (fakePolicyRepo) GetByOrganizerAndCountry(_ context.Context, _ uuid.UUID, _ string) (*policyentity.CustomPolicy, error) {
	return nil, nil
}

func (fakePolicyRepo) GetByOrganizer(_ context.Context, _ uuid.UUID) ([]policyentity.CustomPolicy, error) {
	return nil, nil
}

func (fakePolicyRepo) Delete(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

var _ policyrepository.PolicyRepositoryInterface = fakePolicyRepo{}

type fakeHolidayCache struct {
	data     map[string][]holidayentity.Holiday
	degraded bool
}

func (f *fakeHolidayCache) Holidays(_ context.Context, countryCode string, year int) ([]holidayentity.Holiday, bool) {
	return f.data[fmt.Sprintf("%s:%d", countryCode, year)], f.degraded
}

func (f *fakeHolidayCache) Refresh(_ context.Context, _ string, _ int) error {
	return nil
}

func (f *fakeHolidayCache) Keys(_ context.Context) ([]holidayentity.CacheKey, error) {
	return nil, nil
}

// ===================== Fixtures =====================

type serviceFixture struct {
	svc         MeetingServiceInterface
	repo        *fakeMeetingRepo
	cache       *fakeHolidayCache
	organizerID uuid.UUID
	meetingID   uuid.UUID
}

func newServiceFixture(roster []participantentity.Participant) *serviceFixture {
	organizerID := uuid.New()
	meetingID := uuid.New()

	repo := newFakeMeetingRepo()
	repo.meetings[meetingID] = entity.Meeting{
		ID:              meetingID,
		OrganizerID:     organizerID,
		Title:           "Weekly sync",
		Slug:            "weekly-sync",
		ShareCode:       "AbC123xYz0",
		DurationMinutes: 60,
		Status:          entity.MeetingStatusPending,
	}
	repo.rosters[meetingID] = roster

	participants := make(map[uuid.UUID]participantentity.Participant, len(roster))
	for _, p := range roster {
		participants[p.ID] = p
	}

	cache := &fakeHolidayCache{data: make(map[string][]holidayentity.Holiday)}
	policySvc := policyservice.NewPolicyService(fakePolicyRepo{})

	return &serviceFixture{
		svc:         NewMeetingService(repo, &fakeParticipantRepo{participants: participants}, policySvc, cache),
		repo:        repo,
		cache:       cache,
		organizerID: organizerID,
		meetingID:   meetingID,
	}
}

func londonTokyoRoster(organizerID uuid.UUID) []participantentity.Participant {
	return []participantentity.Participant{
		{ID: uuid.New(), OrganizerID: organizerID, Name: "Ada", Timezone: "Europe/London", CountryCode: "GB"},
		{ID: uuid.New(), OrganizerID: organizerID, Name: "Yuki", Timezone: "Asia/Tokyo", CountryCode: "JP"},
	}
}

// ===================== Tests =====================

func TestScoreCandidate(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	// 2025-03-12 08:30 UTC: 08:30 in London (orange under the GB
	// default) and 17:30 in Tokyo (green under the JP 9-18 default).
	resp, appErr := fx.svc.ScoreCandidate(context.Background(), fx.organizerID, fx.meetingID,
		&dto.ScoreRequest{CandidateTime: "2025-03-12T08:30:00Z"})
	if appErr != nil {
		t.Fatalf("ScoreCandidate returned error: %v", appErr)
	}

	if resp.Degraded {
		t.Error("degraded = true, want false")
	}
	if resp.Equity.GreenCount != 1 || resp.Equity.OrangeCount != 1 {
		t.Errorf("counts = %+v, want one green one orange", resp.Equity)
	}
	if resp.Equity.Score != 75 {
		t.Errorf("score = %v, want 75", resp.Equity.Score)
	}
	if len(resp.Participants) != 2 {
		t.Fatalf("len(participants) = %d, want 2", len(resp.Participants))
	}
}

func TestScoreCandidatePropagatesDegraded(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))
	fx.cache.degraded = true

	resp, appErr := fx.svc.ScoreCandidate(context.Background(), fx.organizerID, fx.meetingID,
		&dto.ScoreRequest{CandidateTime: "2025-03-12T08:30:00Z"})
	if appErr != nil {
		t.Fatalf("ScoreCandidate returned error: %v", appErr)
	}
	if !resp.Degraded {
		t.Error("degraded = false, want true when the holiday cache degrades")
	}
}

func TestScoreCandidateDetectsHoliday(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))
	fx.cache.data["JP:2025"] = []holidayentity.Holiday{
		{Date: "2025-03-12", Name: "Foundation Day", CountryCode: "JP"},
	}

	resp, appErr := fx.svc.ScoreCandidate(context.Background(), fx.organizerID, fx.meetingID,
		&dto.ScoreRequest{CandidateTime: "2025-03-12T08:30:00Z"})
	if appErr != nil {
		t.Fatalf("ScoreCandidate returned error: %v", appErr)
	}
	if resp.Equity.CriticalCount != 1 {
		t.Errorf("critical count = %d, want 1", resp.Equity.CriticalCount)
	}
}

func TestScoreCandidateEmptyRoster(t *testing.T) {
	fx := newServiceFixture(nil)

	_, appErr := fx.svc.ScoreCandidate(context.Background(), fx.organizerID, fx.meetingID,
		&dto.ScoreRequest{CandidateTime: "2025-03-12T08:30:00Z"})
	if appErr == nil {
		t.Fatal("ScoreCandidate with empty roster = nil error")
	}
	if appErr.Code != errors.ErrEmptyRoster {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrEmptyRoster)
	}
}

func TestScoreCandidateRejectsBadTimestamp(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	_, appErr := fx.svc.ScoreCandidate(context.Background(), fx.organizerID, fx.meetingID,
		&dto.ScoreRequest{CandidateTime: "next tuesday"})
	if appErr == nil {
		t.Fatal("ScoreCandidate with bad timestamp = nil error")
	}
	if appErr.Code != errors.ErrInvalidInput {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
	}
}

func TestScoreCandidateChecksOwnership(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	_, appErr := fx.svc.ScoreCandidate(context.Background(), uuid.New(), fx.meetingID,
		&dto.ScoreRequest{CandidateTime: "2025-03-12T08:30:00Z"})
	if appErr == nil {
		t.Fatal("ScoreCandidate for foreign organizer = nil error")
	}
	if appErr.Code != errors.ErrForbidden {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrForbidden)
	}
}

func TestHeatmap(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	resp, appErr := fx.svc.Heatmap(context.Background(), fx.organizerID, fx.meetingID,
		&dto.HeatmapRequest{TargetDate: "2025-03-12"})
	if appErr != nil {
		t.Fatalf("Heatmap returned error: %v", appErr)
	}

	if len(resp.Slots) != 24 {
		t.Fatalf("len(slots) = %d, want 24", len(resp.Slots))
	}
	if len(resp.Suggestions) != 3 {
		t.Fatalf("len(suggestions) = %d, want 3", len(resp.Suggestions))
	}
	if resp.TargetDate != "2025-03-12" {
		t.Errorf("target date = %q, want 2025-03-12", resp.TargetDate)
	}
	best := resp.Suggestions[0].Equity.Score
	for _, slot := range resp.Slots {
		if slot.Equity.Score > best {
			t.Errorf("hour %d scores %v, above top suggestion %v", slot.Hour, slot.Equity.Score, best)
		}
	}
}

func TestHeatmapRejectsBadDate(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	for _, date := range []string{"12-03-2025", "2025-3-12", ""} {
		_, appErr := fx.svc.Heatmap(context.Background(), fx.organizerID, fx.meetingID,
			&dto.HeatmapRequest{TargetDate: date})
		if appErr == nil {
			t.Errorf("Heatmap(%q) = nil error, want invalid input", date)
			continue
		}
		if appErr.Code != errors.ErrInvalidInput {
			t.Errorf("Heatmap(%q) error code = %s, want %s", date, appErr.Code, errors.ErrInvalidInput)
		}
	}
}

func TestHeatmapRejectsTopNOutOfRange(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	_, appErr := fx.svc.Heatmap(context.Background(), fx.organizerID, fx.meetingID,
		&dto.HeatmapRequest{TargetDate: "2025-03-12", TopN: 25})
	if appErr == nil {
		t.Fatal("Heatmap with top_n=25 = nil error")
	}
	if appErr.Code != errors.ErrInvalidInput {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
	}
}

func TestSelectSlot(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	resp, appErr := fx.svc.SelectSlot(context.Background(), fx.organizerID, fx.meetingID,
		&dto.SelectSlotRequest{StartTime: "2025-03-12T10:00:00Z"})
	if appErr != nil {
		t.Fatalf("SelectSlot returned error: %v", appErr)
	}

	if resp.Status != string(entity.MeetingStatusScheduled) {
		t.Errorf("status = %s, want %s", resp.Status, entity.MeetingStatusScheduled)
	}
	if resp.ScheduledAt == nil || !resp.ScheduledAt.Equal(time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("scheduled_at = %v, want 2025-03-12T10:00:00Z", resp.ScheduledAt)
	}

	stored := fx.repo.meetings[fx.meetingID]
	if stored.Status != entity.MeetingStatusScheduled {
		t.Errorf("persisted status = %s, want %s", stored.Status, entity.MeetingStatusScheduled)
	}
}

func TestSharedMeeting(t *testing.T) {
	fx := newServiceFixture(londonTokyoRoster(uuid.New()))

	resp, appErr := fx.svc.SharedMeeting(context.Background(), "AbC123xYz0")
	if appErr != nil {
		t.Fatalf("SharedMeeting returned error: %v", appErr)
	}
	if resp.Title != "Weekly sync" {
		t.Errorf("title = %q, want Weekly sync", resp.Title)
	}

	if _, appErr := fx.svc.SharedMeeting(context.Background(), "nope"); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("unknown share code error = %v, want not found", appErr)
	}
}
