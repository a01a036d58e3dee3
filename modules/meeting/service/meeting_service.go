package service

import (
	"context"
	"sync"
	"time"

	"equimeet/core/constants"
	"equimeet/core/errors"
	"equimeet/core/utils"
	holidayentity "equimeet/modules/holiday/entity"
	holidayservice "equimeet/modules/holiday/service"
	"equimeet/modules/meeting/dto"
	"equimeet/modules/meeting/entity"
	"equimeet/modules/meeting/repository"
	participantentity "equimeet/modules/participant/entity"
	participantrepository "equimeet/modules/participant/repository"
	policyentity "equimeet/modules/policy/entity"
	policyservice "equimeet/modules/policy/service"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// MeetingService orchestrates meeting CRUD and the scheduling engine:
// it assembles roster, effective policies and holiday data, then runs
// classification and scoring over candidate times.
type MeetingService struct {
	repo            repository.MeetingRepositoryInterface
	participantRepo participantrepository.ParticipantRepositoryInterface
	policies        policyservice.PolicyServiceInterface
	holidays        holidayservice.HolidayCacheInterface
}

// MeetingServiceInterface defines the service contract.
type MeetingServiceInterface interface {
	Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	GetByID(ctx context.Context, organizerID, meetingID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	List(ctx context.Context, organizerID uuid.UUID) ([]dto.MeetingResponse, *errors.AppError)
	Update(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	Delete(ctx context.Context, organizerID, meetingID uuid.UUID) *errors.AppError

	AddParticipant(ctx context.Context, organizerID, meetingID, participantID uuid.UUID) *errors.AppError
	RemoveParticipant(ctx context.Context, organizerID, meetingID, participantID uuid.UUID) *errors.AppError

	ScoreCandidate(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.ScoreRequest) (*dto.ScoreResponse, *errors.AppError)
	Heatmap(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.HeatmapRequest) (*dto.HeatmapResponse, *errors.AppError)
	SelectSlot(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.SelectSlotRequest) (*dto.MeetingResponse, *errors.AppError)

	SharedMeeting(ctx context.Context, shareCode string) (*dto.SharedMeetingResponse, *errors.AppError)
}

func NewMeetingService(
	repo repository.MeetingRepositoryInterface,
	participantRepo participantrepository.ParticipantRepositoryInterface,
	policies policyservice.PolicyServiceInterface,
	holidays holidayservice.HolidayCacheInterface,
) MeetingServiceInterface {
	return &MeetingService{
		repo:            repo,
		participantRepo: participantRepo,
		policies:        policies,
		holidays:        holidays,
	}
}

// ===================== CRUD =====================

func (s *MeetingService) Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = constants.DefaultMeetingDurationMinutes
	}

	meeting := &entity.Meeting{
		OrganizerID:     organizerID,
		Title:           req.Title,
		Slug:            slug.Make(req.Title),
		ShareCode:       utils.GenerateShareCode(),
		DurationMinutes: req.DurationMinutes,
		Status:          entity.MeetingStatusPending,
	}
	if req.Description != "" {
		meeting.Description = &req.Description
	}

	created, err := s.repo.Create(ctx, meeting)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
	}

	for _, raw := range req.ParticipantIDs {
		participantID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid participant ID: "+raw, parseErr)
		}
		if appErr := s.AddParticipant(ctx, organizerID, created.ID, participantID); appErr != nil {
			return nil, appErr
		}
	}

	return dto.ToMeetingResponse(created), nil
}

func (s *MeetingService) GetByID(ctx context.Context, organizerID, meetingID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.owned(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToMeetingResponse(meeting), nil
}

func (s *MeetingService) List(ctx context.Context, organizerID uuid.UUID) ([]dto.MeetingResponse, *errors.AppError) {
	meetings, err := s.repo.GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load meetings", err)
	}

	result := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		result = append(result, *dto.ToMeetingResponse(&meetings[i]))
	}
	return result, nil
}

func (s *MeetingService) Update(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.owned(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != "" {
		meeting.Title = req.Title
		meeting.Slug = slug.Make(req.Title)
	}
	if req.Description != "" {
		meeting.Description = &req.Description
	}
	if req.DurationMinutes > 0 {
		meeting.DurationMinutes = req.DurationMinutes
	}

	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update meeting", err)
	}

	return dto.ToMeetingResponse(meeting), nil
}

func (s *MeetingService) Delete(ctx context.Context, organizerID, meetingID uuid.UUID) *errors.AppError {
	if _, appErr := s.owned(ctx, organizerID, meetingID); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, meetingID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete meeting", err)
	}
	return nil
}

// ===================== Roster =====================

func (s *MeetingService) AddParticipant(ctx context.Context, organizerID, meetingID, participantID uuid.UUID) *errors.AppError {
	if _, appErr := s.owned(ctx, organizerID, meetingID); appErr != nil {
		return appErr
	}

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}
	if participant.OrganizerID != organizerID {
		return errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	if err := s.repo.AddParticipant(ctx, meetingID, participantID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to add participant", err)
	}
	return nil
}

func (s *MeetingService) RemoveParticipant(ctx context.Context, organizerID, meetingID, participantID uuid.UUID) *errors.AppError {
	if _, appErr := s.owned(ctx, organizerID, meetingID); appErr != nil {
		return appErr
	}

	if err := s.repo.RemoveParticipant(ctx, meetingID, participantID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove participant", err)
	}
	return nil
}

// ===================== Engine operations =====================

// ScoreCandidate classifies every roster member at one candidate
// instant and aggregates the equity score.
func (s *MeetingService) ScoreCandidate(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.ScoreRequest) (*dto.ScoreResponse, *errors.AppError) {
	meeting, appErr := s.owned(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	candidate, err := time.Parse(time.RFC3339, req.CandidateTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "candidate_time must be RFC 3339", err)
	}
	candidate = candidate.UTC()

	roster, policies, appErr := s.rosterAndPolicies(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	holidaysByCountry, degraded, appErr := s.prefetchHolidays(ctx, roster, []time.Time{candidate})
	if appErr != nil {
		return nil, appErr
	}

	assessments := make([]entity.ParticipantAssessment, 0, len(roster))
	for i := range roster {
		p := roster[i]
		a, appErr := Classify(p, candidate, policies[p.CountryCode], holidaysByCountry[p.CountryCode])
		if appErr != nil {
			return nil, appErr
		}
		assessments = append(assessments, a)
	}

	equity, appErr := Score(assessments)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.ScoreResponse{
		MeetingID:     meeting.ID,
		CandidateTime: candidate,
		Degraded:      degraded,
		Equity:        dto.ToEquityResponse(equity),
		Participants:  dto.ToAssessmentResponses(assessments),
	}, nil
}

// Heatmap scans the 24 hour-aligned UTC slots of one calendar day and
// returns all slots plus the top suggestions.
func (s *MeetingService) Heatmap(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.HeatmapRequest) (*dto.HeatmapResponse, *errors.AppError) {
	meeting, appErr := s.owned(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	day, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "target_date must be YYYY-MM-DD", err)
	}
	topN := req.TopN
	if topN < 0 || topN > constants.HoursPerDay {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "top_n out of range", nil)
	}

	roster, policies, appErr := s.rosterAndPolicies(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	// The first and last hour of the scan can land in different local
	// years near New Year, so both bounds feed the holiday prefetch.
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	holidaysByCountry, degraded, appErr := s.prefetchHolidays(ctx, roster,
		[]time.Time{dayStart, dayStart.Add((constants.HoursPerDay - 1) * time.Hour)})
	if appErr != nil {
		return nil, appErr
	}

	slots, suggestions, appErr := GenerateHeatmap(roster, dayStart, policies, holidaysByCountry, topN)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.HeatmapResponse{
		MeetingID:   meeting.ID,
		TargetDate:  req.TargetDate,
		Degraded:    degraded,
		Slots:       dto.ToHeatmapSlotResponses(slots),
		Suggestions: dto.ToHeatmapSlotResponses(suggestions),
	}, nil
}

// SelectSlot pins the meeting to a start instant and marks it scheduled.
func (s *MeetingService) SelectSlot(ctx context.Context, organizerID, meetingID uuid.UUID, req *dto.SelectSlotRequest) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.owned(ctx, organizerID, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "start_time must be RFC 3339", err)
	}
	startUTC := start.UTC()

	meeting.ScheduledAt = &startUTC
	meeting.Status = entity.MeetingStatusScheduled

	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to schedule meeting", err)
	}

	return dto.ToMeetingResponse(meeting), nil
}

// SharedMeeting resolves a public share code. No ownership check; the
// code itself is the capability.
func (s *MeetingService) SharedMeeting(ctx context.Context, shareCode string) (*dto.SharedMeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetByShareCode(ctx, shareCode)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	return dto.ToSharedMeetingResponse(meeting), nil
}

// ===================== Helpers =====================

// owned loads a meeting and checks organizer ownership.
func (s *MeetingService) owned(ctx context.Context, organizerID, meetingID uuid.UUID) (*entity.Meeting, *errors.AppError) {
	meeting, err := s.repo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	if meeting.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	return meeting, nil
}

// rosterAndPolicies loads the roster and resolves the effective policy
// for every country it spans.
func (s *MeetingService) rosterAndPolicies(ctx context.Context, organizerID, meetingID uuid.UUID) ([]participantentity.Participant, map[string]policyentity.CountryPolicy, *errors.AppError) {
	roster, err := s.repo.GetRoster(ctx, meetingID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load roster", err)
	}
	if len(roster) == 0 {
		return nil, nil, errors.NewAppError(errors.ErrEmptyRoster, "Meeting has no participants", nil)
	}

	custom, appErr := s.policies.CustomPolicies(ctx, organizerID)
	if appErr != nil {
		return nil, nil, appErr
	}

	policies := make(map[string]policyentity.CountryPolicy)
	for i := range roster {
		cc := roster[i].CountryCode
		if _, ok := policies[cc]; ok {
			continue
		}
		policy, _ := s.policies.Resolve(cc, custom)
		policies[cc] = policy
	}
	return roster, policies, nil
}

type holidayKey struct {
	countryCode string
	year        int
}

// prefetchHolidays collects the distinct (country, local year) pairs
// the given instants can touch and loads them from the cache
// concurrently. Cache degradation is ORed into one flag; it never
// fails the request.
func (s *MeetingService) prefetchHolidays(ctx context.Context, roster []participantentity.Participant, instants []time.Time) (map[string][]holidayentity.Holiday, bool, *errors.AppError) {
	keySet := make(map[holidayKey]struct{})
	for i := range roster {
		for _, instant := range instants {
			local, _, appErr := Localize(instant, roster[i].Timezone)
			if appErr != nil {
				return nil, false, appErr
			}
			keySet[holidayKey{countryCode: roster[i].CountryCode, year: local.Year()}] = struct{}{}
		}
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		degraded bool
	)
	byCountry := make(map[string][]holidayentity.Holiday)

	for key := range keySet {
		wg.Add(1)
		go func(key holidayKey) {
			defer wg.Done()

			holidays, keyDegraded := s.holidays.Holidays(ctx, key.countryCode, key.year)

			mu.Lock()
			byCountry[key.countryCode] = append(byCountry[key.countryCode], holidays...)
			degraded = degraded || keyDegraded
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	return byCountry, degraded, nil
}
