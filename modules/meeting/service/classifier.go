package service

import (
	"time"

	"equimeet/core/errors"
	holidayentity "equimeet/modules/holiday/entity"
	"equimeet/modules/meeting/entity"
	participantentity "equimeet/modules/participant/entity"
	policyentity "equimeet/modules/policy/entity"
)

// Human-readable classification reasons.
const (
	ReasonNonWorkingDay = "Non-working day"
	ReasonOutsideHours  = "Outside working hours"
	ReasonOptimalHours  = "Optimal working hours"
	ReasonBufferHours   = "Buffer hours"

	reasonHolidayPrefix = "National Holiday: "
)

const localDateLayout = "2006-01-02"

// Classify assesses one participant at one candidate instant. The
// checks run in strict priority order: holiday, then non-working day,
// then the time-of-day bands. The first match decides the status, so a
// holiday is critical even when it falls inside optimal hours.
//
// The holiday list must cover the participant's country for the local
// year of the candidate.
func Classify(p participantentity.Participant, candidate time.Time, policy policyentity.CountryPolicy, holidays []holidayentity.Holiday) (entity.ParticipantAssessment, *errors.AppError) {
	local, weekday, appErr := Localize(candidate, p.Timezone)
	if appErr != nil {
		return entity.ParticipantAssessment{}, appErr
	}

	assessment := entity.ParticipantAssessment{
		ParticipantID: p.ID,
		Name:          p.Name,
		Timezone:      p.Timezone,
		CountryCode:   p.CountryCode,
		LocalTime:     local,
		Policy:        policy,
	}

	localDate := local.Format(localDateLayout)
	for _, h := range holidays {
		if h.Date == localDate {
			assessment.Status = entity.StatusCritical
			assessment.Reason = reasonHolidayPrefix + h.Name
			return assessment, nil
		}
	}

	if !policy.IsWorkDay(weekday) {
		assessment.Status = entity.StatusCritical
		assessment.Reason = ReasonNonWorkingDay
		return assessment, nil
	}

	minutes := local.Hour()*60 + local.Minute()
	switch {
	case minutes < policy.OrangeMorningStart || minutes >= policy.OrangeEveningEnd:
		assessment.Status = entity.StatusRed
		assessment.Reason = ReasonOutsideHours
	case minutes >= policy.GreenStart && minutes < policy.GreenEnd:
		assessment.Status = entity.StatusGreen
		assessment.Reason = ReasonOptimalHours
	case minutes < policy.OrangeMorningEnd || minutes >= policy.OrangeEveningStart:
		assessment.Status = entity.StatusOrange
		assessment.Reason = ReasonBufferHours
	default:
		// Policies may leave a gap between a buffer window and the
		// green window; a gap counts as outside working hours.
		assessment.Status = entity.StatusRed
		assessment.Reason = ReasonOutsideHours
	}
	return assessment, nil
}
