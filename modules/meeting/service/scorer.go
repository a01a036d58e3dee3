package service

import (
	"equimeet/core/errors"
	"equimeet/modules/meeting/entity"
)

// Per-status scoring weights.
const (
	weightGreen    = 10
	weightOrange   = 5
	weightRed      = -15
	weightCritical = -50
)

// Score folds per-participant assessments into an equity score. The raw
// weighted sum is normalized against the all-green maximum and clamped
// to 0..100, so adding participants never inflates the score and a
// single critical participant drags a small roster hard.
func Score(assessments []entity.ParticipantAssessment) (entity.EquityResult, *errors.AppError) {
	if len(assessments) == 0 {
		return entity.EquityResult{}, errors.NewAppError(errors.ErrEmptyRoster, "Cannot score an empty roster", nil)
	}

	var result entity.EquityResult
	raw := 0
	for _, a := range assessments {
		switch a.Status {
		case entity.StatusGreen:
			raw += weightGreen
			result.GreenCount++
		case entity.StatusOrange:
			raw += weightOrange
			result.OrangeCount++
		case entity.StatusRed:
			raw += weightRed
			result.RedCount++
		case entity.StatusCritical:
			raw += weightCritical
			result.CriticalCount++
		}
	}

	score := float64(raw) / float64(len(assessments)*weightGreen) * 100
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	result.Score = score
	return result, nil
}
