package service

import (
	"testing"

	"equimeet/core/errors"
	"equimeet/modules/meeting/entity"
)

func assessments(statuses ...entity.ComfortStatus) []entity.ParticipantAssessment {
	result := make([]entity.ParticipantAssessment, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, entity.ParticipantAssessment{Status: s})
	}
	return result
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []entity.ComfortStatus
		wantScore float64
	}{
		{
			name:      "all green is a perfect score",
			statuses:  []entity.ComfortStatus{entity.StatusGreen, entity.StatusGreen, entity.StatusGreen},
			wantScore: 100,
		},
		{
			name:      "all orange is half",
			statuses:  []entity.ComfortStatus{entity.StatusOrange, entity.StatusOrange},
			wantScore: 50,
		},
		{
			name:      "red drags the average",
			statuses:  []entity.ComfortStatus{entity.StatusGreen, entity.StatusGreen, entity.StatusGreen, entity.StatusRed},
			wantScore: 37.5,
		},
		{
			name:      "single green",
			statuses:  []entity.ComfortStatus{entity.StatusGreen},
			wantScore: 100,
		},
		{
			name:      "critical clamps to zero",
			statuses:  []entity.ComfortStatus{entity.StatusGreen, entity.StatusCritical},
			wantScore: 0,
		},
		{
			name:      "all critical stays at zero",
			statuses:  []entity.ComfortStatus{entity.StatusCritical, entity.StatusCritical, entity.StatusCritical},
			wantScore: 0,
		},
		{
			name:      "green and orange mix",
			statuses:  []entity.ComfortStatus{entity.StatusGreen, entity.StatusOrange, entity.StatusOrange, entity.StatusGreen},
			wantScore: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, appErr := Score(assessments(tt.statuses...))
			if appErr != nil {
				t.Fatalf("Score returned error: %v", appErr)
			}
			if result.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", result.Score, tt.wantScore)
			}
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("score %v outside 0..100", result.Score)
			}
		})
	}
}

func TestScoreCounts(t *testing.T) {
	result, appErr := Score(assessments(
		entity.StatusGreen, entity.StatusGreen,
		entity.StatusOrange,
		entity.StatusRed,
		entity.StatusCritical,
	))
	if appErr != nil {
		t.Fatalf("Score returned error: %v", appErr)
	}

	if result.GreenCount != 2 || result.OrangeCount != 1 || result.RedCount != 1 || result.CriticalCount != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 2/1/1/1",
			result.GreenCount, result.OrangeCount, result.RedCount, result.CriticalCount)
	}
}

func TestScoreEmptyRoster(t *testing.T) {
	_, appErr := Score(nil)
	if appErr == nil {
		t.Fatal("Score(nil) = nil error, want empty roster error")
	}
	if appErr.Code != errors.ErrEmptyRoster {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrEmptyRoster)
	}
}

func TestScoreWorseStatusNeverRaisesScore(t *testing.T) {
	base := assessments(entity.StatusGreen, entity.StatusGreen)
	baseline, appErr := Score(base)
	if appErr != nil {
		t.Fatalf("Score returned error: %v", appErr)
	}

	for _, worse := range []entity.ComfortStatus{entity.StatusOrange, entity.StatusRed, entity.StatusCritical} {
		result, appErr := Score(append(assessments(entity.StatusGreen, entity.StatusGreen), entity.ParticipantAssessment{Status: worse}))
		if appErr != nil {
			t.Fatalf("Score returned error: %v", appErr)
		}
		if result.Score >= baseline.Score {
			t.Errorf("adding %s participant raised score: %v >= %v", worse, result.Score, baseline.Score)
		}
	}
}
