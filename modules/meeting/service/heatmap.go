package service

import (
	"sort"
	"sync"
	"time"

	"equimeet/core/constants"
	"equimeet/core/errors"
	holidayentity "equimeet/modules/holiday/entity"
	"equimeet/modules/meeting/entity"
	participantentity "equimeet/modules/participant/entity"
	policyentity "equimeet/modules/policy/entity"
)

// GenerateHeatmap scans the 24 hour-aligned UTC slots of targetDate and
// scores each one against the full roster. It returns the slots in hour
// order plus the topN best slots ranked by score, highest first; on
// ties the earlier hour wins.
//
// policies must hold the effective policy for every roster country and
// holidaysByCountry the holiday lists covering the local years the scan
// can touch. The hours are evaluated concurrently; classification is
// pure so the only shared state is each goroutine's own slot.
func GenerateHeatmap(
	participants []participantentity.Participant,
	targetDate time.Time,
	policies map[string]policyentity.CountryPolicy,
	holidaysByCountry map[string][]holidayentity.Holiday,
	topN int,
) ([]entity.HeatmapSlot, []entity.HeatmapSlot, *errors.AppError) {
	if len(participants) == 0 {
		return nil, nil, errors.NewAppError(errors.ErrEmptyRoster, "Cannot build a heatmap for an empty roster", nil)
	}
	if topN <= 0 {
		topN = constants.DefaultTopSuggestions
	}

	day := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]entity.HeatmapSlot, constants.HoursPerDay)
	slotErrs := make([]*errors.AppError, constants.HoursPerDay)

	var wg sync.WaitGroup
	for hour := 0; hour < constants.HoursPerDay; hour++ {
		wg.Add(1)
		go func(hour int) {
			defer wg.Done()

			start := day.Add(time.Duration(hour) * time.Hour)
			assessments := make([]entity.ParticipantAssessment, 0, len(participants))
			for i := range participants {
				p := participants[i]
				a, appErr := Classify(p, start, policies[p.CountryCode], holidaysByCountry[p.CountryCode])
				if appErr != nil {
					slotErrs[hour] = appErr
					return
				}
				assessments = append(assessments, a)
			}

			equity, appErr := Score(assessments)
			if appErr != nil {
				slotErrs[hour] = appErr
				return
			}

			slots[hour] = entity.HeatmapSlot{
				Hour:        hour,
				StartUTC:    start,
				Equity:      equity,
				Assessments: assessments,
			}
		}(hour)
	}
	wg.Wait()

	for _, appErr := range slotErrs {
		if appErr != nil {
			return nil, nil, appErr
		}
	}

	ranked := make([]entity.HeatmapSlot, len(slots))
	copy(ranked, slots)
	// Stable sort keeps the hour order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Equity.Score > ranked[j].Equity.Score
	})
	if topN > len(ranked) {
		topN = len(ranked)
	}
	return slots, ranked[:topN], nil
}
