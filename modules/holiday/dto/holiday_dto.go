package dto

import "equimeet/modules/holiday/entity"

// HolidaysResponse renders a holiday list with its verification state.
// Degraded means the list could not be freshly fetched and a stale or
// empty fallback was used.
type HolidaysResponse struct {
	CountryCode string           `json:"country_code"`
	Year        int              `json:"year"`
	Degraded    bool             `json:"degraded"`
	Holidays    []entity.Holiday `json:"holidays"`
}
