package entity

import (
	"fmt"
	"time"
)

// Holiday is one national holiday as reported by the provider.
// Date is a calendar date in "2006-01-02" form; holidays have no
// time-of-day component.
type Holiday struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// CacheKey identifies one cached holiday list.
type CacheKey struct {
	CountryCode string
	Year        int
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%d", k.CountryCode, k.Year)
}

// CacheEntry holds the full holiday list for one (country, year).
// At most one entry exists per key; refreshes replace the whole entry.
type CacheEntry struct {
	CountryCode string    `json:"country_code"`
	Year        int       `json:"year"`
	Holidays    []Holiday `json:"holidays"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Key returns the entry's cache key.
func (e *CacheEntry) Key() CacheKey {
	return CacheKey{CountryCode: e.CountryCode, Year: e.Year}
}

// FreshAt reports whether the entry is still inside the freshness
// window. Stale entries are kept as fallback, never discarded.
func (e *CacheEntry) FreshAt(now time.Time, window time.Duration) bool {
	return now.Sub(e.FetchedAt) < window
}
