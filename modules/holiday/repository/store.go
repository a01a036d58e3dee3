package repository

import (
	"context"

	"equimeet/modules/holiday/entity"
)

// HolidayStore is the durable cache of holiday lists. Implementations
// must treat Upsert as a whole-entry, last-writer-wins replacement and
// must never expire entries on their own: staleness is decided by the
// cache service so stale data stays available as a fallback.
type HolidayStore interface {
	// Get returns the entry for (countryCode, year), or nil when absent.
	Get(ctx context.Context, countryCode string, year int) (*entity.CacheEntry, error)
	// Upsert inserts or replaces the entry for the entry's key.
	Upsert(ctx context.Context, entry *entity.CacheEntry) error
	// Keys lists every cached (country, year) pair, for refresh sweeps.
	Keys(ctx context.Context) ([]entity.CacheKey, error)
}
