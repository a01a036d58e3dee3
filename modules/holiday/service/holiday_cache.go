package service

import (
	"context"
	"time"

	"equimeet/core/constants"
	"equimeet/core/logger"
	"equimeet/modules/holiday/entity"
	"equimeet/modules/holiday/repository"

	"github.com/maypok86/otter/v2"
	"golang.org/x/sync/singleflight"
)

// HolidayCacheInterface is what the scheduling engine consumes.
type HolidayCacheInterface interface {
	// Holidays returns the holiday list for (countryCode, year) and a
	// degraded flag. degraded=true means the list could not be freshly
	// verified: a stale copy or an empty list was substituted, so
	// holiday conflicts may be under-detected. Provider outages never
	// surface as errors.
	Holidays(ctx context.Context, countryCode string, year int) ([]entity.Holiday, bool)

	// Refresh force-fetches one key and replaces the cached entry.
	// Unlike Holidays it propagates failure, so background jobs can
	// reschedule.
	Refresh(ctx context.Context, countryCode string, year int) error

	// Keys lists every cached (country, year) pair.
	Keys(ctx context.Context) ([]entity.CacheKey, error)
}

// HolidayCache layers a hot in-memory cache over the durable store and
// the provider client. One entry per (country, year); upserts replace
// the whole entry, last writer wins.
type HolidayCache struct {
	store    repository.HolidayStore
	fetcher  Fetcher
	hot      *otter.Cache[string, entity.CacheEntry]
	freshFor time.Duration
	now      func() time.Time
	group    singleflight.Group
}

// Option configures a HolidayCache.
type Option func(*HolidayCache)

// WithClock overrides the freshness clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *HolidayCache) { c.now = now }
}

// WithFreshWindow overrides the freshness window.
func WithFreshWindow(window time.Duration) Option {
	return func(c *HolidayCache) { c.freshFor = window }
}

func NewHolidayCache(store repository.HolidayStore, fetcher Fetcher, opts ...Option) *HolidayCache {
	c := &HolidayCache{
		store:    store,
		fetcher:  fetcher,
		freshFor: constants.HolidayFreshWindow,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.hot = otter.Must(&otter.Options[string, entity.CacheEntry]{
		MaximumSize:      4096,
		ExpiryCalculator: otter.ExpiryWriting[string, entity.CacheEntry](c.freshFor),
	})

	return c
}

// Holidays implements the lookup algorithm:
//  1. fresh cached entry -> return it, degraded=false
//  2. otherwise fetch with retry/backoff
//  3. fetch success -> upsert, return fresh list
//  4. retries exhausted -> stale entry if any, else empty list; degraded=true
func (c *HolidayCache) Holidays(ctx context.Context, countryCode string, year int) ([]entity.Holiday, bool) {
	key := entity.CacheKey{CountryCode: countryCode, Year: year}
	now := c.now()

	// Hot path. Freshness is re-checked against the injected clock;
	// the otter TTL alone is not authoritative.
	if entry, ok := c.hot.GetIfPresent(key.String()); ok && entry.FreshAt(now, c.freshFor) {
		return entry.Holidays, false
	}

	// Durable store. Stale entries are remembered as fallback.
	var stale *entity.CacheEntry
	stored, err := c.store.Get(ctx, countryCode, year)
	if err != nil {
		logger.Warn("HolidayCache:store read failed", "country", countryCode, "year", year, "error", err)
	} else if stored != nil {
		if stored.FreshAt(now, c.freshFor) {
			c.hot.Set(key.String(), *stored)
			return stored.Holidays, false
		}
		stale = stored
	}

	// Fetch, coalescing concurrent requests for the same key. Requests
	// for different keys proceed in parallel.
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		return c.fetchAndStore(ctx, countryCode, year)
	})
	if err != nil {
		if stale != nil {
			logger.Warn("holiday fetch failed, serving stale entry",
				"country", countryCode, "year", year, "fetchedAt", stale.FetchedAt, "error", err)
			return stale.Holidays, true
		}
		logger.Warn("holiday fetch failed with no cached fallback",
			"country", countryCode, "year", year, "error", err)
		return []entity.Holiday{}, true
	}

	entry := v.(entity.CacheEntry)
	return entry.Holidays, false
}

// Refresh force-fetches and replaces one entry regardless of freshness.
func (c *HolidayCache) Refresh(ctx context.Context, countryCode string, year int) error {
	_, err := c.fetchAndStore(ctx, countryCode, year)
	return err
}

// Keys lists every cached (country, year) pair.
func (c *HolidayCache) Keys(ctx context.Context) ([]entity.CacheKey, error) {
	return c.store.Keys(ctx)
}

func (c *HolidayCache) fetchAndStore(ctx context.Context, countryCode string, year int) (entity.CacheEntry, error) {
	holidays, err := c.fetcher.Fetch(ctx, countryCode, year)
	if err != nil {
		return entity.CacheEntry{}, err
	}

	entry := entity.CacheEntry{
		CountryCode: countryCode,
		Year:        year,
		Holidays:    holidays,
		FetchedAt:   c.now(),
	}

	// A failed durable write only costs us a refetch later; the fresh
	// data is still good for this request.
	if err := c.store.Upsert(ctx, &entry); err != nil {
		logger.Error("HolidayCache:Upsert", err)
	}
	c.hot.Set(entry.Key().String(), entry)

	return entry, nil
}
