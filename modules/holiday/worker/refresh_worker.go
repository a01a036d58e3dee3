package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"equimeet/core/logger"
	"equimeet/modules/holiday/service"

	"github.com/hibiken/asynq"
)

// Task types handled by the holiday worker.
const (
	// TypeHolidayRefresh re-fetches one (country, year) entry.
	TypeHolidayRefresh = "holiday:refresh"
	// TypeHolidaySweep enqueues a refresh for every cached key, so
	// entries are renewed before they go stale.
	TypeHolidaySweep = "holiday:sweep"
)

// RefreshPayload identifies the entry to refresh.
type RefreshPayload struct {
	CountryCode string `json:"country_code"`
	Year        int    `json:"year"`
}

// NewRefreshTask builds a refresh task for one cache key.
func NewRefreshTask(countryCode string, year int) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshPayload{CountryCode: countryCode, Year: year})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeHolidayRefresh, payload), nil
}

// Handler processes holiday background tasks.
type Handler struct {
	cache  service.HolidayCacheInterface
	client *asynq.Client
}

func NewHandler(cache service.HolidayCacheInterface, client *asynq.Client) *Handler {
	return &Handler{cache: cache, client: client}
}

// Register attaches the handlers to the task mux.
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeHolidayRefresh, h.HandleRefresh)
	mux.HandleFunc(TypeHolidaySweep, h.HandleSweep)
}

// HandleRefresh re-fetches a single entry. Errors are returned so
// asynq retries the task on its own schedule.
func (h *Handler) HandleRefresh(ctx context.Context, t *asynq.Task) error {
	var payload RefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal refresh payload: %w", err)
	}

	if err := h.cache.Refresh(ctx, payload.CountryCode, payload.Year); err != nil {
		logger.Warn("holiday refresh failed",
			"country", payload.CountryCode, "year", payload.Year, "error", err)
		return err
	}

	logger.Info("holiday entry refreshed", "country", payload.CountryCode, "year", payload.Year)
	return nil
}

// HandleSweep fans out one refresh task per cached key.
func (h *Handler) HandleSweep(ctx context.Context, _ *asynq.Task) error {
	keys, err := h.cache.Keys(ctx)
	if err != nil {
		return fmt.Errorf("list holiday cache keys: %w", err)
	}

	for _, key := range keys {
		task, err := NewRefreshTask(key.CountryCode, key.Year)
		if err != nil {
			return err
		}
		if _, err := h.client.EnqueueContext(ctx, task); err != nil {
			logger.Error("failed to enqueue holiday refresh", "key", key.String(), "error", err)
		}
	}

	logger.Info("holiday refresh sweep enqueued", "keys", len(keys))
	return nil
}
