package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"equimeet/core/constants"
	"equimeet/core/logger"
	"equimeet/modules/holiday/entity"

	"github.com/codeGROOVE-dev/retry"
)

// Fetcher retrieves the national holidays for one (country, year) from
// the external provider.
type Fetcher interface {
	Fetch(ctx context.Context, countryCode string, year int) ([]entity.Holiday, error)
}

// RetryPolicy drives the backoff of the provider client. The delay
// doubles after every failed attempt, starting at BaseDelay.
type RetryPolicy struct {
	Attempts  uint
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultRetryPolicy is 3 attempts with 1s/2s backoff between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:  constants.HolidayFetchAttempts,
		BaseDelay: constants.HolidayFetchBaseDelay,
		MaxDelay:  constants.HolidayFetchMaxDelay,
	}
}

// providerHoliday mirrors the provider's JSON payload
// (Nager.Date-style public holiday API).
type providerHoliday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// ProviderClient fetches holiday lists over HTTP with retry/backoff.
// Retries within one key are strictly sequential.
type ProviderClient struct {
	baseURL    string
	httpClient *http.Client
	policy     RetryPolicy
}

func NewProviderClient(baseURL string, policy RetryPolicy) *ProviderClient {
	return &ProviderClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		policy:     policy,
	}
}

// Fetch calls GET {base}/PublicHolidays/{year}/{countryCode}. Server
// errors are retried per the policy; client errors abort immediately.
func (c *ProviderClient) Fetch(ctx context.Context, countryCode string, year int) ([]entity.Holiday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, countryCode)

	var holidays []entity.Holiday
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Bad country code or unsupported year; retrying won't help.
				return retry.Unrecoverable(fmt.Errorf("holiday provider rejected %s/%d: HTTP %d", countryCode, year, resp.StatusCode))
			}
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
				return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
			}

			var raw []providerHoliday
			if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
				return fmt.Errorf("decoding holiday response: %w", err)
			}

			holidays = make([]entity.Holiday, 0, len(raw))
			for _, h := range raw {
				holidays = append(holidays, entity.Holiday{
					Date:        h.Date,
					Name:        h.Name,
					CountryCode: h.CountryCode,
				})
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.policy.Attempts),
		retry.Delay(c.policy.BaseDelay),
		retry.MaxDelay(c.policy.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("retrying holiday fetch",
				"attempt", n+1,
				"country", countryCode,
				"year", year,
				"error", err,
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching holidays for %s/%d: %w", countryCode, year, err)
	}

	return holidays, nil
}
