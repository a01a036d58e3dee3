package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Holiday cache settings
const (
	// HolidayFreshWindow is how long a cached holiday list is trusted
	// before a refresh attempt is made.
	HolidayFreshWindow = 7 * 24 * time.Hour

	// HolidayFetchAttempts and HolidayFetchBaseDelay drive the
	// exponential backoff of the holiday provider client.
	HolidayFetchAttempts  = 3
	HolidayFetchBaseDelay = time.Second
	HolidayFetchMaxDelay  = 8 * time.Second
)

// Scheduling defaults
const (
	// DefaultTopSuggestions is how many heatmap slots are suggested
	// when the caller does not ask for a specific count.
	DefaultTopSuggestions = 3

	// HoursPerDay is the number of hourly slots scanned by the heatmap.
	HoursPerDay = 24

	// DefaultMeetingDurationMinutes applies when a meeting is created
	// without an explicit duration.
	DefaultMeetingDurationMinutes = 60
)
