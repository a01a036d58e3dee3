package service

import (
	"time"

	"equimeet/core/errors"
)

// Localize converts a UTC instant into the wall clock of an IANA
// timezone and reports the ISO weekday of the local date, 1=Monday
// through 7=Sunday. The instant itself is never shifted, only its
// representation.
func Localize(utc time.Time, ianaTimezone string) (time.Time, int, *errors.AppError) {
	if ianaTimezone == "" {
		return time.Time{}, 0, errors.NewAppError(errors.ErrInvalidTimezone, "Timezone must not be empty", nil)
	}
	loc, err := time.LoadLocation(ianaTimezone)
	if err != nil {
		return time.Time{}, 0, errors.NewAppError(errors.ErrInvalidTimezone, "Unknown IANA timezone: "+ianaTimezone, err)
	}
	local := utc.In(loc)
	return local, isoWeekday(local.Weekday()), nil
}

func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}
