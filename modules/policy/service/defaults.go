package service

import "equimeet/modules/policy/entity"

const minutesPerDay = 24 * 60

var monToFri = []int{1, 2, 3, 4, 5}

// GlobalFallbackPolicy applies when a country has neither a custom nor a
// built-in default policy: green 09:00-17:00, orange buffers 08:00-09:00
// and 17:00-18:00, workdays Monday-Friday.
func GlobalFallbackPolicy(countryCode string) entity.CountryPolicy {
	return entity.CountryPolicy{
		CountryCode:        countryCode,
		GreenStart:         9 * 60,
		GreenEnd:           17 * 60,
		OrangeMorningStart: 8 * 60,
		OrangeMorningEnd:   9 * 60,
		OrangeEveningStart: 17 * 60,
		OrangeEveningEnd:   18 * 60,
		WorkDays:           monToFri,
	}
}

func standardDay(cc string, greenStartHour, greenEndHour int, workDays []int) entity.CountryPolicy {
	return entity.CountryPolicy{
		CountryCode:        cc,
		GreenStart:         greenStartHour * 60,
		GreenEnd:           greenEndHour * 60,
		OrangeMorningStart: (greenStartHour - 1) * 60,
		OrangeMorningEnd:   greenStartHour * 60,
		OrangeEveningStart: greenEndHour * 60,
		OrangeEveningEnd:   (greenEndHour + 1) * 60,
		WorkDays:           workDays,
	}
}

// countryDefaults are the built-in working-hour conventions per country.
// Countries not listed here resolve to the global fallback.
var countryDefaults = map[string]entity.CountryPolicy{
	"US": standardDay("US", 9, 17, monToFri),
	"CA": standardDay("CA", 9, 17, monToFri),
	"GB": standardDay("GB", 9, 17, monToFri),
	"IE": standardDay("IE", 9, 17, monToFri),
	"FR": standardDay("FR", 9, 17, monToFri),
	"DE": standardDay("DE", 9, 17, monToFri),
	"NL": standardDay("NL", 9, 17, monToFri),
	"ES": standardDay("ES", 9, 18, monToFri),
	"IT": standardDay("IT", 9, 18, monToFri),
	"BR": standardDay("BR", 9, 18, monToFri),
	"MX": standardDay("MX", 9, 18, monToFri),
	"JP": standardDay("JP", 9, 18, monToFri),
	"KR": standardDay("KR", 9, 18, monToFri),
	"CN": standardDay("CN", 9, 18, monToFri),
	"SG": standardDay("SG", 9, 18, monToFri),
	"VN": standardDay("VN", 8, 17, monToFri),
	"IN": standardDay("IN", 9, 18, monToFri),
	"AU": standardDay("AU", 9, 17, monToFri),
	"NZ": standardDay("NZ", 9, 17, monToFri),
	// Gulf-region work week runs Sunday through Thursday.
	"AE": standardDay("AE", 9, 17, []int{7, 1, 2, 3, 4}),
	"SA": standardDay("SA", 9, 17, []int{7, 1, 2, 3, 4}),
	// Israel works Sunday through Thursday as well.
	"IL": standardDay("IL", 9, 17, []int{7, 1, 2, 3, 4}),
}

// DefaultPolicy returns the built-in default for a country and whether
// a country-specific default exists.
func DefaultPolicy(countryCode string) (entity.CountryPolicy, bool) {
	p, ok := countryDefaults[countryCode]
	return p, ok
}
