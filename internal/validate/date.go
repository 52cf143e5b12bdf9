package validate

import (
	"strings"
	"time"
)

// Date formats tried in order. Day-first forms come before month-first
// because the default locale is India.
var dateLayouts = []string{
	"02/01/2006", "01/02/2006", "2006/01/02",
	"02-01-2006", "01-02-2006", "2006-01-02",
	"2 Jan 2006", "2 January 2006",
	"Jan 2, 2006", "January 2, 2006",
}

// DateOfBirth validates a date of birth and reformats it to ISO YYYY-MM-DD.
// The year must be 1900 or later and the date must not be in the future.
func DateOfBirth(value string) (string, string, Verdict) {
	value = strings.TrimSpace(value)
	if value == "" {
		return reject("invalid date format")
	}

	var parsed time.Time
	ok := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return reject("invalid date format")
	}

	now := time.Now()
	if parsed.Year() < 1900 || parsed.Year() > now.Year() {
		return reject("year out of reasonable range")
	}
	if parsed.After(now) {
		return reject("date cannot be in the future")
	}
	return accept(parsed.Format("2006-01-02"))
}
