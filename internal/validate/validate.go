// Package validate implements the per-field validators of the extraction
// pipeline. Every validator is a pure function taking a raw candidate string
// and returning a normalized value, a diagnostic message and a verdict.
// Malformed input is the expected common case: validators never panic and
// never return Go errors for bad data.
package validate

import "strings"

// Verdict is the outcome of validating a single candidate.
type Verdict string

const (
	Correct   Verdict = "correct"
	Incorrect Verdict = "incorrect"
)

// ValidateFunc validates and normalizes a raw candidate. On success the
// normalized value is returned with an empty message and Correct; on failure
// the normalized value is empty and the message explains the rejection.
type ValidateFunc func(value string) (normalized string, message string, verdict Verdict)

// reject is the shared failure return.
func reject(message string) (string, string, Verdict) {
	return "", message, Incorrect
}

// accept is the shared success return.
func accept(normalized string) (string, string, Verdict) {
	return normalized, "", Correct
}

// stripChars removes every rune in cutset from s.
func stripChars(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

// digitsOnly removes every non-digit rune from s.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
