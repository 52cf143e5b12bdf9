package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var namePartRe = regexp.MustCompile(`^[A-Z][a-zA-Z'-]*$`)

// Recognized honorifics and suffixes are exempt from the per-part character
// checks and excluded from the normalized form.
var (
	nameTitles = map[string]bool{
		"mr": true, "mrs": true, "ms": true, "miss": true,
		"dr": true, "prof": true, "sir": true, "shri": true, "smt": true,
	}
	nameSuffixes = map[string]bool{
		"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
		"phd": true, "md": true, "esq": true,
	}
)

const maxNameParts = 5

// FullNameValidator validates person names parsed out of free text. The
// structural rules are deterministic; an optional PlausibilityChecker can
// additionally accept a name on the strength of an external first-name
// lookup. Checker failures are swallowed and never affect the verdict.
type FullNameValidator struct {
	Checker   PlausibilityChecker
	Threshold float64
}

// NewFullNameValidator returns a validator with the default acceptance
// threshold. A nil checker disables the advisory lookup.
func NewFullNameValidator(checker PlausibilityChecker) *FullNameValidator {
	return &FullNameValidator{Checker: checker, Threshold: 0.6}
}

// Validate implements ValidateFunc for the full_name field.
func (v *FullNameValidator) Validate(value string) (string, string, Verdict) {
	cleaned := strings.Join(strings.Fields(strings.TrimSpace(value)), " ")
	if cleaned == "" {
		return reject("name cannot be empty")
	}

	parts := strings.Fields(cleaned)
	if len(parts) > maxNameParts {
		return reject("name has too many parts")
	}

	_, core, _ := splitNameParts(parts)
	if len(core) == 0 {
		return reject("invalid name format")
	}

	formatted := strings.Join(core, " ")

	// Advisory lookup keyed by the first name. Best effort only: any error
	// falls through to the structural checks below.
	if v.Checker != nil {
		if p, err := v.Checker.Plausibility(core[0]); err == nil && p > v.Threshold {
			return accept(formatted)
		}
	}

	for _, part := range core {
		trimmed := strings.Trim(part, ".,")
		if !namePartRe.MatchString(trimmed) {
			return reject(fmt.Sprintf("invalid name part: %s", part))
		}
		if len(trimmed) < 2 {
			return reject(fmt.Sprintf("name part too short: %s", part))
		}
		if len(trimmed) > 20 {
			return reject(fmt.Sprintf("name part too long: %s", part))
		}
	}
	return accept(formatted)
}

// splitNameParts classifies whitespace-separated tokens into leading titles,
// core name parts (first/middle/last) and trailing suffixes.
func splitNameParts(parts []string) (titles, core, suffixes []string) {
	i := 0
	for i < len(parts) && nameTitles[normalizeNameToken(parts[i])] {
		titles = append(titles, parts[i])
		i++
	}
	j := len(parts)
	for j > i && nameSuffixes[normalizeNameToken(parts[j-1])] {
		suffixes = append([]string{parts[j-1]}, suffixes...)
		j--
	}
	core = parts[i:j]
	return titles, core, suffixes
}

func normalizeNameToken(tok string) string {
	return strings.ToLower(strings.Trim(tok, ".,"))
}
