package validate

import (
	"strings"

	emailverifier "github.com/AfterShip/email-verifier"
)

var emailVerifier = emailverifier.NewVerifier()

// Email validates an email address syntactically and returns it with the
// domain lowercased.
func Email(value string) (string, string, Verdict) {
	value = strings.TrimSpace(value)
	if value == "" {
		return reject("invalid email format")
	}

	syntax := emailVerifier.ParseAddress(value)
	if !syntax.Valid {
		return reject("invalid email address: " + value)
	}
	return accept(syntax.Username + "@" + strings.ToLower(syntax.Domain))
}
