package validate

import (
	"regexp"
	"strings"
)

// Major-issuer numeric ranges: Visa, MasterCard, Discover, American Express,
// Diners Club and JCB prefix+length rules.
var cardRe = regexp.MustCompile(`^(?:4[0-9]{12}(?:[0-9]{3})?` +
	`|5[1-5][0-9]{14}` +
	`|6(?:011|5[0-9][0-9])[0-9]{12}` +
	`|3[47][0-9]{13}` +
	`|3(?:0[0-5]|[68][0-9])[0-9]{11}` +
	`|(?:2131|1800|35[0-9]{3})[0-9]{11})$`)

// CreditCard validates a credit or debit card number against the major
// issuer ranges and reformats it as groups of four digits joined by hyphens.
func CreditCard(value string) (string, string, Verdict) {
	cleaned := digitsOnly(value)
	if !cardRe.MatchString(cleaned) {
		return reject("invalid credit card number")
	}
	var groups []string
	for i := 0; i < len(cleaned); i += 4 {
		end := i + 4
		if end > len(cleaned) {
			end = len(cleaned)
		}
		groups = append(groups, cleaned[i:end])
	}
	return accept(strings.Join(groups, "-"))
}
