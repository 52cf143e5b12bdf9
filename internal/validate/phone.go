package validate

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "IN"

// PhoneRegion returns a validator that formats mobile and telephone
// numbers to international display form. Numbers without an explicit
// country code are interpreted against the given region.
func PhoneRegion(region string) ValidateFunc {
	if region == "" {
		region = defaultPhoneRegion
	}
	prefix := fmt.Sprintf("+%d", phonenumbers.GetCountryCodeForRegion(region))

	return func(value string) (string, string, Verdict) {
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '+' || r == '-' {
				return r
			}
			return -1
		}, value)
		if cleaned == "" {
			return reject("invalid phone number format")
		}

		withCode := cleaned
		if !strings.HasPrefix(withCode, "+") {
			withCode = prefix + withCode
		}

		if num, err := phonenumbers.Parse(withCode, ""); err == nil {
			if phonenumbers.IsValidNumber(num) {
				return accept(phonenumbers.Format(num, phonenumbers.INTERNATIONAL))
			}
		}

		// Second interpretation: the bare national number in the region.
		if !strings.HasPrefix(cleaned, "+") {
			if num, err := phonenumbers.Parse(cleaned, region); err == nil {
				if phonenumbers.IsValidNumber(num) {
					return accept(phonenumbers.Format(num, phonenumbers.INTERNATIONAL))
				}
			}
		}

		return reject("invalid phone number")
	}
}

// Phone validates against the default region.
var Phone = PhoneRegion(defaultPhoneRegion)
