package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	panRe      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	passportRe = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	voterIDRe  = regexp.MustCompile(`^[A-Z]{3}[0-9]{7}$`)
	licenseRe  = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,2}[0-9]{4,7}$`)
	bankAcctRe = regexp.MustCompile(`^[0-9]{8,18}$`)
	aadharRe   = regexp.MustCompile(`^[0-9]{12}$`)
)

// Aadhar validates an Indian Aadhar number and reformats it as
// XXXX-XXXX-XXXX.
func Aadhar(value string) (string, string, Verdict) {
	cleaned := stripChars(value, "- \t")
	if !aadharRe.MatchString(cleaned) {
		return reject("invalid Aadhar number")
	}
	return accept(fmt.Sprintf("%s-%s-%s", cleaned[:4], cleaned[4:8], cleaned[8:]))
}

// PAN validates an Indian PAN number (5 letters, 4 digits, 1 letter).
func PAN(value string) (string, string, Verdict) {
	cleaned := strings.ReplaceAll(strings.ToUpper(value), " ", "")
	if !panRe.MatchString(cleaned) {
		return reject("invalid PAN number")
	}
	return accept(cleaned)
}

// Passport validates a passport number (6-9 alphanumeric characters).
func Passport(value string) (string, string, Verdict) {
	cleaned := strings.ReplaceAll(strings.ToUpper(value), " ", "")
	if !passportRe.MatchString(cleaned) {
		return reject("invalid passport number")
	}
	return accept(cleaned)
}

// VoterID validates an Indian voter ID in EPIC format (3 letters, 7 digits).
func VoterID(value string) (string, string, Verdict) {
	cleaned := strings.ReplaceAll(strings.ToUpper(value), " ", "")
	if !voterIDRe.MatchString(cleaned) {
		return reject("invalid voter ID number")
	}
	return accept(cleaned)
}

// DrivingLicense validates an Indian driving license number.
func DrivingLicense(value string) (string, string, Verdict) {
	cleaned := strings.ReplaceAll(strings.ToUpper(value), " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if !licenseRe.MatchString(cleaned) {
		return reject("invalid driving license number")
	}
	return accept(cleaned)
}

// BankAccount validates a bank account number (8-18 digits).
func BankAccount(value string) (string, string, Verdict) {
	cleaned := digitsOnly(value)
	if !bankAcctRe.MatchString(cleaned) {
		return reject("invalid bank account number")
	}
	return accept(cleaned)
}

// IPAddress validates an IPv4 address: four dot-separated octets, each 0-255.
func IPAddress(value string) (string, string, Verdict) {
	value = strings.TrimSpace(value)
	octets := strings.Split(value, ".")
	if len(octets) != 4 {
		return reject("invalid IP address")
	}
	for _, octet := range octets {
		if octet == "" || len(octet) > 3 {
			return reject("invalid IP address")
		}
		n, err := strconv.Atoi(octet)
		if err != nil || n < 0 || n > 255 {
			return reject("invalid IP address")
		}
	}
	return accept(value)
}
