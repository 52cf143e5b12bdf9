// Package fields defines the static registry mapping each PII field
// identifier to its detection strategy and validator.
package fields

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/docsift/pii-extractor/internal/ner"
	"github.com/docsift/pii-extractor/internal/validate"
)

// ErrUnknownField is returned by Lookup for identifiers outside the fixed,
// pre-registered set.
var ErrUnknownField = errors.New("unknown field identifier")

// Strategy selects how candidates for a field are located in page text.
type Strategy int

const (
	// StrategyRegex scans page text with a fixed pattern.
	StrategyRegex Strategy = iota
	// StrategyEntity keeps named entities carrying the target label.
	StrategyEntity
	// StrategyFreeText matches a literal, user-supplied term
	// case-insensitively, regex metacharacters escaped.
	StrategyFreeText
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRegex:
		return "pattern"
	case StrategyEntity:
		return "named-entity"
	case StrategyFreeText:
		return "free-text"
	default:
		return "unknown"
	}
}

// Field identifiers.
const (
	FullName       = "full_name"
	DateOfBirth    = "date_of_birth"
	MobileNumber   = "mobile_number"
	Telephone      = "telephone_number"
	EmailAddress   = "email_address"
	Address        = "residential_address"
	AadharNumber   = "aadhar_number"
	PANNumber      = "pan_number"
	PassportNumber = "passport_number"
	VoterIDNumber  = "voter_id_number"
	DrivingLicense = "driving_license_number"
	BankAccount    = "bank_account_number"
	CreditCard     = "credit_debit_card_number"
	IPAddress      = "ip_address"
	CustomSearch   = "custom_search"
)

// Definition is one immutable field entry: how to detect candidates and,
// optionally, how to validate them. A nil Validate means detection-only:
// every candidate is accepted as-is.
type Definition struct {
	ID          string
	Strategy    Strategy
	Pattern     *regexp.Regexp
	EntityLabel string
	Validate    validate.ValidateFunc
}

// Registry holds the fixed field set. Immutable after construction.
type Registry struct {
	defs map[string]*Definition
}

// Option customizes registry construction.
type Option func(*registryConfig)

type registryConfig struct {
	nameChecker validate.PlausibilityChecker
	phoneRegion string
}

// WithNameChecker wires the advisory name-plausibility service into the
// full_name validator. Without it the validator is purely structural.
func WithNameChecker(c validate.PlausibilityChecker) Option {
	return func(cfg *registryConfig) { cfg.nameChecker = c }
}

// WithPhoneRegion sets the region used to interpret phone numbers that
// carry no country code. Defaults to IN.
func WithPhoneRegion(region string) Option {
	return func(cfg *registryConfig) { cfg.phoneRegion = region }
}

// Detection patterns. One deliberate regex per field: mobile and email use
// the stricter dedicated forms, full_name is entity-based only.
var (
	dobPattern = regexp.MustCompile(`\b(?:\d{1,2}[-/]\d{1,2}[-/]\d{2,4}` +
		`|\d{4}[-/]\d{1,2}[-/]\d{1,2}` +
		`|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4})\b`)
	mobilePattern    = regexp.MustCompile(`(?:\+91[- ]?)?[6-9]\d{9}`)
	telephonePattern = regexp.MustCompile(`(?:\+?\d{1,4}[- ]?)?\d{2,4}[- ]?\d{3,4}[- ]?\d{3,4}`)
	emailPattern     = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	addressPattern   = regexp.MustCompile(`\b\d+\s+[A-Za-z\s,.-]+` +
		`(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Circle|Cir|Way|Place|Pl)` +
		`[,\s]+[A-Za-z\s,.-]+[A-Z]{2}\s+\d{5}(?:-\d{4})?\b`)
	aadharPattern   = regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}\b`)
	panPattern      = regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)
	passportPattern = regexp.MustCompile(`\b[A-Z0-9]{6,9}\b`)
	voterIDPattern  = regexp.MustCompile(`\b[A-Z]{3}[0-9]{7}\b`)
	licensePattern  = regexp.MustCompile(`\b[A-Z]{2}[0-9]{2}[- ]?[A-Z0-9]{1,2}[- ]?\d{4,7}\b`)
	bankPattern     = regexp.MustCompile(`\b[0-9]{8,18}\b`)
	cardPattern     = regexp.MustCompile(`\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}` +
		`|6(?:011|5[0-9][0-9])[0-9]{12}|3[47][0-9]{13}|3(?:0[0-5]|[68][0-9])[0-9]{11}` +
		`|(?:2131|1800|35\d{3})\d{11})\b`)
	ipPattern = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}` +
		`(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`)
)

// NewRegistry builds the fixed field set.
func NewRegistry(opts ...Option) *Registry {
	cfg := registryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	nameValidator := validate.NewFullNameValidator(cfg.nameChecker)
	phoneValidator := validate.PhoneRegion(cfg.phoneRegion)

	defs := []*Definition{
		{ID: FullName, Strategy: StrategyEntity, EntityLabel: ner.LabelPerson, Validate: nameValidator.Validate},
		{ID: DateOfBirth, Strategy: StrategyRegex, Pattern: dobPattern, Validate: validate.DateOfBirth},
		{ID: MobileNumber, Strategy: StrategyRegex, Pattern: mobilePattern, Validate: phoneValidator},
		{ID: Telephone, Strategy: StrategyRegex, Pattern: telephonePattern, Validate: phoneValidator},
		{ID: EmailAddress, Strategy: StrategyRegex, Pattern: emailPattern, Validate: validate.Email},
		{ID: Address, Strategy: StrategyRegex, Pattern: addressPattern}, // detection-only
		{ID: AadharNumber, Strategy: StrategyRegex, Pattern: aadharPattern, Validate: validate.Aadhar},
		{ID: PANNumber, Strategy: StrategyRegex, Pattern: panPattern, Validate: validate.PAN},
		{ID: PassportNumber, Strategy: StrategyRegex, Pattern: passportPattern, Validate: validate.Passport},
		{ID: VoterIDNumber, Strategy: StrategyRegex, Pattern: voterIDPattern, Validate: validate.VoterID},
		{ID: DrivingLicense, Strategy: StrategyRegex, Pattern: licensePattern, Validate: validate.DrivingLicense},
		{ID: BankAccount, Strategy: StrategyRegex, Pattern: bankPattern, Validate: validate.BankAccount},
		{ID: CreditCard, Strategy: StrategyRegex, Pattern: cardPattern, Validate: validate.CreditCard},
		{ID: IPAddress, Strategy: StrategyRegex, Pattern: ipPattern, Validate: validate.IPAddress},
		{ID: CustomSearch, Strategy: StrategyFreeText}, // no validator, every match is correct
	}

	m := make(map[string]*Definition, len(defs))
	for _, def := range defs {
		m[def.ID] = def
	}
	return &Registry{defs: m}
}

// Lookup returns the definition for id, or ErrUnknownField.
func (r *Registry) Lookup(id string) (*Definition, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	return def, nil
}

// IDs returns every registered field identifier, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
