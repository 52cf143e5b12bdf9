package fields

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/docsift/pii-extractor/internal/ner"
	"github.com/docsift/pii-extractor/internal/validate"
)

func TestRegistryLookupKnownFields(t *testing.T) {
	r := NewRegistry()

	known := []string{
		FullName, DateOfBirth, MobileNumber, Telephone, EmailAddress,
		Address, AadharNumber, PANNumber, PassportNumber, VoterIDNumber,
		DrivingLicense, BankAccount, CreditCard, IPAddress, CustomSearch,
	}
	for _, id := range known {
		def, err := r.Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q) returned error: %v", id, err)
			continue
		}
		if def.ID != id {
			t.Errorf("Lookup(%q) returned definition for %q", id, def.ID)
		}
	}
}

func TestRegistryLookupUnknownField(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("social_security_number")
	if err == nil {
		t.Fatal("expected an error for unknown field")
	}
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("error does not wrap ErrUnknownField: %v", err)
	}
	if !strings.Contains(err.Error(), "social_security_number") {
		t.Errorf("error does not name the offending identifier: %v", err)
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	r := NewRegistry()

	ids := r.IDs()
	if len(ids) != 15 {
		t.Fatalf("expected 15 field identifiers, got %d", len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("IDs() not sorted: %v", ids)
	}
}

func TestRegistryStrategies(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		id       string
		strategy Strategy
	}{
		{FullName, StrategyEntity},
		{EmailAddress, StrategyRegex},
		{CustomSearch, StrategyFreeText},
	}
	for _, tt := range tests {
		def, err := r.Lookup(tt.id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.id, err)
		}
		if def.Strategy != tt.strategy {
			t.Errorf("%s strategy = %s; want %s", tt.id, def.Strategy, tt.strategy)
		}
	}

	full, _ := r.Lookup(FullName)
	if full.EntityLabel != ner.LabelPerson {
		t.Errorf("full_name entity label = %q; want %q", full.EntityLabel, ner.LabelPerson)
	}
	custom, _ := r.Lookup(CustomSearch)
	if custom.Validate != nil {
		t.Error("custom_search should have no validator")
	}
}

func TestRegistryDetectionPatterns(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		id      string
		text    string
		matches []string
	}{
		{
			id:      MobileNumber,
			text:    "Call 9876543210 or +91-9123456789 today",
			matches: []string{"9876543210", "+91-9123456789"},
		},
		{
			id:      EmailAddress,
			text:    "Contact alice@example.com and bob@test.org",
			matches: []string{"alice@example.com", "bob@test.org"},
		},
		{
			id:      AadharNumber,
			text:    "Aadhar: 1234 5678 9012",
			matches: []string{"1234 5678 9012"},
		},
		{
			id:      PANNumber,
			text:    "PAN ABCDE1234F on record",
			matches: []string{"ABCDE1234F"},
		},
		{
			id:      IPAddress,
			text:    "Logged in from 192.168.1.100",
			matches: []string{"192.168.1.100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			def, err := r.Lookup(tt.id)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.id, err)
			}
			got := def.Pattern.FindAllString(tt.text, -1)
			if len(got) != len(tt.matches) {
				t.Fatalf("found %v; want %v", got, tt.matches)
			}
			for i := range got {
				if got[i] != tt.matches[i] {
					t.Errorf("match %d = %q; want %q", i, got[i], tt.matches[i])
				}
			}
		})
	}
}

type fixedChecker struct{ score float64 }

func (f fixedChecker) Plausibility(string) (float64, error) { return f.score, nil }

func TestRegistryOptions(t *testing.T) {
	r := NewRegistry(
		WithNameChecker(fixedChecker{score: 0.9}),
		WithPhoneRegion("US"),
	)

	full, err := r.Lookup(FullName)
	if err != nil {
		t.Fatal(err)
	}
	// The checker approves a name the structural rules would reject.
	if _, _, verdict := full.Validate("Jo 9x"); verdict != validate.Correct {
		t.Errorf("expected checker-backed acceptance, got %s", verdict)
	}

	mobile, err := r.Lookup(MobileNumber)
	if err != nil {
		t.Fatal(err)
	}
	norm, _, verdict := mobile.Validate("2025550123")
	if verdict != validate.Correct {
		t.Fatalf("US number rejected: %s", verdict)
	}
	if !strings.HasPrefix(norm, "+1") {
		t.Errorf("normalized = %q; want +1 prefix", norm)
	}
}
