package validate

import (
	"errors"
	"testing"
)

// stubChecker returns a fixed plausibility score or error.
type stubChecker struct {
	score float64
	err   error
	calls int
	last  string
}

func (s *stubChecker) Plausibility(firstName string) (float64, error) {
	s.calls++
	s.last = firstName
	return s.score, s.err
}

func TestFullNameValidatorStructural(t *testing.T) {
	v := NewFullNameValidator(nil)

	tests := []struct {
		name        string
		input       string
		expectValid bool
		expected    string
	}{
		{"first and last", "John Smith", true, "John Smith"},
		{"three parts", "John Michael Smith", true, "John Michael Smith"},
		{"extra whitespace collapsed", "  John   Smith  ", true, "John Smith"},
		{"title stripped", "Dr. John Smith", true, "John Smith"},
		{"suffix stripped", "John Smith Jr.", true, "John Smith"},
		{"hyphenated surname", "Mary Smith-Jones", true, "Mary Smith-Jones"},
		{"apostrophe surname", "Liam O'Brien", true, "Liam O'Brien"},
		{"lowercase rejected", "john smith", false, ""},
		{"single letter part", "J Smith", false, ""},
		{"digits rejected", "John Sm1th", false, ""},
		{"too many parts", "A B C D E F", false, ""},
		{"only a title", "Dr.", false, ""},
		{"empty input", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm, msg, verdict := v.Validate(tt.input)
			if tt.expectValid {
				if verdict != Correct {
					t.Fatalf("expected correct verdict, got %s (%s)", verdict, msg)
				}
				if norm != tt.expected {
					t.Errorf("expected %q, got %q", tt.expected, norm)
				}
			} else if verdict != Incorrect {
				t.Errorf("expected incorrect verdict, got %s (%q)", verdict, norm)
			}
		})
	}
}

func TestFullNameValidatorCheckerOverridesStructure(t *testing.T) {
	// A confident lookup accepts a name the structural rules would reject.
	checker := &stubChecker{score: 0.95}
	v := NewFullNameValidator(checker)

	norm, _, verdict := v.Validate("Xq Smith")
	if verdict != Correct {
		t.Fatalf("expected checker to accept, got %s", verdict)
	}
	if norm != "Xq Smith" {
		t.Errorf("unexpected normalized name: %q", norm)
	}
	if checker.last != "Xq" {
		t.Errorf("checker queried with %q; want first name", checker.last)
	}
}

func TestFullNameValidatorCheckerBelowThreshold(t *testing.T) {
	// A weak score falls through to the structural checks.
	checker := &stubChecker{score: 0.2}
	v := NewFullNameValidator(checker)

	if _, _, verdict := v.Validate("John Smith"); verdict != Correct {
		t.Errorf("structurally valid name rejected: %s", verdict)
	}
	if _, _, verdict := v.Validate("xq zz"); verdict != Incorrect {
		t.Errorf("structurally invalid name accepted")
	}
}

func TestFullNameValidatorCheckerErrorIgnored(t *testing.T) {
	checker := &stubChecker{err: errors.New("service unavailable")}
	v := NewFullNameValidator(checker)

	if _, _, verdict := v.Validate("John Smith"); verdict != Correct {
		t.Errorf("checker error changed the verdict: %s", verdict)
	}
}
