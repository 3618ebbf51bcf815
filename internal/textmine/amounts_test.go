package textmine_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/textmine"
)

func TestExtractDollarAmounts_SuffixNormalization(t *testing.T) {
	min, max, _ := textmine.ExtractDollarAmounts("Estimated value: $2.5M")
	if min == nil || max == nil {
		t.Fatal("expected a value, got nil")
	}
	if *min != 2_500_000 || *max != 2_500_000 {
		t.Errorf("got min=%v max=%v, want 2500000 for both", *min, *max)
	}
}

func TestExtractDollarAmounts_MinMaxAcrossMatches(t *testing.T) {
	text := "Base year $150,000 with options up to $1.2M, ceiling of $2M."
	min, max, bd := textmine.ExtractDollarAmounts(text)
	if min == nil || max == nil {
		t.Fatalf("expected values, breakdown: %+v", bd)
	}
	if *min != 150_000 {
		t.Errorf("min = %v, want 150000", *min)
	}
	if *max != 2_000_000 {
		t.Errorf("max = %v, want 2000000", *max)
	}
}

func TestExtractDollarAmounts_WordForm(t *testing.T) {
	min, _, _ := textmine.ExtractDollarAmounts("approximately 1.5 million dollars over five years")
	if min == nil || *min != 1_500_000 {
		t.Errorf("got %v, want 1500000", min)
	}
}

func TestExtractDollarAmounts_SpelledOutMagnitude(t *testing.T) {
	// Dollar sign with a spelled-out magnitude and no trailing "dollars".
	min, max, _ := textmine.ExtractDollarAmounts("Estimated value is $2.5 million over the base period.")
	if min == nil || max == nil {
		t.Fatal("expected a value, got nil")
	}
	if *min != 2_500_000 || *max != 2_500_000 {
		t.Errorf("got min=%v max=%v, want 2500000 for both", *min, *max)
	}

	_, _, bd := textmine.ExtractDollarAmounts("a ceiling of $1.5 million dollars")
	if len(bd.Values) != 1 {
		t.Errorf("expected exactly one surviving value, got %v", bd.Values)
	}
}

func TestExtractDollarAmounts_NoiseFiltering(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"too small", "see page $5 ... unit price $12.50"},
		{"too large", "$99,999,999,999,999 (OCR artifact)"},
		{"nothing", "no special requirements"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			min, max, _ := textmine.ExtractDollarAmounts(tc.text)
			if min != nil || max != nil {
				t.Errorf("expected nil,nil for %q, got %v, %v", tc.text, min, max)
			}
		})
	}
}

func TestExtractDollarAmounts_SuffixNotDoubleCounted(t *testing.T) {
	// "$1.5M" must not also parse as a bare $1.5 (which would then be
	// discarded, but would still pollute the breakdown).
	_, _, bd := textmine.ExtractDollarAmounts("value $1.5M firm")
	if len(bd.Values) != 1 {
		t.Errorf("expected exactly one surviving value, got %v", bd.Values)
	}
}
