package textmine_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/textmine"
)

func TestExtractClearance_DetectsLevels(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"secret", "A Secret clearance required for all personnel.", textmine.ClearanceSecret},
		{"top secret", "Candidates must hold a Top Secret clearance.", textmine.ClearanceTopSecret},
		{"ts sci slash", "Active TS/SCI clearance is mandatory.", textmine.ClearanceTSSCI},
		{"confidential", "A Confidential clearance is sufficient.", textmine.ClearanceConfidential},
		{"public trust", "This is a Public Trust position.", textmine.ClearancePublicTrust},
		{"case insensitive", "SECRET CLEARANCE REQUIRED", textmine.ClearanceSecret},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, _ := textmine.ExtractClearance(tc.text)
			if !ok {
				t.Fatalf("ExtractClearance(%q) ok=false, want level %q", tc.text, tc.want)
			}
			if got != tc.want {
				t.Errorf("ExtractClearance(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractClearance_NoneFound(t *testing.T) {
	got, ok, bd := textmine.ExtractClearance("no special requirements, standard commercial terms")
	if ok {
		t.Errorf("expected no clearance, got %q", got)
	}
	if got != "" {
		t.Errorf("level should be empty when ok=false, got %q", got)
	}
	if bd.TiersChecked == 0 {
		t.Error("breakdown should record that tiers were checked")
	}
}

func TestExtractClearance_HighestTierWins(t *testing.T) {
	// Both tiers are present; the higher one must be reported regardless of
	// order in the text.
	text := "Secret clearance acceptable for some roles, TS/SCI required for leads."
	got, ok, _ := textmine.ExtractClearance(text)
	if !ok || got != textmine.ClearanceTSSCI {
		t.Errorf("ExtractClearance = %q (ok=%v), want %q", got, ok, textmine.ClearanceTSSCI)
	}
}

func TestClearanceRank_Ordering(t *testing.T) {
	order := []string{
		"",
		textmine.ClearancePublicTrust,
		textmine.ClearanceConfidential,
		textmine.ClearanceSecret,
		textmine.ClearanceTopSecret,
		textmine.ClearanceTSSCI,
	}
	for i := 1; i < len(order); i++ {
		lo := textmine.ClearanceRank(order[i-1])
		hi := textmine.ClearanceRank(order[i])
		if hi <= lo {
			t.Errorf("ClearanceRank(%q)=%d should exceed ClearanceRank(%q)=%d", order[i], hi, order[i-1], lo)
		}
	}
}

func TestRequiresSCI(t *testing.T) {
	if !textmine.RequiresSCI("must hold TS/SCI") {
		t.Error("TS/SCI text should require SCI")
	}
	if textmine.RequiresSCI("Secret clearance required") {
		t.Error("plain Secret should not require SCI")
	}
}
