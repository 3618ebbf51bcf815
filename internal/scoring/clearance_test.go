package scoring_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/scoring"
	"github.com/fedscout/fedscout/internal/textmine"
)

func TestScoreClearance_NotRequired(t *testing.T) {
	score, bd := scoring.ScoreClearance("", false, "", false)
	if score != 100 || bd.Fit != scoring.ClearanceNotRequired {
		t.Errorf("got %d/%q, want 100/%q", score, bd.Fit, scoring.ClearanceNotRequired)
	}
}

func TestScoreClearance_RequiredButNoneHeld(t *testing.T) {
	score, bd := scoring.ScoreClearance(textmine.ClearanceSecret, false, "", false)
	if score != 0 || bd.Fit != scoring.ClearanceUnmet {
		t.Errorf("got %d/%q, want 0/%q", score, bd.Fit, scoring.ClearanceUnmet)
	}
}

func TestScoreClearance_HeldMeetsOrExceeds(t *testing.T) {
	cases := []struct{ required, held string }{
		{textmine.ClearanceSecret, textmine.ClearanceSecret},
		{textmine.ClearanceSecret, textmine.ClearanceTopSecret},
		{textmine.ClearanceConfidential, textmine.ClearanceTSSCI},
	}
	for _, tc := range cases {
		score, _ := scoring.ScoreClearance(tc.required, false, tc.held, true)
		if score != 100 {
			t.Errorf("required %q held %q: score %d, want 100", tc.required, tc.held, score)
		}
	}
}

func TestScoreClearance_OneLevelShort(t *testing.T) {
	score, bd := scoring.ScoreClearance(textmine.ClearanceTopSecret, false, textmine.ClearanceSecret, false)
	if score != 30 || bd.Fit != scoring.ClearanceOneShort {
		t.Errorf("got %d/%q, want 30/%q", score, bd.Fit, scoring.ClearanceOneShort)
	}
}

func TestScoreClearance_TwoLevelsShort(t *testing.T) {
	score, _ := scoring.ScoreClearance(textmine.ClearanceTopSecret, false, textmine.ClearanceConfidential, false)
	if score != 0 {
		t.Errorf("two levels short: score %d, want 0", score)
	}
}

// SCI is a gate independent of the ordinal ladder.
func TestScoreClearance_SCIGate(t *testing.T) {
	score, bd := scoring.ScoreClearance(textmine.ClearanceTSSCI, true, textmine.ClearanceTSSCI, false)
	if score != 0 || bd.Fit != scoring.ClearanceSCIBlocked {
		t.Errorf("got %d/%q, want 0/%q", score, bd.Fit, scoring.ClearanceSCIBlocked)
	}

	score, _ = scoring.ScoreClearance(textmine.ClearanceTSSCI, true, textmine.ClearanceTSSCI, true)
	if score != 100 {
		t.Errorf("SCI capable: score %d, want 100", score)
	}
}
