package scoring_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/scoring"
)

func f(v float64) *float64 { return &v }

func TestScoreScale_InRange(t *testing.T) {
	score, bd := scoring.ScoreScale(f(120_000), f(50_000), f(200_000))
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
	if bd.Fit != scoring.ScaleInRange {
		t.Errorf("fit = %q, want %q", bd.Fit, scoring.ScaleInRange)
	}
}

func TestScoreScale_Boundaries(t *testing.T) {
	for _, v := range []float64{50_000, 200_000} {
		if score, _ := scoring.ScoreScale(f(v), f(50_000), f(200_000)); score != 100 {
			t.Errorf("value %v on boundary: score %d, want 100", v, score)
		}
	}
}

func TestScoreScale_AboveMaxFalloff(t *testing.T) {
	// 2x the max: 100 - 70*(2-1)/4 = 82.5 -> 83 after rounding.
	score, bd := scoring.ScoreScale(f(400_000), f(50_000), f(200_000))
	if bd.Fit != scoring.ScaleAboveMax {
		t.Errorf("fit = %q, want %q", bd.Fit, scoring.ScaleAboveMax)
	}
	if score != 83 {
		t.Errorf("2x over: score = %d, want 83", score)
	}

	// Far past 5x floors at 30.
	score, _ = scoring.ScoreScale(f(100_000_000), f(50_000), f(200_000))
	if score != 30 {
		t.Errorf("severe overshoot: score = %d, want floor 30", score)
	}
}

func TestScoreScale_BelowMinFalloff(t *testing.T) {
	score, bd := scoring.ScoreScale(f(25_000), f(50_000), f(200_000))
	if bd.Fit != scoring.ScaleBelowMin {
		t.Errorf("fit = %q, want %q", bd.Fit, scoring.ScaleBelowMin)
	}
	// ratio 0.5: 100 - 80*0.5/0.9 = 55.6 -> 56.
	if score != 56 {
		t.Errorf("half of min: score = %d, want 56", score)
	}

	// Tiny value floors at 20.
	score, _ = scoring.ScoreScale(f(2_000), f(50_000), f(200_000))
	if score != 20 {
		t.Errorf("severe undershoot: score = %d, want floor 20", score)
	}
}

// The two defaults are intentionally different: neutral 50 when the data is
// missing, optimistic 70 when the user never constrained.
func TestScoreScale_AsymmetricDefaults(t *testing.T) {
	score, bd := scoring.ScoreScale(nil, f(50_000), f(200_000))
	if score != 50 || bd.Fit != scoring.ScaleNoEstimate {
		t.Errorf("no estimate: got %d/%q, want 50/%q", score, bd.Fit, scoring.ScaleNoEstimate)
	}

	score, bd = scoring.ScoreScale(f(120_000), nil, nil)
	if score != 70 || bd.Fit != scoring.ScaleNoPreference {
		t.Errorf("no preference: got %d/%q, want 70/%q", score, bd.Fit, scoring.ScaleNoPreference)
	}

	// No preference wins even when the estimate is also missing.
	score, _ = scoring.ScoreScale(nil, nil, nil)
	if score != 70 {
		t.Errorf("neither: got %d, want 70", score)
	}
}

func TestScoreScale_OneSidedPreference(t *testing.T) {
	// Only a max set: anything under it is in range.
	if score, _ := scoring.ScoreScale(f(10_000), nil, f(200_000)); score != 100 {
		t.Errorf("under max only: score %d, want 100", score)
	}
	// Only a min set: anything over it is in range.
	if score, _ := scoring.ScoreScale(f(10_000_000), f(50_000), nil); score != 100 {
		t.Errorf("over min only: score %d, want 100", score)
	}
}
