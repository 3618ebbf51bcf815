package scoring_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/scoring"
)

func naics(code string, primary bool) models.CompanyNAICS {
	return models.CompanyNAICS{Code: code, IsPrimary: primary}
}

func TestScoreCapability_NAICSTiers(t *testing.T) {
	cases := []struct {
		name     string
		opp      string
		held     []models.CompanyNAICS
		wantTier scoring.NAICSMatchTier
	}{
		{"exact primary", "541511", []models.CompanyNAICS{naics("541511", true)}, scoring.NAICSExactPrimary},
		{"exact secondary", "541511", []models.CompanyNAICS{naics("541511", false)}, scoring.NAICSExact},
		{"same group", "541511", []models.CompanyNAICS{naics("541512", true)}, scoring.NAICSSameGroup},
		{"same sector", "541511", []models.CompanyNAICS{naics("546789", true)}, scoring.NAICSSameSector},
		{"no match", "541511", []models.CompanyNAICS{naics("236220", true)}, scoring.NAICSNoMatch},
		{"no codes", "541511", nil, scoring.NAICSNoMatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, bd := scoring.ScoreCapability(tc.opp, tc.held, nil, nil)
			if bd.NAICSTier != tc.wantTier {
				t.Errorf("tier = %q, want %q", bd.NAICSTier, tc.wantTier)
			}
		})
	}
}

// Scores must be monotonic in NAICS specificity: exact primary >= exact >=
// group >= sector >= none.
func TestScoreCapability_MonotonicInSpecificity(t *testing.T) {
	opp := "541511"
	ladder := [][]models.CompanyNAICS{
		{naics("541511", true)},
		{naics("541511", false)},
		{naics("541519", false)},
		{naics("541990", false)},
		{naics("236220", false)},
	}
	prev := 101
	for i, held := range ladder {
		score, bd := scoring.ScoreCapability(opp, held, nil, nil)
		if score > prev {
			t.Errorf("step %d (%s): score %d exceeds previous %d", i, bd.NAICSTier, score, prev)
		}
		prev = score
	}
}

func TestScoreCapability_BestCodeWins(t *testing.T) {
	// An exact match on a secondary code must beat a group match on the
	// primary code.
	held := []models.CompanyNAICS{naics("541512", true), naics("541511", false)}
	_, bd := scoring.ScoreCapability("541511", held, nil, nil)
	if bd.NAICSTier != scoring.NAICSExact {
		t.Errorf("tier = %q, want %q", bd.NAICSTier, scoring.NAICSExact)
	}
	if bd.MatchedNAICS != "541511" {
		t.Errorf("matched code = %q, want 541511", bd.MatchedNAICS)
	}
}

func TestScoreCapability_KeywordOverlapAndTechnicalBonus(t *testing.T) {
	oppKW := []string{"aws", "kubernetes", "logistics", "staffing"}
	capKW := []string{"aws", "kubernetes", "staffing"}

	score, bd := scoring.ScoreCapability("541511", []models.CompanyNAICS{naics("541511", true)}, oppKW, capKW)
	if len(bd.KeywordMatches) != 3 {
		t.Errorf("keyword matches = %v, want 3 entries", bd.KeywordMatches)
	}
	if len(bd.TechnicalMatches) != 2 {
		t.Errorf("technical matches = %v, want 2 entries", bd.TechnicalMatches)
	}
	// 3/4 overlap = 75, +20 technical bonus = 95 keyword score.
	if bd.KeywordScore != 95 {
		t.Errorf("keyword score = %d, want 95", bd.KeywordScore)
	}
	// 0.7*100 + 0.3*95 = 98.5 -> 99 rounded, clamped inside [0,100].
	if score != 99 {
		t.Errorf("score = %d, want 99", score)
	}
}

func TestScoreCapability_NeutralWithoutKeywords(t *testing.T) {
	_, bd := scoring.ScoreCapability("541511", []models.CompanyNAICS{naics("541511", true)}, nil, nil)
	if bd.KeywordScore != 50 {
		t.Errorf("keyword score without data = %d, want neutral 50", bd.KeywordScore)
	}
}

func TestScoreCapability_Range(t *testing.T) {
	inputs := [][]models.CompanyNAICS{nil, {naics("541511", true)}, {naics("99", false)}}
	for _, held := range inputs {
		score, _ := scoring.ScoreCapability("541511", held, []string{"aws"}, []string{"aws"})
		if score < 0 || score > 100 {
			t.Errorf("score %d out of [0,100]", score)
		}
	}
}
