package scoring_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/scoring"
)

func prefProfile() *models.CompanyProfile {
	return &models.CompanyProfile{
		PrefFirmFixedPrice: 5,
		PrefTimeMaterials:  3,
		PrefCostPlus:       1,
		PrefIDIQ:           4,
	}
}

func TestScoreContractType_PreferenceRescaling(t *testing.T) {
	p := prefProfile()
	cases := []struct {
		raw  string
		want int
	}{
		{"Firm Fixed Price", 100},
		{"FFP", 100},
		{"Time and Materials", 50},
		{"T&M", 50},
		{"Cost Plus Fixed Fee", 0},
		{"CPFF", 0},
		{"IDIQ", 75},
		{"Indefinite Delivery Indefinite Quantity", 75},
	}
	for _, tc := range cases {
		score, bd := scoring.ScoreContractType(tc.raw, p)
		if score != tc.want {
			t.Errorf("ScoreContractType(%q) = %d (normalized %q), want %d", tc.raw, score, bd.NormalizedType, tc.want)
		}
		if !bd.Recognized {
			t.Errorf("%q should be recognized", tc.raw)
		}
	}
}

func TestScoreContractType_Unrecognized(t *testing.T) {
	score, bd := scoring.ScoreContractType("Letter Contract", prefProfile())
	if score != 60 {
		t.Errorf("unrecognized type: score %d, want 60", score)
	}
	if bd.Recognized {
		t.Error("Letter Contract should not be recognized")
	}
}

func TestScoreContractType_PreferenceClamped(t *testing.T) {
	p := &models.CompanyProfile{PrefFirmFixedPrice: 0} // unset rating
	score, _ := scoring.ScoreContractType("FFP", p)
	if score != 0 {
		t.Errorf("unset preference clamps to 1 -> score %d, want 0", score)
	}

	p.PrefFirmFixedPrice = 9
	score, _ = scoring.ScoreContractType("FFP", p)
	if score != 100 {
		t.Errorf("overlarge preference clamps to 5 -> score %d, want 100", score)
	}
}
