package scoring_test

import (
	"math"
	"testing"
	"time"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/scoring"
)

func TestWeights_SumToOne(t *testing.T) {
	w := scoring.Weights
	sum := w.Capability + w.Eligibility + w.Scale + w.Clearance + w.ContractType + w.Timeline
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %v, want exactly 1.0", sum)
	}
}

func TestOverallScore_Deterministic(t *testing.T) {
	d := scoring.Dimensions{Capability: 83, Eligibility: 100, Scale: 56, Clearance: 30, ContractType: 75, Timeline: 70}
	first := scoring.OverallScore(d)
	for i := 0; i < 100; i++ {
		if got := scoring.OverallScore(d); got != first {
			t.Fatalf("OverallScore not deterministic: %d then %d", first, got)
		}
	}
}

func TestOverallScore_KnownBlend(t *testing.T) {
	// .25*80 + .20*100 + .15*60 + .15*40 + .10*50 + .15*90 = 73.5 -> 74
	d := scoring.Dimensions{Capability: 80, Eligibility: 100, Scale: 60, Clearance: 40, ContractType: 50, Timeline: 90}
	if got := scoring.OverallScore(d); got != 74 {
		t.Errorf("OverallScore = %d, want 74", got)
	}

	if got := scoring.OverallScore(scoring.Dimensions{}); got != 0 {
		t.Errorf("all-zero dimensions: %d, want 0", got)
	}
	full := scoring.Dimensions{Capability: 100, Eligibility: 100, Scale: 100, Clearance: 100, ContractType: 100, Timeline: 100}
	if got := scoring.OverallScore(full); got != 100 {
		t.Errorf("all-100 dimensions: %d, want 100", got)
	}
}

func engineFixture() (*scoring.Engine, scoring.Inputs) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(30 * 24 * time.Hour)
	minVal, maxVal := 50_000.0, 5_000_000.0

	opp := &models.Opportunity{
		ID:               "opp-1",
		NoticeID:         "N-0001",
		NAICSCode:        "541511",
		SetAsideType:     "Total Small Business Set-Aside",
		ContractType:     "Firm Fixed Price",
		ResponseDeadline: &deadline,
		Description:      "Cloud migration to AWS, estimated value $2.5M. Secret clearance required. Kubernetes and kubernetes again.",
	}
	profile := &models.CompanyProfile{
		UserID:             "user-1",
		BusinessSize:       "small",
		MinContractValue:   &minVal,
		MaxContractValue:   &maxVal,
		FacilityClearance:  "Secret",
		PrefFirmFixedPrice: 5,
		MinDaysToRespond:   14,
		OnboardingComplete: true,
	}

	in := scoring.Inputs{
		Opportunity:        opp,
		Profile:            profile,
		NAICS:              []models.CompanyNAICS{{Code: "541511", IsPrimary: true}},
		CapabilityKeywords: []string{"aws", "kubernetes", "cloud migration"},
	}
	return scoring.NewEngineAt(func() time.Time { return now }), in
}

func TestEngine_ScoreEndToEnd(t *testing.T) {
	engine, in := engineFixture()
	res := engine.Score(in)

	d := res.Dimensions
	for name, v := range map[string]int{
		"capability": d.Capability, "eligibility": d.Eligibility,
		"scale": d.Scale, "clearance": d.Clearance,
		"contract_type": d.ContractType, "timeline": d.Timeline,
		"overall": res.Overall,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s score %d out of [0,100]", name, v)
		}
	}

	// Everything about this fixture lines up with the profile.
	if d.Eligibility != 100 {
		t.Errorf("eligibility = %d, want 100 (small business)", d.Eligibility)
	}
	if d.Scale != 100 {
		t.Errorf("scale = %d, want 100 ($2.5M inside [$50K,$5M])", d.Scale)
	}
	if d.Clearance != 100 {
		t.Errorf("clearance = %d, want 100 (Secret held, Secret required)", d.Clearance)
	}
	if d.ContractType != 100 {
		t.Errorf("contract type = %d, want 100 (FFP rated 5)", d.ContractType)
	}
	if d.Timeline != 100 {
		t.Errorf("timeline = %d, want 100 (30 days vs 14 minimum)", d.Timeline)
	}
	if res.Breakdowns.Capability.NAICSTier != scoring.NAICSExactPrimary {
		t.Errorf("naics tier = %q, want %q", res.Breakdowns.Capability.NAICSTier, scoring.NAICSExactPrimary)
	}

	if got := scoring.OverallScore(d); got != res.Overall {
		t.Errorf("overall %d does not match recomputed blend %d", res.Overall, got)
	}
}

func TestEngine_ScoreDeterministic(t *testing.T) {
	engine, in := engineFixture()
	a := engine.Score(in)
	b := engine.Score(in)
	if a.Overall != b.Overall || a.Dimensions != b.Dimensions {
		t.Errorf("engine not deterministic: %+v vs %+v", a.Dimensions, b.Dimensions)
	}
}

func TestEngine_AttachmentTextFeedsScoring(t *testing.T) {
	engine, in := engineFixture()
	in.Opportunity.Description = "Routine services."
	in.Opportunity.Attachments = []models.OpportunityAttachment{
		{TextContent: "Performance work statement: Top Secret clearance required."},
	}

	res := engine.Score(in)
	if res.Breakdowns.Clearance.RequiredLevel != "Top Secret" {
		t.Errorf("required level = %q, want Top Secret from attachment", res.Breakdowns.Clearance.RequiredLevel)
	}
	// Secret holder one level short of Top Secret.
	if res.Dimensions.Clearance != 30 {
		t.Errorf("clearance = %d, want 30", res.Dimensions.Clearance)
	}
}

func TestEngine_PublishedValueBeatsMinedValue(t *testing.T) {
	engine, in := engineFixture()
	published := 20_000_000.0 // well above the profile's max
	in.Opportunity.EstimatedValue = &published

	res := engine.Score(in)
	if res.Breakdowns.Scale.Fit != scoring.ScaleAboveMax {
		t.Errorf("fit = %q, want %q (published value should win over mined $2.5M)", res.Breakdowns.Scale.Fit, scoring.ScaleAboveMax)
	}
}
