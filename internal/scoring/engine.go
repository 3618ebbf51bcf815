package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/textmine"
)

// Weights holds the fixed blend of the six dimensions. They sum to exactly
// 1.0; OverallScore depends on that.
var Weights = struct {
	Capability   float64
	Eligibility  float64
	Scale        float64
	Clearance    float64
	ContractType float64
	Timeline     float64
}{
	Capability:   0.25,
	Eligibility:  0.20,
	Scale:        0.15,
	Clearance:    0.15,
	ContractType: 0.10,
	Timeline:     0.15,
}

// Dimensions carries the six per-dimension scores, each in [0,100].
type Dimensions struct {
	Capability   int `json:"capability"`
	Eligibility  int `json:"eligibility"`
	Scale        int `json:"scale"`
	Clearance    int `json:"clearance"`
	ContractType int `json:"contract_type"`
	Timeline     int `json:"timeline"`
}

// OverallScore blends the dimensions with Weights and rounds to an integer.
// Deterministic: equal inputs always produce equal output.
func OverallScore(d Dimensions) int {
	w := Weights
	sum := w.Capability*float64(d.Capability) +
		w.Eligibility*float64(d.Eligibility) +
		w.Scale*float64(d.Scale) +
		w.Clearance*float64(d.Clearance) +
		w.ContractType*float64(d.ContractType) +
		w.Timeline*float64(d.Timeline)
	return clamp(int(math.Round(sum)))
}

// Inputs is everything one scoring pass reads. All fields are consumed
// read-only.
type Inputs struct {
	Opportunity        *models.Opportunity
	Profile            *models.CompanyProfile
	NAICS              []models.CompanyNAICS
	Certifications     []models.CompanyCertification
	CapabilityKeywords []string
}

// Result is the full output of one scoring pass.
type Result struct {
	Overall    int
	Dimensions Dimensions
	Breakdowns Breakdowns
}

// Engine runs the text miner once per opportunity and fans the findings out
// to the six dimension scorers. It holds no state beyond the clock, which is
// injectable for tests.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt pins the clock, for deterministic timeline scoring in tests.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Score computes all six dimensions and the weighted overall score.
func (e *Engine) Score(in Inputs) Result {
	opp, p := in.Opportunity, in.Profile

	// One mining pass over description plus all attachment text.
	var sb strings.Builder
	sb.WriteString(opp.Description)
	for _, a := range opp.Attachments {
		sb.WriteString("\n")
		sb.WriteString(a.TextContent)
	}
	text := sb.String()

	requiredClearance, _, _ := textmine.ExtractClearance(text)
	minedMin, minedMax, _ := textmine.ExtractDollarAmounts(text)
	oppKeywords, _ := textmine.ExtractKeywords(text)

	estimated := opp.EstimatedValue
	if estimated == nil && minedMin != nil && minedMax != nil {
		mid := (*minedMin + *minedMax) / 2
		estimated = &mid
	}

	var d Dimensions
	var bd Breakdowns

	d.Capability, bd.Capability = ScoreCapability(opp.NAICSCode, in.NAICS, oppKeywords, in.CapabilityKeywords)
	d.Eligibility, bd.Eligibility = ScoreEligibility(opp.SetAsideType, p.BusinessSize, in.Certifications)
	d.Scale, bd.Scale = ScoreScale(estimated, p.MinContractValue, p.MaxContractValue)
	d.Clearance, bd.Clearance = ScoreClearance(requiredClearance, textmine.RequiresSCI(text), p.FacilityClearance, p.HasSCICapability)
	d.ContractType, bd.ContractType = ScoreContractType(opp.ContractType, p)
	d.Timeline, bd.Timeline = ScoreTimeline(opp.ResponseDeadline, e.now(), p.MinDaysToRespond, p.CanRushProposals)

	return Result{
		Overall:    OverallScore(d),
		Dimensions: d,
		Breakdowns: bd,
	}
}
