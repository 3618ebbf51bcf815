// Package scoring computes a 0-100 match score between one opportunity and
// one company profile across six independent dimensions, then combines them
// with fixed weights. Every scorer is a pure function returning the score
// plus a typed breakdown shown to the user.
package scoring

// NAICSMatchTier classifies how closely two NAICS codes relate.
type NAICSMatchTier string

const (
	NAICSExactPrimary NAICSMatchTier = "exact_primary"
	NAICSExact        NAICSMatchTier = "exact"
	NAICSSameGroup    NAICSMatchTier = "same_group"  // 4-digit industry group
	NAICSSameSector   NAICSMatchTier = "same_sector" // 2-digit sector
	NAICSNoMatch      NAICSMatchTier = "no_match"
)

type CapabilityBreakdown struct {
	NAICSTier        NAICSMatchTier `json:"naics_tier"`
	NAICSScore       int            `json:"naics_score"`
	OpportunityNAICS string         `json:"opportunity_naics,omitempty"`
	MatchedNAICS     string         `json:"matched_naics,omitempty"`
	KeywordScore     int            `json:"keyword_score"`
	KeywordMatches   []string       `json:"keyword_matches,omitempty"`
	TechnicalMatches []string       `json:"technical_matches,omitempty"`
}

// EligibilityReason tags why the eligibility score came out the way it did.
type EligibilityReason string

const (
	EligibilityOpen            EligibilityReason = "full_and_open"
	EligibilityCertHeld        EligibilityReason = "certification_held"
	EligibilitySmallBizOnly    EligibilityReason = "small_business_unmet"
	EligibilityCertMissing     EligibilityReason = "certification_missing"
	EligibilityUnknownSetAside EligibilityReason = "unrecognized_set_aside"
)

type EligibilityBreakdown struct {
	Reason        EligibilityReason `json:"reason"`
	SetAside      string            `json:"set_aside,omitempty"`
	RequiredCerts []string          `json:"required_certs,omitempty"`
	MatchedCert   string            `json:"matched_cert,omitempty"`
}

// ScaleFit tags where the estimated value fell relative to the preference
// range.
type ScaleFit string

const (
	ScaleInRange      ScaleFit = "in_range"
	ScaleAboveMax     ScaleFit = "above_max"
	ScaleBelowMin     ScaleFit = "below_min"
	ScaleNoEstimate   ScaleFit = "no_estimate"
	ScaleNoPreference ScaleFit = "no_preference"
)

type ScaleBreakdown struct {
	Fit            ScaleFit `json:"fit"`
	EstimatedValue *float64 `json:"estimated_value,omitempty"`
	PreferredMin   *float64 `json:"preferred_min,omitempty"`
	PreferredMax   *float64 `json:"preferred_max,omitempty"`
}

type ClearanceFit string

const (
	ClearanceNotRequired ClearanceFit = "not_required"
	ClearanceMet         ClearanceFit = "met"
	ClearanceOneShort    ClearanceFit = "one_level_short"
	ClearanceUnmet       ClearanceFit = "unmet"
	ClearanceSCIBlocked  ClearanceFit = "sci_blocked"
)

type ClearanceBreakdown struct {
	Fit           ClearanceFit `json:"fit"`
	RequiredLevel string       `json:"required_level,omitempty"`
	HeldLevel     string       `json:"held_level,omitempty"`
	RequiresSCI   bool         `json:"requires_sci"`
}

type ContractTypeBreakdown struct {
	DetectedType   string `json:"detected_type,omitempty"`
	NormalizedType string `json:"normalized_type,omitempty"`
	Preference     int    `json:"preference,omitempty"`
	Recognized     bool   `json:"recognized"`
}

type TimelineFit string

const (
	TimelineAmple        TimelineFit = "ample"
	TimelineAdequate     TimelineFit = "adequate"
	TimelineRushable     TimelineFit = "rushable"
	TimelineInsufficient TimelineFit = "insufficient"
	TimelinePassed       TimelineFit = "passed"
	TimelineNoDeadline   TimelineFit = "no_deadline"
)

type TimelineBreakdown struct {
	Fit           TimelineFit `json:"fit"`
	DaysRemaining int         `json:"days_remaining"`
	MinDaysNeeded int         `json:"min_days_needed"`
	CanRush       bool        `json:"can_rush"`
}

// Breakdowns bundles all six per-dimension explanations for persistence.
type Breakdowns struct {
	Capability   CapabilityBreakdown   `json:"capability"`
	Eligibility  EligibilityBreakdown  `json:"eligibility"`
	Scale        ScaleBreakdown        `json:"scale"`
	Clearance    ClearanceBreakdown    `json:"clearance"`
	ContractType ContractTypeBreakdown `json:"contract_type"`
	Timeline     TimelineBreakdown     `json:"timeline"`
}
