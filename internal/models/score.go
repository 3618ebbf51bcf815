package models

import (
	"time"

	"gorm.io/datatypes"
)

// OpportunityScore is the computed match between one user's company profile
// and one opportunity. Exactly one row per (user_id, opportunity_id);
// recomputation overwrites in place, no history is kept.
type OpportunityScore struct {
	ID            string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID        string `gorm:"column:user_id;type:uuid;uniqueIndex:uq_user_opportunity" json:"user_id"`
	OpportunityID string `gorm:"column:opportunity_id;type:uuid;uniqueIndex:uq_user_opportunity" json:"opportunity_id"`

	OverallScore      int `gorm:"column:overall_score" json:"overall_score"`
	CapabilityScore   int `gorm:"column:capability_score" json:"capability_score"`
	EligibilityScore  int `gorm:"column:eligibility_score" json:"eligibility_score"`
	ScaleScore        int `gorm:"column:scale_score" json:"scale_score"`
	ClearanceScore    int `gorm:"column:clearance_score" json:"clearance_score"`
	ContractTypeScore int `gorm:"column:contract_type_score" json:"contract_type_score"`
	TimelineScore     int `gorm:"column:timeline_score" json:"timeline_score"`

	// Per-dimension diagnostic breakdowns (scoring.*Breakdown structs,
	// serialized). Shown to the user, never read back by the scorer.
	CapabilityBreakdown   datatypes.JSON `gorm:"column:capability_breakdown;type:jsonb" json:"capability_breakdown,omitempty"`
	EligibilityBreakdown  datatypes.JSON `gorm:"column:eligibility_breakdown;type:jsonb" json:"eligibility_breakdown,omitempty"`
	ScaleBreakdown        datatypes.JSON `gorm:"column:scale_breakdown;type:jsonb" json:"scale_breakdown,omitempty"`
	ClearanceBreakdown    datatypes.JSON `gorm:"column:clearance_breakdown;type:jsonb" json:"clearance_breakdown,omitempty"`
	ContractTypeBreakdown datatypes.JSON `gorm:"column:contract_type_breakdown;type:jsonb" json:"contract_type_breakdown,omitempty"`
	TimelineBreakdown     datatypes.JSON `gorm:"column:timeline_breakdown;type:jsonb" json:"timeline_breakdown,omitempty"`

	IsStale      bool      `gorm:"column:is_stale" json:"is_stale"`
	CalculatedAt time.Time `gorm:"column:calculated_at;type:timestamptz" json:"calculated_at"`
}

func (OpportunityScore) TableName() string { return "opportunity_scores" }

// Bracket buckets an overall score for summary counts.
func (s OpportunityScore) Bracket() string {
	switch {
	case s.OverallScore >= 70:
		return "high"
	case s.OverallScore >= 40:
		return "medium"
	default:
		return "low"
	}
}
