package models

import (
	"time"

	"github.com/lib/pq"
)

// CompanyProfile holds one company per user. It is the read-side input of
// every scoring run; updating it marks the user's scores stale.
type CompanyProfile struct {
	UserID        string  `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	CompanyName   string  `gorm:"column:company_name;type:text" json:"company_name"`
	BusinessSize  string  `gorm:"column:business_size;type:text" json:"business_size"` // "small" | "other_than_small"
	AnnualRevenue float64 `gorm:"column:annual_revenue;type:numeric" json:"annual_revenue"`

	// Contract-value preference range. Nil means the user has not constrained
	// that side.
	MinContractValue *float64 `gorm:"column:min_contract_value;type:numeric" json:"min_contract_value"`
	MaxContractValue *float64 `gorm:"column:max_contract_value;type:numeric" json:"max_contract_value"`

	FacilityClearance string `gorm:"column:facility_clearance;type:text" json:"facility_clearance"`
	HasSCICapability  bool   `gorm:"column:has_sci_capability" json:"has_sci_capability"`

	// Contract-type preference ratings, 1 (avoid) to 5 (preferred).
	PrefFirmFixedPrice int `gorm:"column:pref_firm_fixed_price" json:"pref_firm_fixed_price"`
	PrefTimeMaterials  int `gorm:"column:pref_time_materials" json:"pref_time_materials"`
	PrefCostPlus       int `gorm:"column:pref_cost_plus" json:"pref_cost_plus"`
	PrefIDIQ           int `gorm:"column:pref_idiq" json:"pref_idiq"`

	MinDaysToRespond int  `gorm:"column:min_days_to_respond" json:"min_days_to_respond"`
	CanRushProposals bool `gorm:"column:can_rush_proposals" json:"can_rush_proposals"`

	OnboardingComplete bool      `gorm:"column:onboarding_complete" json:"onboarding_complete"`
	UpdatedAt          time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (CompanyProfile) TableName() string { return "company_profiles" }

// CompanyNAICS is one NAICS code held by a company, ordered by Position.
type CompanyNAICS struct {
	ID              string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID          string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Code            string `gorm:"column:code;type:text" json:"code"`
	IsPrimary       bool   `gorm:"column:is_primary" json:"is_primary"`
	ExperienceLevel string `gorm:"column:experience_level;type:text" json:"experience_level"`
	Position        int    `gorm:"column:position" json:"position"`
}

func (CompanyNAICS) TableName() string { return "company_naics" }

type CertStatus string

const (
	CertActive  CertStatus = "active"
	CertExpired CertStatus = "expired"
)

// CompanyCertification is a set-aside certification (8A, HUBZONE, SDVOSB,
// WOSB, EDWOSB, VOSB, SB). Only active certifications count for eligibility.
type CompanyCertification struct {
	ID        string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string     `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	CertType  string     `gorm:"column:cert_type;type:text" json:"cert_type"`
	Status    CertStatus `gorm:"column:status;type:text" json:"status"`
	ExpiresAt *time.Time `gorm:"column:expires_at;type:timestamptz" json:"expires_at,omitempty"`
}

func (CompanyCertification) TableName() string { return "company_certifications" }

func (c CompanyCertification) IsActive() bool { return c.Status == CertActive }

// CapabilityStatement is free-text capability prose plus the keyword list
// mined from it at write time.
type CapabilityStatement struct {
	ID        string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Content   string         `gorm:"column:content;type:text" json:"content"`
	Keywords  pq.StringArray `gorm:"column:keywords;type:text[]" json:"keywords"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (CapabilityStatement) TableName() string { return "capability_statements" }
