package models

import "time"

type OpportunityStatus string

const (
	OpportunityActive   OpportunityStatus = "active"
	OpportunityArchived OpportunityStatus = "archived"
)

// Opportunity is a federal solicitation. NoticeID is the immutable external
// identity (SAM.gov notice id); every other field is refreshed on each sync.
type Opportunity struct {
	ID       string            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	NoticeID string            `gorm:"column:notice_id;type:text;uniqueIndex" json:"notice_id"`
	Title    string            `gorm:"column:title;type:text" json:"title"`
	Agency   string            `gorm:"column:agency;type:text" json:"agency"`
	Status   OpportunityStatus `gorm:"column:status;type:text;index" json:"status"`

	NAICSCode    string `gorm:"column:naics_code;type:text" json:"naics_code"`
	PSCCode      string `gorm:"column:psc_code;type:text" json:"psc_code"`
	SetAsideType string `gorm:"column:set_aside_type;type:text" json:"set_aside_type"`
	ContractType string `gorm:"column:contract_type;type:text" json:"contract_type"`

	// Agency-published ceiling, when the feed carries one. The text miner
	// supplies an estimate when it does not.
	EstimatedValue *float64 `gorm:"column:estimated_value;type:numeric" json:"estimated_value,omitempty"`

	ResponseDeadline *time.Time `gorm:"column:response_deadline;type:timestamptz" json:"response_deadline,omitempty"`
	PostedAt         time.Time  `gorm:"column:posted_at;type:timestamptz" json:"posted_at"`
	Description      string     `gorm:"column:description;type:text" json:"description"`

	Attachments []OpportunityAttachment `gorm:"foreignKey:OpportunityID" json:"attachments,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Opportunity) TableName() string { return "opportunities" }

// OpportunityAttachment holds text extracted from one solicitation document;
// scoring consumes TextContent only.
type OpportunityAttachment struct {
	ID            string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OpportunityID string `gorm:"column:opportunity_id;type:uuid;index" json:"opportunity_id"`
	FileName      string `gorm:"column:file_name;type:text" json:"file_name"`
	TextContent   string `gorm:"column:text_content;type:text" json:"text_content"`
}

func (OpportunityAttachment) TableName() string { return "opportunity_attachments" }
