package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fedscout/fedscout/internal/models"
	pgrepo "github.com/fedscout/fedscout/internal/repositories/postgres"
	"github.com/fedscout/fedscout/internal/utils"
)

// OpportunityIngest is one solicitation record as delivered by the sync job
// or the admin ingest endpoint. NoticeID is the external identity.
type OpportunityIngest struct {
	NoticeID         string     `json:"notice_id"`
	Title            string     `json:"title"`
	Agency           string     `json:"agency"`
	Status           string     `json:"status"`
	NAICSCode        string     `json:"naics_code"`
	PSCCode          string     `json:"psc_code"`
	SetAsideType     string     `json:"set_aside_type"`
	ContractType     string     `json:"contract_type"`
	EstimatedValue   *float64   `json:"estimated_value,omitempty"`
	ResponseDeadline *time.Time `json:"response_deadline,omitempty"`
	PostedAt         time.Time  `json:"posted_at"`
	Description      string     `json:"description"`

	Attachments []AttachmentIngest `json:"attachments,omitempty"`
}

type AttachmentIngest struct {
	FileName    string `json:"file_name"`
	TextContent string `json:"text_content"`
}

type OpportunityService interface {
	Get(ctx context.Context, id string) (*models.Opportunity, error)
	ListActive(ctx context.Context, limit, offset int) ([]models.Opportunity, error)
	Ingest(ctx context.Context, in OpportunityIngest) (*models.Opportunity, error)
}

type opportunityService struct {
	opportunities pgrepo.OpportunityRepository
}

func NewOpportunityService(opportunities pgrepo.OpportunityRepository) OpportunityService {
	return &opportunityService{opportunities: opportunities}
}

func (s *opportunityService) Get(ctx context.Context, id string) (*models.Opportunity, error) {
	const op = "OpportunityService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	o, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "opportunity not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get opportunity", err)
	}
	return o, nil
}

func (s *opportunityService) ListActive(ctx context.Context, limit, offset int) ([]models.Opportunity, error) {
	const op = "OpportunityService.ListActive"

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	out, err := s.opportunities.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list opportunities", err)
	}
	return out, nil
}

// Ingest upserts by notice id: first sight inserts, later sights refresh
// every mutable field and replace the attachment set.
func (s *opportunityService) Ingest(ctx context.Context, in OpportunityIngest) (*models.Opportunity, error) {
	const op = "OpportunityService.Ingest"

	if in.NoticeID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "notice_id is required", nil)
	}

	status := models.OpportunityStatus(in.Status)
	if status == "" {
		status = models.OpportunityActive
	}
	if status != models.OpportunityActive && status != models.OpportunityArchived {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status must be active or archived", nil)
	}

	o := &models.Opportunity{
		ID:               uuid.NewString(),
		NoticeID:         in.NoticeID,
		Title:            in.Title,
		Agency:           in.Agency,
		Status:           status,
		NAICSCode:        in.NAICSCode,
		PSCCode:          in.PSCCode,
		SetAsideType:     in.SetAsideType,
		ContractType:     in.ContractType,
		EstimatedValue:   in.EstimatedValue,
		ResponseDeadline: in.ResponseDeadline,
		PostedAt:         in.PostedAt,
		Description:      in.Description,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := s.opportunities.UpsertByNoticeID(ctx, o); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert opportunity", err)
	}

	// The upsert may have kept the existing row's id; read it back so the
	// attachments attach to the right parent.
	stored, err := s.opportunities.GetByNoticeID(ctx, in.NoticeID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload opportunity", err)
	}

	if in.Attachments != nil {
		atts := make([]models.OpportunityAttachment, 0, len(in.Attachments))
		for _, a := range in.Attachments {
			atts = append(atts, models.OpportunityAttachment{
				ID:            uuid.NewString(),
				OpportunityID: stored.ID,
				FileName:      a.FileName,
				TextContent:   a.TextContent,
			})
		}
		if err := s.opportunities.ReplaceAttachments(ctx, stored.ID, atts); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to replace attachments", err)
		}
		stored.Attachments = atts
	}

	return stored, nil
}
