package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fedscout/fedscout/internal/models"
	pgrepo "github.com/fedscout/fedscout/internal/repositories/postgres"
	"github.com/fedscout/fedscout/internal/textmine"
	"github.com/fedscout/fedscout/internal/utils"
)

// ProfilePatch is the allow-listed partial update for a company profile.
// Nil fields are left untouched; there is no way to write a column that is
// not named here.
type ProfilePatch struct {
	CompanyName   *string  `json:"company_name,omitempty"`
	BusinessSize  *string  `json:"business_size,omitempty"`
	AnnualRevenue *float64 `json:"annual_revenue,omitempty"`

	MinContractValue *float64 `json:"min_contract_value,omitempty"`
	MaxContractValue *float64 `json:"max_contract_value,omitempty"`

	FacilityClearance *string `json:"facility_clearance,omitempty"`
	HasSCICapability  *bool   `json:"has_sci_capability,omitempty"`

	PrefFirmFixedPrice *int `json:"pref_firm_fixed_price,omitempty"`
	PrefTimeMaterials  *int `json:"pref_time_materials,omitempty"`
	PrefCostPlus       *int `json:"pref_cost_plus,omitempty"`
	PrefIDIQ           *int `json:"pref_idiq,omitempty"`

	MinDaysToRespond *int  `json:"min_days_to_respond,omitempty"`
	CanRushProposals *bool `json:"can_rush_proposals,omitempty"`

	OnboardingComplete *bool `json:"onboarding_complete,omitempty"`
}

type NAICSInput struct {
	Code            string `json:"code"`
	IsPrimary       bool   `json:"is_primary"`
	ExperienceLevel string `json:"experience_level"`
}

type CertificationInput struct {
	CertType  string     `json:"cert_type"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.CompanyProfile, error)
	Patch(ctx context.Context, userID string, patch ProfilePatch) (*models.CompanyProfile, error)
	ReplaceNAICS(ctx context.Context, userID string, codes []NAICSInput) ([]models.CompanyNAICS, error)
	ReplaceCertifications(ctx context.Context, userID string, certs []CertificationInput) ([]models.CompanyCertification, error)
	SaveCapabilityStatement(ctx context.Context, userID, content string) (*models.CapabilityStatement, error)
}

type profileService struct {
	companies pgrepo.CompanyRepository
	scores    pgrepo.ScoreRepository
}

func NewProfileService(companies pgrepo.CompanyRepository, scores pgrepo.ScoreRepository) ProfileService {
	return &profileService{companies: companies, scores: scores}
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	const op = "ProfileService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	p, err := s.companies.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "company profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

// Patch applies the allow-listed fields and marks all of the user's scores
// stale so the next batch run recomputes them.
func (s *profileService) Patch(ctx context.Context, userID string, patch ProfilePatch) (*models.CompanyProfile, error) {
	const op = "ProfileService.Patch"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	existing, err := s.companies.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
		}
		existing = &models.CompanyProfile{UserID: userID}
	}

	applyPatch(existing, patch)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.companies.UpsertProfile(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save profile", err)
	}
	if err := s.scores.MarkStaleForUser(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to mark scores stale", err)
	}
	return existing, nil
}

func applyPatch(p *models.CompanyProfile, patch ProfilePatch) {
	if patch.CompanyName != nil {
		p.CompanyName = *patch.CompanyName
	}
	if patch.BusinessSize != nil {
		p.BusinessSize = *patch.BusinessSize
	}
	if patch.AnnualRevenue != nil {
		p.AnnualRevenue = *patch.AnnualRevenue
	}
	if patch.MinContractValue != nil {
		p.MinContractValue = patch.MinContractValue
	}
	if patch.MaxContractValue != nil {
		p.MaxContractValue = patch.MaxContractValue
	}
	if patch.FacilityClearance != nil {
		p.FacilityClearance = *patch.FacilityClearance
	}
	if patch.HasSCICapability != nil {
		p.HasSCICapability = *patch.HasSCICapability
	}
	if patch.PrefFirmFixedPrice != nil {
		p.PrefFirmFixedPrice = *patch.PrefFirmFixedPrice
	}
	if patch.PrefTimeMaterials != nil {
		p.PrefTimeMaterials = *patch.PrefTimeMaterials
	}
	if patch.PrefCostPlus != nil {
		p.PrefCostPlus = *patch.PrefCostPlus
	}
	if patch.PrefIDIQ != nil {
		p.PrefIDIQ = *patch.PrefIDIQ
	}
	if patch.MinDaysToRespond != nil {
		p.MinDaysToRespond = *patch.MinDaysToRespond
	}
	if patch.CanRushProposals != nil {
		p.CanRushProposals = *patch.CanRushProposals
	}
	if patch.OnboardingComplete != nil {
		p.OnboardingComplete = *patch.OnboardingComplete
	}
}

func (s *profileService) ReplaceNAICS(ctx context.Context, userID string, codes []NAICSInput) ([]models.CompanyNAICS, error) {
	const op = "ProfileService.ReplaceNAICS"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	rows := make([]models.CompanyNAICS, 0, len(codes))
	for i, c := range codes {
		if c.Code == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "naics code must not be empty", nil)
		}
		rows = append(rows, models.CompanyNAICS{
			ID:              uuid.NewString(),
			UserID:          userID,
			Code:            c.Code,
			IsPrimary:       c.IsPrimary,
			ExperienceLevel: c.ExperienceLevel,
			Position:        i,
		})
	}

	if err := s.companies.ReplaceNAICS(ctx, userID, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to replace naics codes", err)
	}
	if err := s.scores.MarkStaleForUser(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to mark scores stale", err)
	}
	return rows, nil
}

func (s *profileService) ReplaceCertifications(ctx context.Context, userID string, certs []CertificationInput) ([]models.CompanyCertification, error) {
	const op = "ProfileService.ReplaceCertifications"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	rows := make([]models.CompanyCertification, 0, len(certs))
	for _, c := range certs {
		if c.CertType == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "cert_type must not be empty", nil)
		}
		status := models.CertStatus(c.Status)
		if status != models.CertActive && status != models.CertExpired {
			return nil, utils.E(utils.CodeInvalidArgument, op, "status must be active or expired", nil)
		}
		rows = append(rows, models.CompanyCertification{
			ID:        uuid.NewString(),
			UserID:    userID,
			CertType:  c.CertType,
			Status:    status,
			ExpiresAt: c.ExpiresAt,
		})
	}

	if err := s.companies.ReplaceCertifications(ctx, userID, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to replace certifications", err)
	}
	if err := s.scores.MarkStaleForUser(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to mark scores stale", err)
	}
	return rows, nil
}

// SaveCapabilityStatement stores the prose and the keyword list mined from
// it; the capability scorer only ever reads the keywords.
func (s *profileService) SaveCapabilityStatement(ctx context.Context, userID, content string) (*models.CapabilityStatement, error) {
	const op = "ProfileService.SaveCapabilityStatement"

	if userID == "" || content == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and content are required", nil)
	}

	keywords, _ := textmine.ExtractKeywords(content)

	cs := &models.CapabilityStatement{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Keywords:  keywords,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.companies.SaveCapabilityStatement(ctx, cs); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save capability statement", err)
	}
	if err := s.scores.MarkStaleForUser(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to mark scores stale", err)
	}
	return cs, nil
}
