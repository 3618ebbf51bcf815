package postgres

import (
	"context"
	"errors"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepository interface {
	GetProfile(ctx context.Context, userID string) (*models.CompanyProfile, error)
	UpsertProfile(ctx context.Context, p *models.CompanyProfile) error

	ListNAICS(ctx context.Context, userID string) ([]models.CompanyNAICS, error)
	ReplaceNAICS(ctx context.Context, userID string, codes []models.CompanyNAICS) error

	ListCertifications(ctx context.Context, userID string) ([]models.CompanyCertification, error)
	ReplaceCertifications(ctx context.Context, userID string, certs []models.CompanyCertification) error

	LatestCapabilityStatement(ctx context.Context, userID string) (*models.CapabilityStatement, error)
	SaveCapabilityStatement(ctx context.Context, cs *models.CapabilityStatement) error
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetProfile(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *companyRepo) UpsertProfile(ctx context.Context, p *models.CompanyProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"company_name", "business_size", "annual_revenue",
				"min_contract_value", "max_contract_value",
				"facility_clearance", "has_sci_capability",
				"pref_firm_fixed_price", "pref_time_materials", "pref_cost_plus", "pref_idiq",
				"min_days_to_respond", "can_rush_proposals",
				"onboarding_complete", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *companyRepo) ListNAICS(ctx context.Context, userID string) ([]models.CompanyNAICS, error) {
	var out []models.CompanyNAICS
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&out).Error
	return out, err
}

// ReplaceNAICS swaps the full ordered code set in one transaction.
func (r *companyRepo) ReplaceNAICS(ctx context.Context, userID string, codes []models.CompanyNAICS) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CompanyNAICS{}).Error; err != nil {
			return err
		}
		if len(codes) == 0 {
			return nil
		}
		return tx.Create(&codes).Error
	})
}

func (r *companyRepo) ListCertifications(ctx context.Context, userID string) ([]models.CompanyCertification, error) {
	var out []models.CompanyCertification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&out).Error
	return out, err
}

func (r *companyRepo) ReplaceCertifications(ctx context.Context, userID string, certs []models.CompanyCertification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CompanyCertification{}).Error; err != nil {
			return err
		}
		if len(certs) == 0 {
			return nil
		}
		return tx.Create(&certs).Error
	})
}

func (r *companyRepo) LatestCapabilityStatement(ctx context.Context, userID string) (*models.CapabilityStatement, error) {
	var cs models.CapabilityStatement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Take(&cs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &cs, err
}

func (r *companyRepo) SaveCapabilityStatement(ctx context.Context, cs *models.CapabilityStatement) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "keywords", "updated_at"}),
		}).
		Create(cs).Error
}
