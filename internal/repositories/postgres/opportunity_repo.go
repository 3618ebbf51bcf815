package postgres

import (
	"context"
	"errors"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OpportunityRepository interface {
	GetByID(ctx context.Context, id string) (*models.Opportunity, error)
	GetByNoticeID(ctx context.Context, noticeID string) (*models.Opportunity, error)
	ListActive(ctx context.Context, limit, offset int) ([]models.Opportunity, error)
	UpsertByNoticeID(ctx context.Context, o *models.Opportunity) error
	ReplaceAttachments(ctx context.Context, opportunityID string, atts []models.OpportunityAttachment) error
}

type opportunityRepo struct {
	db *gorm.DB
}

func NewOpportunityRepo(db *gorm.DB) OpportunityRepository {
	return &opportunityRepo{db: db}
}

func (r *opportunityRepo) GetByID(ctx context.Context, id string) (*models.Opportunity, error) {
	var o models.Opportunity
	err := r.db.WithContext(ctx).
		Preload("Attachments").
		Where("id = ?", id).
		Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &o, err
}

func (r *opportunityRepo) GetByNoticeID(ctx context.Context, noticeID string) (*models.Opportunity, error) {
	var o models.Opportunity
	err := r.db.WithContext(ctx).
		Where("notice_id = ?", noticeID).
		Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &o, err
}

// ListActive returns active opportunities with attachments preloaded, newest
// first. limit <= 0 means no limit (the batch scorer wants everything).
func (r *opportunityRepo) ListActive(ctx context.Context, limit, offset int) ([]models.Opportunity, error) {
	q := r.db.WithContext(ctx).
		Preload("Attachments").
		Where("status = ?", models.OpportunityActive).
		Order("posted_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var out []models.Opportunity
	err := q.Find(&out).Error
	return out, err
}

// UpsertByNoticeID refreshes all mutable fields; notice_id is the identity
// and never changes once inserted.
func (r *opportunityRepo) UpsertByNoticeID(ctx context.Context, o *models.Opportunity) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "notice_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "agency", "status", "naics_code", "psc_code",
				"set_aside_type", "contract_type", "estimated_value",
				"response_deadline", "posted_at", "description", "updated_at",
			}),
		}).
		Omit("Attachments").
		Create(o).Error
}

func (r *opportunityRepo) ReplaceAttachments(ctx context.Context, opportunityID string, atts []models.OpportunityAttachment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("opportunity_id = ?", opportunityID).Delete(&models.OpportunityAttachment{}).Error; err != nil {
			return err
		}
		if len(atts) == 0 {
			return nil
		}
		return tx.Create(&atts).Error
	})
}
