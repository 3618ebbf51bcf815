package postgres

import (
	"context"
	"errors"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository interface {
	GetByUserAndOpportunity(ctx context.Context, userID, opportunityID string) (*models.OpportunityScore, error)
	ListByUser(ctx context.Context, userID string, minScore int) ([]models.OpportunityScore, error)
	UpsertBatch(ctx context.Context, scores []models.OpportunityScore) error
	MarkStaleForUser(ctx context.Context, userID string) error
	ListUserIDsWithStale(ctx context.Context) ([]string, error)
}

type scoreRepo struct {
	db *gorm.DB
}

func NewScoreRepo(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

var scoreUpdateColumns = []string{
	"overall_score",
	"capability_score", "eligibility_score", "scale_score",
	"clearance_score", "contract_type_score", "timeline_score",
	"capability_breakdown", "eligibility_breakdown", "scale_breakdown",
	"clearance_breakdown", "contract_type_breakdown", "timeline_breakdown",
	"is_stale", "calculated_at",
}

func (r *scoreRepo) GetByUserAndOpportunity(ctx context.Context, userID, opportunityID string) (*models.OpportunityScore, error) {
	var s models.OpportunityScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *scoreRepo) ListByUser(ctx context.Context, userID string, minScore int) ([]models.OpportunityScore, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("overall_score DESC")
	if minScore > 0 {
		q = q.Where("overall_score >= ?", minScore)
	}
	var out []models.OpportunityScore
	err := q.Find(&out).Error
	return out, err
}

// UpsertBatch writes a whole batch run in one transaction: either every
// score lands or none do. Conflicts on (user_id, opportunity_id) overwrite
// in place; no score history is kept.
func (r *scoreRepo) UpsertBatch(ctx context.Context, scores []models.OpportunityScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "opportunity_id"}},
			DoUpdates: clause.AssignmentColumns(scoreUpdateColumns),
		}).Create(&scores).Error
	})
}

// MarkStaleForUser flags (not deletes) every score owned by the user, so the
// UI keeps showing numbers until the next batch recomputes them.
func (r *scoreRepo) MarkStaleForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&models.OpportunityScore{}).
		Where("user_id = ?", userID).
		Update("is_stale", true).Error
}

func (r *scoreRepo) ListUserIDsWithStale(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.OpportunityScore{}).
		Where("is_stale = ?", true).
		Distinct().
		Pluck("user_id", &ids).Error
	return ids, err
}
