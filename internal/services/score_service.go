package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/fedscout/fedscout/internal/cache"
	"github.com/fedscout/fedscout/internal/models"
	pgrepo "github.com/fedscout/fedscout/internal/repositories/postgres"
	"github.com/fedscout/fedscout/internal/scoring"
	"github.com/fedscout/fedscout/internal/utils"
)

const (
	batchLockTTL    = 10 * time.Minute
	summaryCacheTTL = 15 * time.Minute
)

// BatchError records one opportunity that failed to score; the batch keeps
// going past it.
type BatchError struct {
	NoticeID string `json:"notice_id"`
	Message  string `json:"message"`
}

// BatchSummary is the JSON-serializable result of one batch scoring run.
type BatchSummary struct {
	Status string       `json:"status"` // "ok" | "error"
	Reason string       `json:"reason,omitempty"`
	Scored int          `json:"scored"`
	High   int          `json:"high"`   // overall >= 70
	Medium int          `json:"medium"` // 40..69
	Low    int          `json:"low"`    // < 40
	Errors []BatchError `json:"errors,omitempty"`
}

type ScoreService interface {
	CalculateAllForUser(ctx context.Context, userID string) (*BatchSummary, error)
	ListForUser(ctx context.Context, userID string, minScore int) ([]models.OpportunityScore, error)
	GetOne(ctx context.Context, userID, opportunityID string) (*models.OpportunityScore, error)
	Summary(ctx context.Context, userID string) (*BatchSummary, error)
}

type scoreService struct {
	companies     pgrepo.CompanyRepository
	opportunities pgrepo.OpportunityRepository
	scores        pgrepo.ScoreRepository
	engine        *scoring.Engine
	cache         cache.Cache
	rdb           *redis.Client
	log           *logrus.Logger
}

func NewScoreService(
	companies pgrepo.CompanyRepository,
	opportunities pgrepo.OpportunityRepository,
	scores pgrepo.ScoreRepository,
	engine *scoring.Engine,
	c cache.Cache,
	rdb *redis.Client,
	log *logrus.Logger,
) ScoreService {
	return &scoreService{
		companies:     companies,
		opportunities: opportunities,
		scores:        scores,
		engine:        engine,
		cache:         c,
		rdb:           rdb,
		log:           log,
	}
}

func summaryCacheKey(userID string) string { return "scores:summary:" + userID }
func batchLockKey(userID string) string    { return "scores:run:" + userID }

// CalculateAllForUser scores every active opportunity against the user's
// profile. A missing or incomplete profile is a structured "no_profile"
// result, not an error. One bad opportunity is logged and recorded, never
// fatal. All upserts land in a single commit at the end of the loop;
// re-running after a crash is safe because scoring is deterministic.
func (s *scoreService) CalculateAllForUser(ctx context.Context, userID string) (*BatchSummary, error) {
	const op = "ScoreService.CalculateAllForUser"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	// Best-effort dedup between the HTTP trigger and the cron job. Two runs
	// racing is still safe (last writer wins on the upsert), just wasteful.
	if s.rdb != nil {
		ok, err := s.rdb.SetNX(ctx, batchLockKey(userID), "1", batchLockTTL).Result()
		if err == nil && !ok {
			return nil, utils.E(utils.CodeConflict, op, "scoring already running for this user", nil)
		}
		defer s.rdb.Del(context.WithoutCancel(ctx), batchLockKey(userID))
	}

	profile, err := s.companies.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return &BatchSummary{Status: "error", Reason: "no_profile"}, nil
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}
	if !profile.OnboardingComplete {
		return &BatchSummary{Status: "error", Reason: "no_profile"}, nil
	}

	naics, err := s.companies.ListNAICS(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load naics codes", err)
	}
	certs, err := s.companies.ListCertifications(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load certifications", err)
	}

	var capKeywords []string
	cs, err := s.companies.LatestCapabilityStatement(ctx, userID)
	switch {
	case err == nil:
		capKeywords = cs.Keywords
	case errors.Is(err, utils.ErrNotFound):
		// Scoring degrades to the neutral keyword default.
	default:
		return nil, utils.E(utils.CodeInternal, op, "failed to load capability statement", err)
	}

	opportunities, err := s.opportunities.ListActive(ctx, 0, 0)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list opportunities", err)
	}

	summary := &BatchSummary{Status: "ok"}
	now := time.Now().UTC()
	rows := make([]models.OpportunityScore, 0, len(opportunities))

	for i := range opportunities {
		opp := &opportunities[i]

		row, scoreErr := s.scoreOne(opp, profile, naics, certs, capKeywords, now)
		if scoreErr != nil {
			s.log.WithFields(logrus.Fields{
				"user_id":   userID,
				"notice_id": opp.NoticeID,
			}).WithError(scoreErr).Warn("scoring failed for opportunity")
			summary.Errors = append(summary.Errors, BatchError{
				NoticeID: opp.NoticeID,
				Message:  scoreErr.Error(),
			})
			continue
		}

		rows = append(rows, *row)
		summary.Scored++
		switch row.Bracket() {
		case "high":
			summary.High++
		case "medium":
			summary.Medium++
		default:
			summary.Low++
		}
	}

	// Single commit for the whole run.
	if err := s.scores.UpsertBatch(ctx, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist scores", err)
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, summaryCacheKey(userID))
		_ = s.cache.SetJSON(ctx, summaryCacheKey(userID), summary, summaryCacheTTL)
	}

	return summary, nil
}

// scoreOne wraps a single engine pass so a panic on malformed data is
// contained to that opportunity.
func (s *scoreService) scoreOne(
	opp *models.Opportunity,
	profile *models.CompanyProfile,
	naics []models.CompanyNAICS,
	certs []models.CompanyCertification,
	capKeywords []string,
	now time.Time,
) (row *models.OpportunityScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			row, err = nil, fmt.Errorf("panic while scoring: %v", r)
		}
	}()

	if opp.ID == "" {
		return nil, fmt.Errorf("opportunity %q has no id", opp.NoticeID)
	}

	res := s.engine.Score(scoring.Inputs{
		Opportunity:        opp,
		Profile:            profile,
		NAICS:              naics,
		Certifications:     certs,
		CapabilityKeywords: capKeywords,
	})

	return &models.OpportunityScore{
		ID:            uuid.NewString(),
		UserID:        profile.UserID,
		OpportunityID: opp.ID,

		OverallScore:      res.Overall,
		CapabilityScore:   res.Dimensions.Capability,
		EligibilityScore:  res.Dimensions.Eligibility,
		ScaleScore:        res.Dimensions.Scale,
		ClearanceScore:    res.Dimensions.Clearance,
		ContractTypeScore: res.Dimensions.ContractType,
		TimelineScore:     res.Dimensions.Timeline,

		CapabilityBreakdown:   toJSON(res.Breakdowns.Capability),
		EligibilityBreakdown:  toJSON(res.Breakdowns.Eligibility),
		ScaleBreakdown:        toJSON(res.Breakdowns.Scale),
		ClearanceBreakdown:    toJSON(res.Breakdowns.Clearance),
		ContractTypeBreakdown: toJSON(res.Breakdowns.ContractType),
		TimelineBreakdown:     toJSON(res.Breakdowns.Timeline),

		IsStale:      false,
		CalculatedAt: now,
	}, nil
}

func toJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON(`{}`)
	}
	return datatypes.JSON(b)
}

func (s *scoreService) ListForUser(ctx context.Context, userID string, minScore int) ([]models.OpportunityScore, error) {
	const op = "ScoreService.ListForUser"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	out, err := s.scores.ListByUser(ctx, userID, minScore)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list scores", err)
	}
	return out, nil
}

func (s *scoreService) GetOne(ctx context.Context, userID, opportunityID string) (*models.OpportunityScore, error) {
	const op = "ScoreService.GetOne"

	if userID == "" || opportunityID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and opportunity_id are required", nil)
	}
	row, err := s.scores.GetByUserAndOpportunity(ctx, userID, opportunityID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "score not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get score", err)
	}
	return row, nil
}

// Summary serves the cached result of the last batch run, falling back to a
// recount from the score table on a cache miss.
func (s *scoreService) Summary(ctx context.Context, userID string) (*BatchSummary, error) {
	const op = "ScoreService.Summary"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	if s.cache != nil {
		var cached BatchSummary
		if hit, err := s.cache.GetJSON(ctx, summaryCacheKey(userID), &cached); err == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.scores.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list scores", err)
	}

	summary := &BatchSummary{Status: "ok", Scored: len(rows)}
	for _, r := range rows {
		switch r.Bracket() {
		case "high":
			summary.High++
		case "medium":
			summary.Medium++
		default:
			summary.Low++
		}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, summaryCacheKey(userID), summary, summaryCacheTTL)
	}
	return summary, nil
}
