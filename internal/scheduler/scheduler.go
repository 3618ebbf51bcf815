// Package scheduler wires up the cron job that recomputes stale scores.
// Profile edits mark scores stale instead of recomputing inline; this job is
// what eventually picks them up.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	pgrepo "github.com/fedscout/fedscout/internal/repositories/postgres"
	"github.com/fedscout/fedscout/internal/services"
)

type Scheduler struct {
	cron   *cron.Cron
	scores pgrepo.ScoreRepository
	svc    services.ScoreService
	log    *logrus.Logger
	spec   string // cron spec, e.g. "@every 24h"
}

func New(scores pgrepo.ScoreRepository, svc services.ScoreService, log *logrus.Logger, spec string) *Scheduler {
	if spec == "" {
		spec = "@every 24h"
	}
	return &Scheduler{
		cron:   cron.New(),
		scores: scores,
		svc:    svc,
		log:    log,
		spec:   spec,
	}
}

// Start registers the rescore job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRescore(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.WithField("spec", s.spec).Info("rescore cron started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("rescore cron stopped")
}

// runRescore re-runs the batch scorer for every user holding at least one
// stale score. Per-user failures are logged and skipped; the cycle always
// finishes.
func (s *Scheduler) runRescore(ctx context.Context) {
	userIDs, err := s.scores.ListUserIDsWithStale(ctx)
	if err != nil {
		s.log.WithError(err).Error("rescore: listing users with stale scores failed")
		return
	}
	if len(userIDs) == 0 {
		s.log.Debug("rescore: nothing stale")
		return
	}

	s.log.WithField("users", len(userIDs)).Info("rescore cycle started")
	for _, uid := range userIDs {
		summary, err := s.svc.CalculateAllForUser(ctx, uid)
		if err != nil {
			s.log.WithField("user_id", uid).WithError(err).Warn("rescore: batch failed")
			continue
		}
		s.log.WithFields(logrus.Fields{
			"user_id": uid,
			"scored":  summary.Scored,
			"errors":  len(summary.Errors),
		}).Info("rescore: batch finished")
	}
	s.log.Info("rescore cycle complete")
}
