package scheduler

import (
	"context"

	"go-ngo/internal/features/cause"
	"go-ngo/internal/features/user"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler owns the recurring maintenance jobs: the yearly reset of
// organization job-post counters and the nightly sweep that deactivates
// causes past their end date.
type Scheduler struct {
	cron         *cron.Cron
	logger       *zap.Logger
	userRepo     user.UserRepository
	causeService cause.CauseService
}

func NewScheduler(logger *zap.Logger, userRepo user.UserRepository, causeService cause.CauseService) *Scheduler {
	return &Scheduler{
		logger:       logger,
		userRepo:     userRepo,
		causeService: causeService,
	}
}

func (s *Scheduler) Start() error {
	s.cron = cron.New()

	// Midnight on Jan 1: every organization starts the year with a fresh
	// job-posting quota.
	if _, err := s.cron.AddFunc("0 0 1 1 *", s.resetJobPostCounters); err != nil {
		return err
	}

	// 00:30 daily: close out causes whose end date has passed.
	if _, err := s.cron.AddFunc("30 0 * * *", s.deactivateEndedCauses); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() error {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	s.logger.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) resetJobPostCounters() {
	count, err := s.userRepo.ResetJobPostCounters(context.Background())
	if err != nil {
		s.logger.Error("failed to reset job post counters", zap.Error(err))
		return
	}
	s.logger.Info("reset yearly job post counters", zap.Int64("accounts", count))
}

func (s *Scheduler) deactivateEndedCauses() {
	count, err := s.causeService.DeactivateEnded(context.Background())
	if err != nil {
		s.logger.Error("failed to deactivate ended causes", zap.Error(err))
		return
	}
	if count > 0 {
		s.logger.Info("deactivated ended causes", zap.Int64("causes", count))
	}
}
