package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// Runner is one reconciliation pass.
type Runner interface {
	Run(ctx context.Context) (*domain.RunReport, error)
}

// Scheduler repeats reconciliation runs on a fixed interval, for the
// daily-monitor deployment mode. One-shot invocations bypass it.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if _, err := s.runner.Run(ctx); err != nil {
		s.logger.Error("reconciliation run failed", "error", err)
	}
}
