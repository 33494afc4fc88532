package scheduler

import (
	"context"
	"time"

	"jobtrail-backend/internal/priority/usecase"

	"go.uber.org/zap"
)

// ScoringScheduler drives the priority scoring batch on a fixed interval.
type ScoringScheduler struct {
	scoring  usecase.ScoringUsecase
	interval time.Duration
	log      *zap.Logger
	stopChan chan struct{}
}

func NewScoringScheduler(scoring usecase.ScoringUsecase, interval time.Duration, log *zap.Logger) *ScoringScheduler {
	return &ScoringScheduler{
		scoring:  scoring,
		interval: interval,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop. A non-positive interval disables it.
func (s *ScoringScheduler) Start() {
	if s.interval <= 0 {
		s.log.Info("scoring scheduler disabled")
		return
	}

	s.log.Info("starting scoring scheduler", zap.Duration("interval", s.interval))

	go func() {
		// Run immediately on start
		s.runOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stopChan:
				s.log.Info("scoring scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *ScoringScheduler) Stop() {
	close(s.stopChan)
}

func (s *ScoringScheduler) runOnce() {
	if _, err := s.scoring.Run(context.Background()); err != nil {
		s.log.Error("scoring run failed", zap.Error(err))
	}
}
