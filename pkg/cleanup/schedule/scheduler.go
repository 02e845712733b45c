package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"calypso-hq/sweeper/pkg/cleanup"
)

// Scheduler runs cleanup passes over a set of targets on a cron schedule
// (e.g. daily at 3 AM). Each firing sweeps every target sequentially.
type Scheduler struct {
	spec    string
	targets []*cleanup.Config
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool

	// OnResult, when set, is invoked after each target's pass with the pass
	// result and error. Used to feed metrics.
	OnResult func(*cleanup.Result, error)
}

// NewScheduler creates a scheduler for the given cron spec and targets.
func NewScheduler(spec string, targets []*cleanup.Config) *Scheduler {
	return &Scheduler{
		spec:    spec,
		targets: targets,
		cron:    cron.New(),
		logger:  slog.Default().With("component", "cleanup.scheduler"),
	}
}

// Start begins scheduled sweeping based on the cron expression.
//
// Common cron expressions:
//   - "0 3 * * *"    - Daily at 3 AM
//   - "0 */6 * * *"  - Every 6 hours
//   - "0 0 * * 0"    - Weekly on Sunday at midnight
//
// If the spec is empty, the scheduler does nothing. The scheduler stops
// itself when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == "" {
		s.logger.Info("sweep schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.spec, err)
	}

	if _, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("sweep scheduler started",
		"schedule", s.spec,
		"targets", len(s.targets),
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runSweep executes one pass over every target.
func (s *Scheduler) runSweep(ctx context.Context) {
	s.logger.Info("starting scheduled sweep", "targets", len(s.targets))

	for _, target := range s.targets {
		result, err := cleanup.NewPruner(target).Prune(ctx)
		if err != nil {
			s.logger.Error("scheduled sweep failed",
				"root", target.Root,
				"error", err,
			)
		} else if result.Removed > 0 {
			s.logger.Info("scheduled sweep completed",
				"root", target.Root,
				"removed", result.Removed,
			)
		} else {
			s.logger.Debug("scheduled sweep completed, nothing removed",
				"root", target.Root,
			)
		}

		if s.OnResult != nil {
			s.OnResult(result, err)
		}
	}
}

// Stop stops the scheduler and waits for any running sweep to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.logger.Info("sweep scheduler stopped")
	}
}

// IsRunning reports whether the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled sweep time, or nil if nothing is
// scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
