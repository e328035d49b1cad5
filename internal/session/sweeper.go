package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweepable is a collection whose idle members can be expired in bulk.
type Sweepable interface {
	Name() string
	Sweep(now time.Time) int
	Len() int
}

// Sweeper periodically expires idle members of its targets using robfig/cron.
type Sweeper struct {
	cron     *cron.Cron
	log      *zap.Logger
	interval time.Duration
	targets  []Sweepable
	onSwept  func(name string, removed, remaining int)

	mu      sync.Mutex
	running bool
}

// NewSweeper creates a sweeper that visits targets every interval once started.
func NewSweeper(log *zap.Logger, interval time.Duration, targets ...Sweepable) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{
		cron:     cron.New(),
		log:      log.Named("sweeper"),
		interval: interval,
		targets:  targets,
	}
}

// OnSwept registers a hook invoked after each target is swept. Must be set before Start.
func (s *Sweeper) OnSwept(fn func(name string, removed, remaining int)) {
	s.onSwept = fn
}

// Start schedules the sweep and begins running it in the background.
func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", s.interval)
	}

	if _, err := s.cron.AddFunc("@every "+s.interval.String(), func() {
		s.RunOnce(time.Now())
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.log.Info("sweeper started", zap.Duration("interval", s.interval), zap.Int("targets", len(s.targets)))
	return nil
}

// Stop halts the schedule and waits for a running sweep, bounded by ctx.
func (s *Sweeper) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.log.Info("sweeper stopped")
	case <-ctx.Done():
		s.log.Warn("sweeper stop timeout")
	}
	s.running = false
}

// RunOnce sweeps every target against now.
func (s *Sweeper) RunOnce(now time.Time) {
	for _, t := range s.targets {
		removed := t.Sweep(now)
		remaining := t.Len()
		if removed > 0 {
			s.log.Debug("swept idle entries",
				zap.String("target", t.Name()),
				zap.Int("removed", removed),
				zap.Int("remaining", remaining))
		}
		if s.onSwept != nil {
			s.onSwept(t.Name(), removed, remaining)
		}
	}
}
