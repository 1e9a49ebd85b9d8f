// Package sweeper evicts finished and abandoned draft sessions from memory and
// prunes expired result snapshots on an interval.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
)

const (
	defaultInterval  = 5 * time.Minute
	maxReadyFailures = 3
	fieldEvicted     = "evicted"
	fieldPruned      = "pruned"
	fieldIntervalS   = "interval_s"
)

// SessionStore is the subset of the session store the sweeper needs.
type SessionStore interface {
	ExpiredSessions(completedBefore, createdBefore time.Time) []string
	DeleteSession(id string)
}

// Pruner removes result snapshots past their retention window.
type Pruner interface {
	Prune() (int, error)
}

// Config controls how often the sweeper runs and what it considers expired.
// A zero TTL disables that kind of eviction.
type Config struct {
	Interval     time.Duration
	CompletedTTL time.Duration
	AbandonedTTL time.Duration
}

// Result summarizes one sweep.
type Result struct {
	Evicted int
	Pruned  int
}

// Sweeper runs cleanup passes until its context is cancelled or Stop is called.
type Sweeper struct {
	sessions SessionStore
	pruner   Pruner
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	sweepMu  sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the sweep loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastResult          Result
}

// IsReady reports whether the sweeper is not failing repeatedly.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < maxReadyFailures
}

// New constructs a Sweeper. pruner, logger and recorder may be nil.
func New(sessions SessionStore, pruner Pruner, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return &Sweeper{
		sessions: sessions,
		pruner:   pruner,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins sweeping. The first pass runs immediately.
func (s *Sweeper) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.cfg.Interval)

	go func() {
		logging.Info(s.logger, "sweeper started", fieldIntervalS, int64(s.cfg.Interval.Seconds()))
		_, _ = s.SweepOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				s.stopTicker()
				logging.Info(s.logger, "sweeper stopped")
				return
			case <-s.done:
				s.stopTicker()
				logging.Info(s.logger, "sweeper stopped")
				return
			case <-s.ticker.C:
				_, _ = s.SweepOnce(ctx)
			}
		}
	}()
}

// Stop halts the sweep loop. It is safe to call more than once.
func (s *Sweeper) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
	})
	return nil
}

// SweepOnce runs a single pass: evict expired sessions, then prune snapshots.
// Concurrent callers are serialized.
func (s *Sweeper) SweepOnce(ctx context.Context) (Result, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	start := s.now()
	s.recordAttempt(start)

	var res Result
	if err := ctx.Err(); err != nil {
		s.recordFailure(err, start)
		return res, err
	}

	var completedBefore, createdBefore time.Time
	if s.cfg.CompletedTTL > 0 {
		completedBefore = start.Add(-s.cfg.CompletedTTL)
	}
	if s.cfg.AbandonedTTL > 0 {
		createdBefore = start.Add(-s.cfg.AbandonedTTL)
	}
	if !completedBefore.IsZero() || !createdBefore.IsZero() {
		for _, id := range s.sessions.ExpiredSessions(completedBefore, createdBefore) {
			s.sessions.DeleteSession(id)
			res.Evicted++
		}
	}

	var err error
	if s.pruner != nil {
		res.Pruned, err = s.pruner.Prune()
	}
	s.metrics.RecordSweep(res.Evicted, res.Pruned, err)

	if err != nil {
		logging.Error(s.logger, "snapshot prune failed", err, fieldEvicted, res.Evicted)
		s.recordFailure(err, start)
		return res, err
	}

	s.recordSuccess(start, res)
	if res.Evicted > 0 || res.Pruned > 0 {
		logging.Info(s.logger, "sweep finished",
			fieldEvicted, res.Evicted,
			fieldPruned, res.Pruned,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
	}
	return res, nil
}

func (s *Sweeper) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Sweeper) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Sweeper) recordSuccess(at time.Time, res Result) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
	s.status.LastResult = res
}

func (s *Sweeper) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the sweeper's recent health.
func (s *Sweeper) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
