package sweeper

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
	"github.com/preston-bernstein/nba-draft-service/internal/testutil"
)

type stubSessions struct {
	mu              sync.Mutex
	expired         []string
	deleted         []string
	completedBefore time.Time
	createdBefore   time.Time
	calls           atomic.Int32
}

func (s *stubSessions) ExpiredSessions(completedBefore, createdBefore time.Time) []string {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completedBefore = completedBefore
	s.createdBefore = createdBefore
	out := s.expired
	s.expired = nil
	return out
}

func (s *stubSessions) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
}

type stubPruner struct {
	pruned int
	err    error
}

func (p *stubPruner) Prune() (int, error) {
	return p.pruned, p.err
}

func TestSweepOnceEvictsAndPrunes(t *testing.T) {
	sessions := &stubSessions{expired: []string{"a", "b"}}
	rec := metrics.NewRecorder()
	s := New(sessions, &stubPruner{pruned: 4}, nil, rec, Config{
		Interval:     time.Minute,
		CompletedTTL: time.Hour,
		AbandonedTTL: 2 * time.Hour,
	})
	now := testutil.MustParseRFC3339("2024-03-01T12:00:00Z")
	s.now = testutil.NowAt(now)

	res, err := s.SweepOnce(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Evicted != 2 || res.Pruned != 4 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sessions.deleted) != 2 {
		t.Fatalf("expected both sessions deleted, got %v", sessions.deleted)
	}
	if !sessions.completedBefore.Equal(now.Add(-time.Hour)) || !sessions.createdBefore.Equal(now.Add(-2*time.Hour)) {
		t.Fatalf("unexpected cutoffs %s / %s", sessions.completedBefore, sessions.createdBefore)
	}

	snap := rec.Snapshot()
	if snap.SessionsEvicted != 2 || snap.SnapshotsPruned != 4 {
		t.Fatalf("unexpected sweep metrics %+v", snap)
	}
	status := s.Status()
	if !status.IsReady() || status.LastSuccess.IsZero() || status.LastResult != res {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestSweepOnceSkipsStoreWhenTTLsDisabled(t *testing.T) {
	sessions := &stubSessions{expired: []string{"a"}}
	s := New(sessions, nil, nil, nil, Config{})

	res, err := s.SweepOnce(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Evicted != 0 || sessions.calls.Load() != 0 {
		t.Fatalf("expected no eviction with zero TTLs, got %+v", res)
	}
}

func TestSweepOncePruneFailureTracksStatus(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	pruner := &stubPruner{err: errors.New("disk gone")}
	s := New(&stubSessions{}, pruner, logger, rec, Config{CompletedTTL: time.Hour})

	for i := 0; i < maxReadyFailures; i++ {
		if _, err := s.SweepOnce(context.Background()); err == nil {
			t.Fatalf("expected prune error")
		}
	}
	status := s.Status()
	if status.ConsecutiveFailures != maxReadyFailures || status.LastError != "disk gone" {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after repeated failures")
	}
	if rec.Snapshot().SweepFailures != maxReadyFailures {
		t.Fatalf("expected failures counted, got %+v", rec.Snapshot())
	}
	if !strings.Contains(buf.String(), "snapshot prune failed") {
		t.Fatalf("expected failure logged, got %q", buf.String())
	}

	pruner.err = nil
	if _, err := s.SweepOnce(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if s.Status().ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset")
	}
}

func TestSweepOnceCancelledContext(t *testing.T) {
	sessions := &stubSessions{expired: []string{"a"}}
	s := New(sessions, nil, nil, nil, Config{CompletedTTL: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.SweepOnce(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if len(sessions.deleted) != 0 {
		t.Fatalf("expected nothing deleted")
	}
}

func TestSweeperStartRunsInitialSweepAndStops(t *testing.T) {
	sessions := &stubSessions{expired: []string{"a"}}
	s := New(sessions, nil, nil, nil, Config{Interval: 5 * time.Millisecond, AbandonedTTL: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	s.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for sessions.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for sweeps")
		case <-time.After(time.Millisecond):
		}
	}

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	after := sessions.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if sessions.calls.Load() != after {
		t.Fatalf("expected no sweeps after stop")
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(&stubSessions{}, nil, nil, nil, Config{})
	if s.cfg.Interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, s.cfg.Interval)
	}
}
