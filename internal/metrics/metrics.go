package metrics

import (
	"sync"
	"time"
)

type poolStats struct {
	loads   int
	kept    int
	dropped int
}

// Recorder captures lightweight, in-memory metrics about pool loads, picks and
// evaluations, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu              sync.Mutex
	pools           map[string]*poolStats
	picks           map[string]int
	requests        map[string]int
	evaluations     int
	lastScore       int
	heightFallbacks int
	draftsCompleted int
	sessionsEvicted int
	snapshotsPruned int
	sweepFailures   int
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		pools:    make(map[string]*poolStats),
		picks:    make(map[string]int),
		requests: make(map[string]int),
		otel:     otel,
	}
}

// RecordPoolLoad tracks a pool normalization and how many raw records were dropped.
func (r *Recorder) RecordPoolLoad(pool string, kept, dropped int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.pools[pool]
	if !ok {
		stats = &poolStats{}
		r.pools[pool] = stats
	}
	stats.loads++
	stats.kept = kept
	stats.dropped = dropped
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPoolLoad(pool, kept, dropped)
	}
}

// RecordHeightFallback counts heights that could not be parsed.
func (r *Recorder) RecordHeightFallback() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.heightFallbacks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHeightFallback()
	}
}

// RecordPick counts a draft pick by kind (user or auto).
func (r *Recorder) RecordPick(kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.picks[kind]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPick(kind)
	}
}

// RecordDraftCompleted counts drafts that reached their last pick.
func (r *Recorder) RecordDraftCompleted() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.draftsCompleted++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDraftCompleted()
	}
}

// RecordEvaluation tracks a roster evaluation and its final score.
func (r *Recorder) RecordEvaluation(score int, rosterSize int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.evaluations++
	r.lastScore = score
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEvaluation(score, rosterSize, duration)
	}
}

// RecordSweep tracks one cleanup pass over sessions and snapshots.
func (r *Recorder) RecordSweep(evicted, pruned int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.sessionsEvicted += evicted
	r.snapshotsPruned += pruned
	if err != nil {
		r.sweepFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSweep(evicted, pruned, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics. In memory, requests are
// counted per "METHOD path".
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests[method+" "+path]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot is a copy of the in-memory counters.
type Snapshot struct {
	Evaluations     int
	LastScore       int
	HeightFallbacks int
	DraftsCompleted int
	SessionsEvicted int
	SnapshotsPruned int
	SweepFailures   int
	Picks           map[string]int
	Requests        map[string]int
}

// PoolSnapshot is a copy of the counters for one pool.
type PoolSnapshot struct {
	Loads   int
	Kept    int
	Dropped int
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{Picks: map[string]int{}, Requests: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	picks := make(map[string]int, len(r.picks))
	for k, v := range r.picks {
		picks[k] = v
	}
	requests := make(map[string]int, len(r.requests))
	for k, v := range r.requests {
		requests[k] = v
	}
	return Snapshot{
		Evaluations:     r.evaluations,
		LastScore:       r.lastScore,
		HeightFallbacks: r.heightFallbacks,
		DraftsCompleted: r.draftsCompleted,
		SessionsEvicted: r.sessionsEvicted,
		SnapshotsPruned: r.snapshotsPruned,
		SweepFailures:   r.sweepFailures,
		Picks:           picks,
		Requests:        requests,
	}
}

// Pool returns the counters recorded for a pool selector.
func (r *Recorder) Pool(pool string) PoolSnapshot {
	if r == nil {
		return PoolSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.pools[pool]; ok && stats != nil {
		return PoolSnapshot{Loads: stats.loads, Kept: stats.kept, Dropped: stats.dropped}
	}
	return PoolSnapshot{}
}
