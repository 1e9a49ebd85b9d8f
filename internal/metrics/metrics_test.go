package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksPoolLoads(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPoolLoad("current", 10, 2)
	rec.RecordPoolLoad("current", 11, 1)

	got := rec.Pool("current")
	if got.Loads != 2 || got.Kept != 11 || got.Dropped != 1 {
		t.Fatalf("unexpected pool snapshot %+v", got)
	}
	if empty := rec.Pool("allTime"); empty.Loads != 0 {
		t.Fatalf("expected empty snapshot for unknown pool, got %+v", empty)
	}
}

func TestRecorderTracksEvaluationsAndPicks(t *testing.T) {
	rec := NewRecorder()
	rec.RecordEvaluation(81, 5, time.Millisecond)
	rec.RecordEvaluation(64, 5, time.Millisecond)
	rec.RecordPick(PickUser)
	rec.RecordPick(PickAuto)
	rec.RecordPick(PickAuto)
	rec.RecordHeightFallback()
	rec.RecordDraftCompleted()

	snap := rec.Snapshot()
	if snap.Evaluations != 2 || snap.LastScore != 64 {
		t.Fatalf("unexpected evaluation counters %+v", snap)
	}
	if snap.Picks[PickUser] != 1 || snap.Picks[PickAuto] != 2 {
		t.Fatalf("unexpected pick counters %+v", snap.Picks)
	}
	if snap.HeightFallbacks != 1 || snap.DraftsCompleted != 1 {
		t.Fatalf("unexpected fallback/draft counters %+v", snap)
	}
}

func TestRecorderTracksSweeps(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSweep(3, 1, nil)
	rec.RecordSweep(0, 2, errors.New("prune failed"))

	snap := rec.Snapshot()
	if snap.SessionsEvicted != 3 || snap.SnapshotsPruned != 3 || snap.SweepFailures != 1 {
		t.Fatalf("unexpected sweep counters %+v", snap)
	}
}

func TestRecorderCountsHTTPRequests(t *testing.T) {
	rec := NewRecorder()
	rec.RecordHTTPRequest("GET", "/players", 200, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/players", 400, time.Millisecond)
	rec.RecordHTTPRequest("POST", "/drafts", 201, time.Millisecond)

	got := rec.Snapshot().Requests
	if got["GET /players"] != 2 || got["POST /drafts"] != 1 {
		t.Fatalf("unexpected request counters %v", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordPoolLoad("current", 1, 0)
	rec.RecordEvaluation(1, 1, 0)
	rec.RecordPick(PickAuto)
	rec.RecordHeightFallback()
	rec.RecordDraftCompleted()
	rec.RecordSweep(1, 1, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, 0)
	if snap := rec.Snapshot(); snap.Evaluations != 0 || snap.Picks == nil {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
