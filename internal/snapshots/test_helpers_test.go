package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
)

func completedResults(completedAt time.Time) draft.Results {
	at := completedAt.UTC()
	return draft.Results{
		DraftID:     uuid.NewString(),
		Pool:        "current",
		Rounds:      5,
		Complete:    true,
		CompletedAt: &at,
		User: draft.TeamResult{
			TeamID:     "team-1",
			TeamName:   "Your Team",
			DraftOrder: 1,
			IsUser:     true,
			Evaluation: evaluation.Result{Score: 88, Feedback: evaluation.FeedbackForScore(88)},
		},
		AI: []draft.TeamResult{
			{TeamID: "team-2", TeamName: "Utah Jazz", DraftOrder: 2, Evaluation: evaluation.Result{Score: 70}},
		},
	}
}

func writeResults(t *testing.T, w *Writer, res draft.Results) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for draft %s", res.DraftID)
	}
	if err := w.WriteDraftResults(res); err != nil {
		t.Fatalf("failed to write draft %s: %v", res.DraftID, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, draftID string) {
	t.Helper()
	if _, err := os.Stat(DraftSnapshotPath(w.BasePath(), draftID)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", draftID, err)
	}
}

func requireSnapshotMissing(t *testing.T, w *Writer, draftID string) {
	t.Helper()
	if _, err := os.Stat(DraftSnapshotPath(w.BasePath(), draftID)); err == nil {
		t.Fatalf("expected snapshot for %s to be absent", draftID)
	}
}
