package snapshots

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/testutil"
)

func TestWriterWritesSnapshotAndManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	res := completedResults(time.Now())
	writeResults(t, w, res)
	requireSnapshotExists(t, w, res.DraftID)

	m, err := readManifest(filepath.Join(dir, manifestFile), 10)
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	if len(m.Drafts.Entries) != 1 {
		t.Fatalf("expected 1 manifest entry, got %d", len(m.Drafts.Entries))
	}
	entry := m.Drafts.Entries[0]
	if entry.DraftID != res.DraftID || entry.UserScore != 88 || entry.UserTeam != "Your Team" {
		t.Fatalf("unexpected manifest entry %+v", entry)
	}
	if m.Retention.DraftsDays != 10 {
		t.Fatalf("expected retention 10, got %d", m.Retention.DraftsDays)
	}
}

func TestWriterSkipsIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)
	res := completedResults(time.Now())
	writeResults(t, w, res)

	path := DraftSnapshotPath(dir, res.DraftID)
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	writeResults(t, w, res)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Fatalf("expected identical rewrite to leave file untouched")
	}

	m, _ := readManifest(filepath.Join(dir, manifestFile), 10)
	if len(m.Drafts.Entries) != 1 {
		t.Fatalf("expected rewrite to keep a single manifest entry, got %d", len(m.Drafts.Entries))
	}
}

func TestWriterPrunesExpiredDrafts(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 1)

	old := completedResults(time.Now().AddDate(0, 0, -5))
	fresh := completedResults(time.Now())
	writeResults(t, w, old)
	writeResults(t, w, fresh)

	requireSnapshotMissing(t, w, old.DraftID)
	requireSnapshotExists(t, w, fresh.DraftID)
}

func TestWriterPruneReportsRemovals(t *testing.T) {
	dir := t.TempDir()
	clock := testutil.NewClock(time.Now())
	w := NewWriter(dir, 2)
	w.now = clock.Now
	res := completedResults(clock.Now())
	writeResults(t, w, res)

	removed, err := w.Prune()
	if err != nil || removed != 0 {
		t.Fatalf("expected nothing pruned, got %d (%v)", removed, err)
	}

	clock.Advance(3 * 24 * time.Hour)
	removed, err = w.Prune()
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 pruned draft, got %d", removed)
	}
	requireSnapshotMissing(t, w, res.DraftID)
}

func TestWriterRejectsBadInput(t *testing.T) {
	var w *Writer
	if err := w.WriteDraftResults(completedResults(time.Now())); err == nil {
		t.Fatalf("expected error for nil writer")
	}

	w = NewWriter(t.TempDir(), 1)
	res := completedResults(time.Now())
	res.DraftID = "../escape"
	if err := w.WriteDraftResults(res); !errors.Is(err, ErrInvalidDraftID) {
		t.Fatalf("expected ErrInvalidDraftID, got %v", err)
	}

	res = completedResults(time.Now())
	res.Complete = false
	if err := w.WriteDraftResults(res); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
}

func TestNewWriterDefaultsRetention(t *testing.T) {
	w := NewWriter(t.TempDir(), 0)
	if w.retentionDays != defaultRetentionDays {
		t.Fatalf("expected retention to default when non-positive provided")
	}
}

func TestBasePathExposesRoot(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 1)
	if w.BasePath() != base {
		t.Fatalf("expected base path %s, got %s", base, w.BasePath())
	}
}
