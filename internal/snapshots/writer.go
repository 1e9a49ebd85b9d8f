package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/draft"
)

const defaultRetentionDays = 30

// ErrDraftIncomplete is returned when asked to persist an unfinished draft.
var ErrDraftIncomplete = errors.New("draft is not complete")

// Writer persists draft results and the manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time

	mu sync.Mutex
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDraftResults writes the final standings of a completed draft to
// {base}/drafts/{id}.json and records it in the manifest. Rewriting
// identical content leaves the file untouched.
func (w *Writer) WriteDraftResults(res draft.Results) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if err := validateDraftID(res.DraftID); err != nil {
		return err
	}
	if !res.Complete {
		return ErrDraftIncomplete
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := DraftSnapshotPath(w.basePath, res.DraftID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmp, target); err != nil {
			return err
		}
	}

	completedAt := w.now().UTC()
	if res.CompletedAt != nil {
		completedAt = res.CompletedAt.UTC()
	}
	return w.updateManifest(ManifestEntry{
		DraftID:     res.DraftID,
		Pool:        res.Pool,
		UserTeam:    res.User.TeamName,
		UserScore:   res.User.Evaluation.Score,
		CompletedAt: completedAt,
	})
}

// Prune removes snapshots that completed before the retention window and
// returns how many were dropped.
func (w *Writer) Prune() (int, error) {
	if w == nil {
		return 0, fmt.Errorf("snapshot writer not configured")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)
	removed := w.pruneExpired(&m)
	if removed == 0 {
		return 0, nil
	}
	return removed, writeManifest(w.basePath, m)
}

func (w *Writer) updateManifest(entry ManifestEntry) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)
	m.upsert(entry)
	w.pruneExpired(&m)
	m.Retention.DraftsDays = w.retentionDays
	m.Drafts.LastWritten = w.now().UTC()
	return writeManifest(w.basePath, m)
}

func (w *Writer) pruneExpired(m *Manifest) int {
	cutoff := w.now().UTC().AddDate(0, 0, -w.retentionDays)
	keep := m.Drafts.Entries[:0]
	removed := 0
	for _, e := range m.Drafts.Entries {
		if e.CompletedAt.Before(cutoff) {
			_ = os.Remove(DraftSnapshotPath(w.basePath, e.DraftID))
			removed++
			continue
		}
		keep = append(keep, e)
	}
	m.Drafts.Entries = keep
	return removed
}
