package snapshots

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFSStoreLoadDraftResults(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)
	res := completedResults(time.Now())
	writeResults(t, w, res)

	store := NewFSStore(dir)
	got, err := store.LoadDraftResults(res.DraftID)
	if err != nil {
		t.Fatalf("failed to load draft: %v", err)
	}
	if got.DraftID != res.DraftID || got.User.Evaluation.Score != 88 || len(got.AI) != 1 {
		t.Fatalf("unexpected draft snapshot: %+v", got)
	}
}

func TestFSStoreErrors(t *testing.T) {
	store := NewFSStore(t.TempDir())
	missing := completedResults(time.Now()).DraftID
	if _, err := store.LoadDraftResults(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing snapshot, got %v", err)
	}
	if _, err := store.LoadDraftResults(""); !errors.Is(err, ErrInvalidDraftID) {
		t.Fatalf("expected error for empty id")
	}
	var nilStore *FSStore
	if _, err := nilStore.LoadDraftResults(missing); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestFSStoreDecodeError(t *testing.T) {
	dir := t.TempDir()
	id := completedResults(time.Now()).DraftID
	path := DraftSnapshotPath(dir, id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{bad"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFSStore(dir).LoadDraftResults(id); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFSStoreListDrafts(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir)

	entries, err := store.ListDrafts()
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected empty list without manifest, got %v (%v)", entries, err)
	}

	w := NewWriter(dir, 10)
	older := completedResults(time.Now().Add(-time.Hour))
	newer := completedResults(time.Now())
	writeResults(t, w, older)
	writeResults(t, w, newer)

	entries, err = store.ListDrafts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].DraftID != newer.DraftID {
		t.Fatalf("expected newest first, got %+v", entries)
	}
}
