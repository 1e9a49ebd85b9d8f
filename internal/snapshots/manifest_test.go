package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadManifestReturnsDefaultOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifestFile)
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := readManifest(path, 5)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if m.Retention.DraftsDays != 5 {
		t.Fatalf("expected retention fallback to provided, got %d", m.Retention.DraftsDays)
	}
}

func TestWriteManifestFailsWhenPathMissing(t *testing.T) {
	if err := writeManifest(filepath.Join("does-not-exist", "missing"), defaultManifest(3)); err == nil {
		t.Fatalf("expected error when base path missing")
	}
}

func TestManifestUpsertReplacesEntry(t *testing.T) {
	m := defaultManifest(3)
	m.upsert(ManifestEntry{DraftID: "a", UserScore: 1})
	m.upsert(ManifestEntry{DraftID: "b", UserScore: 2})
	m.upsert(ManifestEntry{DraftID: "a", UserScore: 9, CompletedAt: time.Now()})

	if len(m.Drafts.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m.Drafts.Entries))
	}
	if m.Drafts.Entries[0].UserScore != 9 {
		t.Fatalf("expected entry a to be replaced, got %+v", m.Drafts.Entries[0])
	}
}
