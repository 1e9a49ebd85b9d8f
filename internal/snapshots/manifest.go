package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const manifestFile = "manifest.json"

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Retention   Retention  `json:"retention"`
	Drafts      DraftsMeta `json:"drafts"`
}

type Retention struct {
	DraftsDays int `json:"draftsDays"`
}

type DraftsMeta struct {
	Entries     []ManifestEntry `json:"entries"`
	LastWritten time.Time       `json:"lastWritten"`
}

// ManifestEntry summarizes one persisted draft.
type ManifestEntry struct {
	DraftID     string    `json:"draftId"`
	Pool        string    `json:"pool"`
	UserTeam    string    `json:"userTeam"`
	UserScore   int       `json:"userScore"`
	CompletedAt time.Time `json:"completedAt"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			DraftsDays: retentionDays,
		},
		Drafts: DraftsMeta{
			Entries: []ManifestEntry{},
		},
	}
}

func readManifest(path string, retentionDays int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays), err
	}
	if m.Drafts.Entries == nil {
		m.Drafts.Entries = []ManifestEntry{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	sort.Slice(m.Drafts.Entries, func(i, j int) bool {
		return m.Drafts.Entries[i].CompletedAt.After(m.Drafts.Entries[j].CompletedAt)
	})
	path := filepath.Join(basePath, manifestFile)
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// upsert replaces the entry for e.DraftID or appends it.
func (m *Manifest) upsert(e ManifestEntry) {
	for i := range m.Drafts.Entries {
		if m.Drafts.Entries[i].DraftID == e.DraftID {
			m.Drafts.Entries[i] = e
			return
		}
	}
	m.Drafts.Entries = append(m.Drafts.Entries, e)
}
