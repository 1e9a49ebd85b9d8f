package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/nba-draft-service/internal/draft"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadDraftResults(draftID string) (draft.Results, error)
	ListDrafts() ([]ManifestEntry, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDraftResults reads the results snapshot for draftID.
// Files are expected at {basePath}/drafts/{id}.json.
func (s *FSStore) LoadDraftResults(draftID string) (draft.Results, error) {
	if s == nil {
		return draft.Results{}, errors.New("snapshot store not configured")
	}
	if err := validateDraftID(draftID); err != nil {
		return draft.Results{}, err
	}
	var payload draft.Results
	if err := s.decodeFile(DraftSnapshotPath(s.basePath, draftID), &payload); err != nil {
		return draft.Results{}, err
	}
	if payload.DraftID == "" {
		payload.DraftID = draftID
	}
	return payload, nil
}

// ListDrafts returns the manifest entries, most recently completed first.
// A missing manifest yields an empty list.
func (s *FSStore) ListDrafts() ([]ManifestEntry, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(filepath.Join(s.basePath, manifestFile), defaultRetentionDays)
	if errors.Is(err, os.ErrNotExist) {
		return []ManifestEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	return m.Drafts.Entries, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
