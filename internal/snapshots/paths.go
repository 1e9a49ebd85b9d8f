package snapshots

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

const draftsDir = "drafts"

// ErrInvalidDraftID is returned for IDs that are not session UUIDs. It keeps
// arbitrary request input out of filesystem paths.
var ErrInvalidDraftID = errors.New("invalid draft id")

// DraftSnapshotPath builds the path to a draft results snapshot.
func DraftSnapshotPath(basePath, draftID string) string {
	return filepath.Join(basePath, draftsDir, fmt.Sprintf("%s.json", draftID))
}

func validateDraftID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDraftID)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDraftID, id)
	}
	return nil
}
