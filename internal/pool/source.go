package pool

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/preston-bernstein/nba-draft-service/internal/logging"
)

// Selector names a player pool.
type Selector string

const (
	SelectorCurrent  Selector = "current"
	SelectorAllTime  Selector = "allTime"
	SelectorCombined Selector = "combined"
)

// ParseSelector maps raw onto a known selector. Unknown values map to the
// all-time pool and report false; callers keep that fallback rather than
// treating it as an error.
func ParseSelector(raw string) (Selector, bool) {
	switch Selector(raw) {
	case SelectorCurrent, SelectorAllTime, SelectorCombined:
		return Selector(raw), true
	default:
		return SelectorAllTime, false
	}
}

// Source holds the two raw collections every pool is built from.
type Source struct {
	Current []RawPlayer
	AllTime []RawPlayer
}

// Select returns the raw records for sel. Combined is current followed by all-time.
func (s Source) Select(sel Selector) []RawPlayer {
	switch sel {
	case SelectorCurrent:
		return s.Current
	case SelectorCombined:
		out := make([]RawPlayer, 0, len(s.Current)+len(s.AllTime))
		out = append(out, s.Current...)
		return append(out, s.AllTime...)
	default:
		return s.AllTime
	}
}

// LoadFile decodes a JSON array of raw player records. Records that do not
// fit the schema are skipped and counted; only a file that is not a JSON
// array is an error.
func LoadFile(path string) ([]RawPlayer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	records, skipped, err := DecodeRecords(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, skipped, nil
}

// DecodeRecords reads a JSON array and decodes each element on its own, so
// one mistyped record costs only that record.
func DecodeRecords(r io.Reader) ([]RawPlayer, int, error) {
	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, 0, err
	}
	records := make([]RawPlayer, 0, len(items))
	skipped := 0
	for _, item := range items {
		var rec RawPlayer
		if err := json.Unmarshal(item, &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// LoadSource reads both collections from disk. An empty or missing path falls
// back to the built-in fixture collection; a file that exists but fails to
// decode is an error.
func LoadSource(currentPath, allTimePath string, logger *slog.Logger) (Source, error) {
	current, err := loadOrFixture(currentPath, FixtureCurrent, logger)
	if err != nil {
		return Source{}, err
	}
	allTime, err := loadOrFixture(allTimePath, FixtureAllTime, logger)
	if err != nil {
		return Source{}, err
	}
	return Source{Current: current, AllTime: allTime}, nil
}

func loadOrFixture(path string, fixture func() []RawPlayer, logger *slog.Logger) ([]RawPlayer, error) {
	if path == "" {
		return fixture(), nil
	}
	records, skipped, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Warn(logger, "player pool file not found, using fixture data", "file", path)
		return fixture(), nil
	}
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logging.Warn(logger, "skipped undecodable player records", "file", path, logging.FieldDropped, skipped)
	}
	logging.Info(logger, "loaded player pool file", "file", path, logging.FieldCount, len(records))
	return records, nil
}
