package pool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileDecodesStringAndNumberRatings(t *testing.T) {
	records, skipped, err := LoadFile(filepath.Join("testdata", "current.json"))
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Zero(t, skipped)

	assert.Equal(t, RawRating("81"), records[0].OverallAttribute)
	assert.Equal(t, RawRating("88"), records[1].OverallAttribute)
	assert.False(t, records[3].OverallAttribute.Present())

	res := NewNormalizer(nil, nil).Normalize(records)
	assert.Equal(t, 3, res.Dropped)
	assert.Equal(t, []string{"t-2", "t-1"}, ids(res.Players))
	assert.Equal(t, 84, res.Players[0].HeightInches)
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := LoadFile(path)
	assert.Error(t, err)

	_, err = LoadSource(path, "", nil)
	assert.Error(t, err)
}

func TestLoadFileSkipsMistypedRecords(t *testing.T) {
	body := `[
		{"id": 1, "name": "Numeric Id", "primaryPosition": "C", "overallAttribute": 80},
		{"id": "s-2", "name": "String Layup", "primaryPosition": "SF", "overallAttribute": "81", "layup": "85"},
		{"id": "s-3", "name": "Float Layup", "primaryPosition": "SF", "overallAttribute": "82", "layup": 85.5},
		{"id": "s-4", "name": "Bool Rating", "primaryPosition": "SF", "overallAttribute": true},
		{"id": {"nested": true}, "name": "Object Id", "overallAttribute": 70},
		{"id": "s-6", "name": "Fine", "primaryPosition": "PG", "overallAttribute": 90}
	]`
	path := filepath.Join(t.TempDir(), "mixed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	records, skipped, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "s-6", records[1].ID)

	src, err := LoadSource(path, "", nil)
	require.NoError(t, err)
	assert.Len(t, src.Current, 2)
}

func TestDecodeRecordsNormalizesNumericRatings(t *testing.T) {
	body := `[
		{"id": "a", "name": "A", "overallAttribute": 1e2},
		{"id": "b", "name": "B", "overallAttribute": 87.9},
		{"id": "c", "name": "C", "overallAttribute": -5},
		{"id": "d", "name": "D", "overallAttribute": null}
	]`
	records, skipped, err := DecodeRecords(strings.NewReader(body))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 4)
	assert.Equal(t, RawRating("100"), records[0].OverallAttribute)
	assert.Equal(t, RawRating("87"), records[1].OverallAttribute)
	assert.Equal(t, RawRating("-5"), records[2].OverallAttribute)
	assert.False(t, records[3].OverallAttribute.Present())

	p, err := Normalize(records[0])
	require.NoError(t, err)
	assert.Equal(t, 100, p.OverallRating)
}

func TestLoadSourceFallsBackToFixtures(t *testing.T) {
	src, err := LoadSource("", filepath.Join(t.TempDir(), "missing.json"), nil)
	require.NoError(t, err)
	assert.Len(t, src.Current, len(currentRows))
	assert.Len(t, src.AllTime, len(allTimeRows))
}

func TestLoadSourceReadsFiles(t *testing.T) {
	src, err := LoadSource(filepath.Join("testdata", "current.json"), "", nil)
	require.NoError(t, err)
	assert.Len(t, src.Current, 5)
}

func TestFixtureRecordsAreValid(t *testing.T) {
	for _, raw := range append(FixtureCurrent(), FixtureAllTime()...) {
		p, err := Normalize(raw)
		require.NoError(t, err, raw.Name)
		assert.True(t, p.PrimaryPosition.Valid(), raw.Name)
		assert.NotEqual(t, 0, p.HeightInches, raw.Name)
		if p.HasSecondary() {
			assert.True(t, p.SecondaryPosition.Valid(), raw.Name)
		}
	}
}
