package geometry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prepmap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <defs><path id="clip" d="M0 0h1v1z"/></defs>
  <g>
    <path id="north" d="M0 0H100V50H0Z"/>
    <path d="M0 50H50V100H0Z"/>
    <path id="lake" d="M50 50H100V100H50Z"/>
    <path id="empty"/>
  </g>
</svg>`

const testRegions = `
keyed:
  - pathId: north
    id: NORTH
    name: North
  - pathId: lake
    id: ""
ordinal:
  - id: IGNORED
    name: Ignored
  - id: SOUTH_WEST
    name: South West
`

func TestParseSVG(t *testing.T) {
	sources, err := ParseSVG(strings.NewReader(testSVG))
	require.NoError(t, err)
	require.Len(t, sources, 3)

	assert.Equal(t, "north", sources[0].PathID)
	assert.Equal(t, "", sources[1].PathID)
	assert.Equal(t, "M0 50H50V100H0Z", sources[1].Path.D())
	assert.Equal(t, "lake", sources[2].PathID)
}

func TestParseSVG_Errors(t *testing.T) {
	_, err := ParseSVG(strings.NewReader(`<svg></svg>`))
	assert.Error(t, err)

	_, err = ParseSVG(strings.NewReader(`<svg><path d="M0 0"`))
	assert.Error(t, err)
}

func newTestLoader(t *testing.T, writeSVG bool) *Loader {
	t.Helper()

	dir := t.TempDir()
	if writeSVG {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "map.svg"), []byte(testSVG), 0o600))
	}
	regionsPath := filepath.Join(dir, "regions.yaml")
	require.NoError(t, os.WriteFile(regionsPath, []byte(testRegions), 0o600))

	cfg := &config.Config{Map: &config.MapConfig{
		RegionsFile: regionsPath,
		Width:       100,
		Height:      100,
	}}
	cfg.Map.Geometry.BucketURL = dir
	cfg.Map.Geometry.Key = "map.svg"

	l, err := New(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return l
}

func TestLoader_Graph(t *testing.T) {
	l := newTestLoader(t, true)

	g, err := l.Graph(context.Background())
	require.NoError(t, err)

	idx := g.Index()
	assert.Len(t, idx.All(), 3)
	require.Len(t, idx.Regions(), 2)
	assert.Equal(t, "NORTH", idx.Regions()[0].ID)
	assert.Equal(t, "SOUTH_WEST", idx.Regions()[1].ID)

	// keyed entry with empty id keeps the lake render-only
	assert.False(t, idx.All()[2].Selectable())

	assert.Equal(t, int64(len(testSVG)), l.size)
	assert.Len(t, l.checksum, 64)

	again, err := l.Graph(context.Background())
	require.NoError(t, err)
	assert.Same(t, g, again)
}

func TestLoader_FailureIsMemoized(t *testing.T) {
	l := newTestLoader(t, false)

	_, err := l.Graph(context.Background())
	require.Error(t, err)

	// creating the file afterwards does not trigger a retry
	require.NoError(t, os.WriteFile(filepath.Join(l.bucketURL, "map.svg"), []byte(testSVG), 0o600))
	_, again := l.Graph(context.Background())
	assert.Equal(t, err, again)
}

func TestLoadIdentityTable_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keyed: []\n"), 0o600))

	_, err := LoadIdentityTable(path)
	assert.Error(t, err)
}

func TestLoadIdentityTable_InvalidID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	content := "keyed:\n  - pathId: region-1\n    id: Eastern\n    name: Eastern\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadIdentityTable(path)
	assert.ErrorContains(t, err, `invalid region id "Eastern"`)
}
