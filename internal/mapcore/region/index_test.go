package region

import (
	"fmt"
	"testing"

	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/svgpath"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridSources lays out n 10x10 squares in a row, 20 units apart.
func gridSources(n int, pathID func(i int) string) []Source {
	sources := make([]Source, n)
	for i := range n {
		x := i * 20
		sources[i] = Source{
			PathID: pathID(i),
			Path:   svgpath.New(fmt.Sprintf("M%d 0h10v10h-10z", x)),
		}
	}

	return sources
}

func noPathID(int) string { return "" }

func ordinalTable(n int) IdentityTable {
	table := IdentityTable{}
	for i := range n {
		table.Ordinal = append(table.Ordinal, Identity{
			ID:   fmt.Sprintf("R%02d", i),
			Name: fmt.Sprintf("Region %d", i),
		})
	}

	return table
}

func TestBuild_OrdinalTableShorterThanSource(t *testing.T) {
	idx, err := Build(gridSources(20, noPathID), ordinalTable(16))
	require.NoError(t, err)

	assert.Len(t, idx.All(), 20)
	assert.Len(t, idx.Regions(), 16)

	for i, r := range idx.All() {
		assert.Equal(t, i, r.Ordinal)
		assert.Equal(t, i < 16, r.Selectable(), "ordinal %d", i)
	}

	// Render-only paths never resolve.
	_, ok := idx.ByOrdinal(17)
	assert.False(t, ok)
	_, ok = idx.HitTest(orb.Point{17*20 + 5, 5})
	assert.False(t, ok)
}

func TestBuild_KeyedTakesPrecedence(t *testing.T) {
	table := IdentityTable{
		Keyed: []Identity{
			{PathID: "region-2", ID: "EASTERN", Name: "Eastern"},
			{PathID: "region-3", ID: "", Name: "Lake"},
		},
		Ordinal: []Identity{
			{ID: "AHAFO", Name: "Ahafo"},
			{ID: "ASHANTI", Name: "Ashanti"},
			{ID: "BONO", Name: "Bono"},
		},
	}
	sources := gridSources(4, func(i int) string { return fmt.Sprintf("region-%d", i+1) })

	idx, err := Build(sources, table)
	require.NoError(t, err)

	first, ok := idx.Lookup("AHAFO")
	require.True(t, ok)
	assert.Equal(t, 0, first.Ordinal)

	eastern, ok := idx.Lookup("EASTERN")
	require.True(t, ok)
	assert.Equal(t, 1, eastern.Ordinal)
	assert.Equal(t, "Eastern", eastern.DisplayName)

	// A keyed entry without an id overrides the ordinal fallback.
	assert.False(t, idx.All()[2].Selectable())
	_, ok = idx.Lookup("BONO")
	assert.False(t, ok)

	assert.False(t, idx.All()[3].Selectable())
	assert.Len(t, idx.Regions(), 2)
}

func TestBuild_DuplicateID(t *testing.T) {
	table := IdentityTable{
		Keyed: []Identity{
			{PathID: "a", ID: "VOLTA", Name: "Volta"},
			{PathID: "b", ID: "VOLTA", Name: "Volta"},
		},
	}
	sources := gridSources(2, func(i int) string { return string(rune('a' + i)) })

	_, err := Build(sources, table)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRegion)
}

func TestBuild_MissingGeometry(t *testing.T) {
	_, err := Build([]Source{{PathID: "x"}}, IdentityTable{})
	assert.Error(t, err)
}

func TestIndex_HitTest(t *testing.T) {
	idx, err := Build(gridSources(5, noPathID), ordinalTable(5))
	require.NoError(t, err)

	for i, r := range idx.Regions() {
		got, ok := idx.HitTest(orb.Point{float64(i*20) + 5, 5})
		require.True(t, ok)
		assert.Same(t, r, got)
	}

	// Gaps between regions and points outside the map are background.
	for _, pt := range []orb.Point{{15, 5}, {-1, -1}, {5, 50}, {1000, 5}} {
		_, ok := idx.HitTest(pt)
		assert.False(t, ok, "point %v", pt)
	}
}

func TestIndex_ByOrdinal(t *testing.T) {
	idx, err := Build(gridSources(3, noPathID), ordinalTable(2))
	require.NoError(t, err)

	r, ok := idx.ByOrdinal(1)
	require.True(t, ok)
	assert.Equal(t, "R01", r.ID)

	_, ok = idx.ByOrdinal(2)
	assert.False(t, ok)
	_, ok = idx.ByOrdinal(9)
	assert.False(t, ok)
}

func TestIndex_WithActive(t *testing.T) {
	idx, err := Build(gridSources(3, noPathID), ordinalTable(3))
	require.NoError(t, err)

	active := idx.WithActive("R01")
	assert.Equal(t, "R01", active.ID())

	count := 0
	for _, r := range idx.All() {
		if active.IsActive(r) {
			count++
		}
	}
	assert.Equal(t, 1, count)

	none := idx.WithActive("NOPE")
	assert.Empty(t, none.ID())
	for _, r := range idx.All() {
		assert.False(t, none.IsActive(r))
	}

	// Pure function of the table and the id.
	assert.Equal(t, active, idx.WithActive("R01"))
}

func TestRegion_Bound(t *testing.T) {
	idx, err := Build(gridSources(2, noPathID), ordinalTable(2))
	require.NoError(t, err)

	r, ok := idx.Lookup("R01")
	require.True(t, ok)

	bound, err := r.Bound()
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{X: 20, Y: 0, Width: 10, Height: 10}, bound)

	broken := &Region{Path: svgpath.New("M")}
	_, err = broken.Bound()
	assert.Error(t, err)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("EASTERN"))
	assert.True(t, ValidID("BONO_EAST"))
	assert.True(t, ValidID("REGION_12"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("eastern"))
	assert.False(t, ValidID("NORTH-EAST"))
}

func TestIdentityTable_Validate(t *testing.T) {
	ok := IdentityTable{
		Keyed:   []Identity{{PathID: "lake", ID: ""}, {PathID: "region-1", ID: "EASTERN"}},
		Ordinal: []Identity{{ID: "VOLTA"}},
	}
	assert.NoError(t, ok.Validate())

	bad := IdentityTable{Ordinal: []Identity{{ID: "Volta"}}}
	assert.Error(t, bad.Validate())
}
