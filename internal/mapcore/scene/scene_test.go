package scene

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/svgpath"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph(t *testing.T) *Graph {
	t.Helper()

	sources := []region.Source{
		{PathID: "region-1", Path: svgpath.New("M0 0h10v10h-10z")},
		{PathID: "region-2", Path: svgpath.New("M20 0h10v10h-10z")},
		{PathID: "lake", Path: svgpath.New("M40 0h10v10h-10z")},
	}
	table := region.IdentityTable{Keyed: []region.Identity{
		{PathID: "region-1", ID: "AHAFO", Name: "Ahafo"},
		{PathID: "region-2", ID: "ASHANTI", Name: "Ashanti"},
	}}

	idx, err := region.Build(sources, table)
	require.NoError(t, err)

	return Build(idx, 625, 910)
}

func TestGraph_Structure(t *testing.T) {
	g := testGraph(t)

	root := g.Root()
	assert.Equal(t, KindRoot, root.Kind)
	require.Len(t, root.Children, 1)

	group := root.Children[0]
	assert.Equal(t, KindGroup, group.Kind)
	require.Len(t, group.Children, 3)
	for i, n := range group.Children {
		assert.Equal(t, KindRegion, n.Kind)
		assert.Equal(t, i, n.Region.Ordinal)
		assert.Same(t, group, n.Parent)
	}

	assert.Equal(t, entity.Rect{Width: 625, Height: 910}, g.Full())
}

func TestNode_Closest(t *testing.T) {
	g := testGraph(t)
	path := g.Root().Children[0].Children[1]

	assert.Same(t, path, path.Closest(KindRegion))
	assert.Same(t, g.Root(), path.Closest(KindRoot))
	assert.Nil(t, path.Closest(KindMarker))
}

func TestGraph_ResolveNode(t *testing.T) {
	g := testGraph(t)
	group := g.Root().Children[0]

	r, ok := g.ResolveNode(group.Children[1].ID)
	require.True(t, ok)
	assert.Equal(t, "ASHANTI", r.ID)

	// Background, render-only paths and unknown ids are not region interactions.
	for _, id := range []int{g.Root().ID, group.ID, group.Children[2].ID, 99, -1} {
		_, ok := g.ResolveNode(id)
		assert.False(t, ok, "node %d", id)
	}
}

func TestGraph_HitTest(t *testing.T) {
	g := testGraph(t)

	r, ok := g.HitTest(orb.Point{5, 5})
	require.True(t, ok)
	assert.Equal(t, "AHAFO", r.ID)

	_, ok = g.HitTest(orb.Point{45, 5})
	assert.False(t, ok)
}

// svgDoc is a minimal decoder for rendered output.
type svgDoc struct {
	ViewBox string `xml:"viewBox,attr"`
	Paths   []struct {
		ID    string `xml:"id,attr"`
		Class string `xml:"class,attr"`
		Title string `xml:"title"`
	} `xml:"g>path"`
}

func TestGraph_RenderMap(t *testing.T) {
	g := testGraph(t)

	var buf bytes.Buffer
	require.NoError(t, g.RenderMap(&buf, g.Index().WithActive("ASHANTI")))

	var doc svgDoc
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "0 0 625 910", doc.ViewBox)
	require.Len(t, doc.Paths, 3)
	assert.Equal(t, "region", doc.Paths[0].Class)
	assert.Equal(t, "region active", doc.Paths[1].Class)
	assert.Equal(t, "region inert", doc.Paths[2].Class)
	assert.Equal(t, "Ashanti", doc.Paths[1].Title)
	assert.Equal(t, "lake", doc.Paths[2].ID)
}

func TestGraph_RenderMap_UnknownActive(t *testing.T) {
	g := testGraph(t)

	var buf bytes.Buffer
	require.NoError(t, g.RenderMap(&buf, g.Index().WithActive("NOWHERE")))
	assert.NotContains(t, buf.String(), "region active")
}

func TestGraph_RenderRegionView(t *testing.T) {
	g := testGraph(t)
	r, ok := g.Index().Lookup("AHAFO")
	require.True(t, ok)

	pins := []entity.Pin{{
		Facility: &entity.Facility{ID: 7, Name: "Goaso Government Hospital", StockStatus: entity.StockLow},
		X:        5,
		Y:        5,
		Label:    entity.LabelPlacement{FacilityID: 7, X: 5, Y: -3, Anchor: entity.AnchorMiddle},
	}}
	view := g.NewRegionView(r, entity.Rect{X: 0, Y: 0, Width: 15, Height: 15}, pins)

	markers := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == KindMarker {
			markers++
			assert.Equal(t, KindGroup, n.Parent.Kind)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(view.Root)
	assert.Equal(t, 1, markers)

	var buf bytes.Buffer
	require.NoError(t, g.RenderRegionView(&buf, view, RenderOptions{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `viewBox="0 0 15 15"`)
	assert.Contains(t, out, `class="region active"`)
	assert.Contains(t, out, `class="marker low"`)
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, `font-size="12"`)
	assert.Contains(t, out, ">Goaso Government Hospital</text>")
	assert.NotContains(t, out, "ASHANTI")
}
