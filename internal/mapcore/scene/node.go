// Package scene holds the typed node tree the map is drawn from.
//
// The tree is built once per region index and shared read-only. Styling such as
// the active region is passed in at render time instead of being written into
// the tree.
package scene

import (
	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/region"

	"github.com/paulmach/orb"
)

// Kind is the role of a node in the tree.
type Kind int

const (
	KindRoot Kind = iota
	KindGroup
	KindRegion
	KindMarker
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindGroup:
		return "group"
	case KindRegion:
		return "region"
	case KindMarker:
		return "marker"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Node is one element of the scene. Region nodes reference their region,
// marker and label nodes reference their pin.
type Node struct {
	ID       int
	Kind     Kind
	Parent   *Node
	Children []*Node

	Region *region.Region
	Pin    *entity.Pin
}

// Closest walks from n up through its ancestors and returns the first node of
// the given kind, n included.
func (n *Node) Closest(kind Kind) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == kind {
			return cur
		}
	}

	return nil
}

// tree assigns ids to nodes as they are attached.
type tree struct {
	nodes []*Node
}

func (t *tree) add(parent *Node, kind Kind) *Node {
	n := &Node{ID: len(t.nodes), Kind: kind, Parent: parent}
	t.nodes = append(t.nodes, n)
	if parent != nil {
		parent.Children = append(parent.Children, n)
	}

	return n
}

// Graph is the scene of the full map.
type Graph struct {
	index  *region.Index
	width  float64
	height float64

	root  *Node
	nodes []*Node
}

// Build creates one region node per path, render-only paths included, under a
// single group.
func Build(index *region.Index, width, height float64) *Graph {
	t := &tree{}
	root := t.add(nil, KindRoot)
	group := t.add(root, KindGroup)
	for _, r := range index.All() {
		n := t.add(group, KindRegion)
		n.Region = r
	}

	return &Graph{
		index:  index,
		width:  width,
		height: height,
		root:   root,
		nodes:  t.nodes,
	}
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	return g.root
}

// Index returns the region index the graph was built from.
func (g *Graph) Index() *region.Index {
	return g.index
}

// Full is the full-map viewport.
func (g *Graph) Full() entity.Rect {
	return entity.Rect{Width: g.width, Height: g.height}
}

// Node looks a node up by id.
func (g *Graph) Node(id int) (*Node, bool) {
	if id < 0 || id >= len(g.nodes) {
		return nil, false
	}

	return g.nodes[id], true
}

// ResolveNode maps an event target to the region of its nearest path
// ancestor. Targets without one, and render-only paths, are background.
func (g *Graph) ResolveNode(id int) (*region.Region, bool) {
	n, ok := g.Node(id)
	if !ok {
		return nil, false
	}
	path := n.Closest(KindRegion)
	if path == nil || path.Region == nil {
		return nil, false
	}

	return g.index.ByOrdinal(path.Region.Ordinal)
}

// HitTest resolves a map-space point to a region.
func (g *Graph) HitTest(pt orb.Point) (*region.Region, bool) {
	return g.index.HitTest(pt)
}
