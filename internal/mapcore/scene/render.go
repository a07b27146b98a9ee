package scene

import (
	"encoding/xml"
	"io"
	"strconv"

	"prepmap/internal/domain/entity"
	"prepmap/internal/errors"
	"prepmap/internal/mapcore/region"
)

const svgNamespace = "http://www.w3.org/2000/svg"

const (
	markerRadius    = 4
	defaultFontSize = 12
)

type svgElement struct {
	XMLName  xml.Name `xml:"svg"`
	Xmlns    string   `xml:"xmlns,attr"`
	ViewBox  string   `xml:"viewBox,attr"`
	Class    string   `xml:"class,attr,omitempty"`
	Children []any
}

type groupElement struct {
	XMLName  xml.Name `xml:"g"`
	Node     int      `xml:"data-node,attr"`
	Children []any
}

type pathElement struct {
	XMLName xml.Name      `xml:"path"`
	ID      string        `xml:"id,attr,omitempty"`
	Class   string        `xml:"class,attr"`
	D       string        `xml:"d,attr"`
	Node    int           `xml:"data-node,attr"`
	Region  string        `xml:"data-region,attr,omitempty"`
	Title   *titleElement `xml:"title,omitempty"`
}

type titleElement struct {
	Text string `xml:",chardata"`
}

type circleElement struct {
	XMLName  xml.Name `xml:"circle"`
	Class    string   `xml:"class,attr"`
	CX       string   `xml:"cx,attr"`
	CY       string   `xml:"cy,attr"`
	R        string   `xml:"r,attr"`
	Node     int      `xml:"data-node,attr"`
	Facility int64    `xml:"data-facility,attr"`
}

type textElement struct {
	XMLName  xml.Name `xml:"text"`
	Class    string   `xml:"class,attr"`
	X        string   `xml:"x,attr"`
	Y        string   `xml:"y,attr"`
	Anchor   string   `xml:"text-anchor,attr"`
	FontSize string   `xml:"font-size,attr"`
	Node     int      `xml:"data-node,attr"`
	Text     string   `xml:",chardata"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func regionClass(r *region.Region, active region.ActiveSet) string {
	switch {
	case !r.Selectable():
		return "region inert"
	case active.IsActive(r):
		return "region active"
	default:
		return "region"
	}
}

// RenderOptions tunes the region view.
type RenderOptions struct {
	FontSize float64
}

// RenderMap writes the full map with the given active region styled.
func (g *Graph) RenderMap(w io.Writer, active region.ActiveSet) error {
	return encode(w, svgElement{
		Xmlns:    svgNamespace,
		ViewBox:  g.Full().ViewBox(),
		Class:    "map",
		Children: g.renderChildren(g.root, active, RenderOptions{}),
	})
}

// RegionView is the scene of one selected region with its facility pins.
type RegionView struct {
	Root     *Node
	Viewport entity.Rect
}

// NewRegionView builds the subtree for r alone, zoomed to viewport.
func (g *Graph) NewRegionView(r *region.Region, viewport entity.Rect, pins []entity.Pin) *RegionView {
	t := &tree{}
	root := t.add(nil, KindRoot)

	shape := t.add(root, KindGroup)
	path := t.add(shape, KindRegion)
	path.Region = r

	markers := t.add(root, KindGroup)
	for i := range pins {
		pinGroup := t.add(markers, KindGroup)
		marker := t.add(pinGroup, KindMarker)
		marker.Pin = &pins[i]
		label := t.add(pinGroup, KindLabel)
		label.Pin = &pins[i]
	}

	return &RegionView{Root: root, Viewport: viewport}
}

// RenderRegionView writes a region view. The region is always drawn as active.
func (g *Graph) RenderRegionView(w io.Writer, view *RegionView, opts RenderOptions) error {
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}

	var active region.ActiveSet
	if path := firstOfKind(view.Root, KindRegion); path != nil && path.Region != nil {
		active = g.index.WithActive(path.Region.ID)
	}

	return encode(w, svgElement{
		Xmlns:    svgNamespace,
		ViewBox:  view.Viewport.ViewBox(),
		Class:    "region-view",
		Children: g.renderChildren(view.Root, active, opts),
	})
}

func firstOfKind(n *Node, kind Kind) *Node {
	if n.Kind == kind {
		return n
	}
	for _, c := range n.Children {
		if found := firstOfKind(c, kind); found != nil {
			return found
		}
	}

	return nil
}

func (g *Graph) renderChildren(n *Node, active region.ActiveSet, opts RenderOptions) []any {
	out := make([]any, 0, len(n.Children))
	for _, c := range n.Children {
		if el := g.renderNode(c, active, opts); el != nil {
			out = append(out, el)
		}
	}

	return out
}

func (g *Graph) renderNode(n *Node, active region.ActiveSet, opts RenderOptions) any {
	switch n.Kind {
	case KindGroup, KindRoot:
		return groupElement{Node: n.ID, Children: g.renderChildren(n, active, opts)}
	case KindRegion:
		r := n.Region
		el := pathElement{
			ID:     r.PathID,
			Class:  regionClass(r, active),
			D:      r.Path.D(),
			Node:   n.ID,
			Region: r.ID,
		}
		if r.Selectable() {
			el.Title = &titleElement{Text: r.DisplayName}
		}

		return el
	case KindMarker:
		pin := n.Pin

		return circleElement{
			Class:    "marker " + string(pin.Facility.StockStatus),
			CX:       num(pin.X),
			CY:       num(pin.Y),
			R:        num(markerRadius),
			Node:     n.ID,
			Facility: pin.Facility.ID,
		}
	case KindLabel:
		pin := n.Pin

		return textElement{
			Class:    "label",
			X:        num(pin.Label.X),
			Y:        num(pin.Label.Y),
			Anchor:   string(pin.Label.Anchor),
			FontSize: num(opts.FontSize),
			Node:     n.ID,
			Text:     pin.Facility.Name,
		}
	default:
		return nil
	}
}

func encode(w io.Writer, doc svgElement) error {
	enc := xml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode svg")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "flush svg")
	}

	return nil
}
