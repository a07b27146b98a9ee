// Package svgpath turns SVG path data into flattened planar geometry.
//
// Only what the map needs is derived from the path: closed rings for
// hit-testing and the bounding box for zooming. Curves are approximated by
// polylines, which is accurate enough for a schematic country map.
package svgpath

import (
	"math"
	"sync"

	"prepmap/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// curveSegments is the number of line segments used per Bézier curve.
const curveSegments = 8

// ErrEmptyGeometry is returned when a path has no drawable vertices.
var ErrEmptyGeometry = errors.New("path has no geometry")

// Path is an opaque path descriptor owned by the geometry source.
// Parsing happens on first use and its outcome is cached.
type Path struct {
	d string

	once  sync.Once
	rings []orb.Ring
	bound orb.Bound
	err   error
}

// New wraps raw path data. It never fails; malformed data surfaces from Geometry.
func New(d string) *Path {
	return &Path{d: d}
}

// Parse wraps and eagerly parses path data.
func Parse(d string) (*Path, error) {
	p := New(d)
	if _, err := p.Rings(); err != nil {
		return nil, err
	}

	return p, nil
}

// D returns the raw path data.
func (p *Path) D() string {
	return p.d
}

// Rings returns one closed ring per subpath.
func (p *Path) Rings() ([]orb.Ring, error) {
	p.once.Do(p.flatten)

	return p.rings, p.err
}

// Bound returns the bounding box of every vertex of the path.
func (p *Path) Bound() (orb.Bound, error) {
	p.once.Do(p.flatten)

	return p.bound, p.err
}

// Contains reports whether pt is inside the path using the even-odd rule,
// so enclaves cut out of a region are treated as outside.
func (p *Path) Contains(pt orb.Point) bool {
	rings, err := p.Rings()
	if err != nil {
		return false
	}
	if !p.bound.Contains(pt) {
		return false
	}

	inside := false
	for _, ring := range rings {
		if planar.RingContains(ring, pt) {
			inside = !inside
		}
	}

	return inside
}

func (p *Path) flatten() {
	rings, err := flatten(p.d)
	if err != nil {
		p.err = err

		return
	}

	var (
		bound orb.Bound
		seen  bool
	)
	for _, ring := range rings {
		for _, pt := range ring {
			if !seen {
				bound = orb.Bound{Min: pt, Max: pt}
				seen = true

				continue
			}
			bound = bound.Extend(pt)
		}
	}
	if !seen {
		p.err = ErrEmptyGeometry

		return
	}

	p.rings = rings
	p.bound = bound
}

// builder accumulates subpaths while the path data is interpreted.
type builder struct {
	rings   []orb.Ring
	current orb.Ring
	pos     orb.Point
	start   orb.Point
	ctrl    orb.Point // reflected control point for S/s and T/t
	prev    byte      // previous command, upper-cased
}

func (b *builder) moveTo(pt orb.Point) {
	b.finish()
	b.current = orb.Ring{pt}
	b.pos = pt
	b.start = pt
}

func (b *builder) lineTo(pt orb.Point) {
	if len(b.current) == 0 {
		b.current = orb.Ring{b.pos}
	}
	b.current = append(b.current, pt)
	b.pos = pt
}

func (b *builder) closePath() {
	if len(b.current) > 0 {
		b.finish()
	}
	b.pos = b.start
}

func (b *builder) finish() {
	if len(b.current) == 0 {
		return
	}
	ring := b.current
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	b.rings = append(b.rings, ring)
	b.current = nil
}

func flatten(d string) ([]orb.Ring, error) {
	sc := &scanner{s: d}
	b := &builder{}

	var cmd byte
	for !sc.done() {
		start := sc.pos
		if c, ok := sc.command(); ok {
			cmd = c
		} else if cmd == 0 {
			return nil, errors.Errorf("path data must start with a command, got %q", d[sc.pos])
		}
		if err := b.apply(sc, &cmd); err != nil {
			return nil, errors.Wrapf(err, "command %q", cmd)
		}
		// Every iteration must consume input, e.g. numbers after a closepath do not.
		if sc.pos == start {
			return nil, errors.Errorf("unexpected %q at offset %d", d[sc.pos], sc.pos)
		}
	}
	b.finish()

	return b.rings, nil
}

// apply consumes one command together with any implicit repetitions of its arguments.
func (b *builder) apply(sc *scanner, cmd *byte) error {
	c := *cmd
	rel := c >= 'a' && c <= 'z'
	upper := c &^ 0x20

	if upper == 'Z' {
		b.closePath()
		b.prev = 'Z'

		return nil
	}

	first := true
	for first || sc.hasNumber() {
		first = false

		var err error
		switch upper {
		case 'M':
			err = b.applyMove(sc, rel)
			// Coordinates following a moveto are implicit linetos.
			if rel {
				*cmd = 'l'
			} else {
				*cmd = 'L'
			}
			if err == nil && sc.hasNumber() {
				return b.apply(sc, cmd)
			}
		case 'L':
			err = b.applyLine(sc, rel)
		case 'H':
			err = b.applyHorizontal(sc, rel)
		case 'V':
			err = b.applyVertical(sc, rel)
		case 'C':
			err = b.applyCubic(sc, rel, false)
		case 'S':
			err = b.applyCubic(sc, rel, true)
		case 'Q':
			err = b.applyQuad(sc, rel, false)
		case 'T':
			err = b.applyQuad(sc, rel, true)
		case 'A':
			err = b.applyArc(sc, rel)
		}
		if err != nil {
			return err
		}
		b.prev = upper
	}

	return nil
}

func (b *builder) point(sc *scanner, rel bool) (orb.Point, error) {
	x, err := sc.number()
	if err != nil {
		return orb.Point{}, err
	}
	y, err := sc.number()
	if err != nil {
		return orb.Point{}, err
	}
	if rel {
		return orb.Point{b.pos[0] + x, b.pos[1] + y}, nil
	}

	return orb.Point{x, y}, nil
}

func (b *builder) applyMove(sc *scanner, rel bool) error {
	pt, err := b.point(sc, rel)
	if err != nil {
		return err
	}
	b.moveTo(pt)

	return nil
}

func (b *builder) applyLine(sc *scanner, rel bool) error {
	pt, err := b.point(sc, rel)
	if err != nil {
		return err
	}
	b.lineTo(pt)

	return nil
}

func (b *builder) applyHorizontal(sc *scanner, rel bool) error {
	x, err := sc.number()
	if err != nil {
		return err
	}
	if rel {
		x += b.pos[0]
	}
	b.lineTo(orb.Point{x, b.pos[1]})

	return nil
}

func (b *builder) applyVertical(sc *scanner, rel bool) error {
	y, err := sc.number()
	if err != nil {
		return err
	}
	if rel {
		y += b.pos[1]
	}
	b.lineTo(orb.Point{b.pos[0], y})

	return nil
}

// reflectedControl mirrors the previous control point when the previous
// command belongs to the same curve family, otherwise it is the current point.
func (b *builder) reflectedControl(family ...byte) orb.Point {
	for _, c := range family {
		if b.prev == c {
			return orb.Point{2*b.pos[0] - b.ctrl[0], 2*b.pos[1] - b.ctrl[1]}
		}
	}

	return b.pos
}

func (b *builder) applyCubic(sc *scanner, rel, smooth bool) error {
	var (
		c1  orb.Point
		err error
	)
	if smooth {
		c1 = b.reflectedControl('C', 'S')
	} else if c1, err = b.point(sc, rel); err != nil {
		return err
	}
	c2, err := b.point(sc, rel)
	if err != nil {
		return err
	}
	end, err := b.point(sc, rel)
	if err != nil {
		return err
	}

	p0 := b.pos
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		mt := 1 - t
		b.lineTo(orb.Point{
			mt*mt*mt*p0[0] + 3*mt*mt*t*c1[0] + 3*mt*t*t*c2[0] + t*t*t*end[0],
			mt*mt*mt*p0[1] + 3*mt*mt*t*c1[1] + 3*mt*t*t*c2[1] + t*t*t*end[1],
		})
	}
	b.ctrl = c2

	return nil
}

func (b *builder) applyQuad(sc *scanner, rel, smooth bool) error {
	var (
		c   orb.Point
		err error
	)
	if smooth {
		c = b.reflectedControl('Q', 'T')
	} else if c, err = b.point(sc, rel); err != nil {
		return err
	}
	end, err := b.point(sc, rel)
	if err != nil {
		return err
	}

	p0 := b.pos
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		mt := 1 - t
		b.lineTo(orb.Point{
			mt*mt*p0[0] + 2*mt*t*c[0] + t*t*end[0],
			mt*mt*p0[1] + 2*mt*t*c[1] + t*t*end[1],
		})
	}
	b.ctrl = c

	return nil
}

func (b *builder) applyArc(sc *scanner, rel bool) error {
	rx, err := sc.number()
	if err != nil {
		return err
	}
	ry, err := sc.number()
	if err != nil {
		return err
	}
	phi, err := sc.number()
	if err != nil {
		return err
	}
	large, err := sc.flag()
	if err != nil {
		return err
	}
	sweep, err := sc.flag()
	if err != nil {
		return err
	}
	end, err := b.point(sc, rel)
	if err != nil {
		return err
	}

	for _, pt := range arcPoints(b.pos, rx, ry, phi, large, sweep, end) {
		b.lineTo(pt)
	}

	return nil
}

// arcPoints approximates an elliptical arc using the endpoint to center
// conversion from the SVG implementation notes. The returned points exclude p0.
func arcPoints(p0 orb.Point, rx, ry, phiDeg float64, large, sweep bool, p1 orb.Point) []orb.Point {
	if p0 == p1 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []orb.Point{p1}
	}

	phi := phiDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx := (p0[0] - p1[0]) / 2
	dy := (p0[1] - p1[1]) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale radii up when they are too small to span the endpoints.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (p0[0]+p1[0])/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0[1]+p1[1])/2

	theta1 := vectorAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vectorAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 8)))
	if n < 1 {
		n = 1
	}

	points := make([]orb.Point, 0, n)
	for i := 1; i <= n; i++ {
		if i == n {
			points = append(points, p1)

			break
		}
		theta := theta1 + delta*float64(i)/float64(n)
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		points = append(points, orb.Point{
			cosPhi*rx*cosT - sinPhi*ry*sinT + cx,
			sinPhi*rx*cosT + cosPhi*ry*sinT + cy,
		})
	}

	return points
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
