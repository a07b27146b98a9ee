package region

import (
	"prepmap/internal/errors"
	"prepmap/internal/mapcore/svgpath"

	"github.com/paulmach/orb"
)

// ErrDuplicateRegion is returned by Build when two paths resolve to the same region id.
var ErrDuplicateRegion = errors.New("duplicate region id")

// Source is one path as delivered by the geometry source, in document order.
type Source struct {
	PathID string
	Path   *svgpath.Path
}

// Index is the immutable region table. It is safe for concurrent readers.
type Index struct {
	all       []*Region
	regions   []*Region
	byID      map[string]*Region
	byOrdinal map[int]*Region
}

// Build resolves every source path against the identity table.
func Build(sources []Source, table IdentityTable) (*Index, error) {
	resolve := table.resolver()

	idx := &Index{
		all:       make([]*Region, 0, len(sources)),
		byID:      make(map[string]*Region),
		byOrdinal: make(map[int]*Region, len(sources)),
	}

	for i, src := range sources {
		if src.Path == nil {
			return nil, errors.Errorf("path %d has no geometry", i)
		}

		r := &Region{
			Ordinal: i,
			PathID:  src.PathID,
			Path:    src.Path,
		}
		if identity, ok := resolve(src.PathID, i); ok {
			if prev, dup := idx.byID[identity.ID]; dup {
				return nil, errors.Wrapf(ErrDuplicateRegion, "%s claimed by paths %d and %d", identity.ID, prev.Ordinal, i)
			}
			r.ID = identity.ID
			r.DisplayName = identity.Name
			if r.DisplayName == "" {
				r.DisplayName = identity.ID
			}
			idx.byID[r.ID] = r
			idx.regions = append(idx.regions, r)
		}

		idx.all = append(idx.all, r)
		idx.byOrdinal[i] = r
	}

	return idx, nil
}

// Regions returns the selectable regions in ordinal order.
func (idx *Index) Regions() []*Region {
	return idx.regions
}

// All returns every region including render-only ones.
func (idx *Index) All() []*Region {
	return idx.all
}

// Lookup finds a selectable region by id.
func (idx *Index) Lookup(id string) (*Region, bool) {
	r, ok := idx.byID[id]

	return r, ok
}

// ByOrdinal is the reverse lookup from a rendered path to its region.
// Render-only regions are reported as not found.
func (idx *Index) ByOrdinal(ordinal int) (*Region, bool) {
	r, ok := idx.byOrdinal[ordinal]
	if !ok || !r.Selectable() {
		return nil, false
	}

	return r, true
}

// HitTest returns the selectable region containing pt. Where regions share an
// edge the one with the lower ordinal wins. Render-only regions never match.
func (idx *Index) HitTest(pt orb.Point) (*Region, bool) {
	for _, r := range idx.regions {
		if r.Path.Contains(pt) {
			return r, true
		}
	}

	return nil, false
}

// ActiveSet is the styling state derived from the active region id.
// At most one region is active.
type ActiveSet struct {
	id string
}

// WithActive computes the active set for id. Unknown ids yield no active region.
func (idx *Index) WithActive(id string) ActiveSet {
	if _, ok := idx.byID[id]; !ok {
		return ActiveSet{}
	}

	return ActiveSet{id: id}
}

// ID returns the active region id, or "" when none is active.
func (a ActiveSet) ID() string {
	return a.id
}

// IsActive reports whether r is the active region.
func (a ActiveSet) IsActive(r *Region) bool {
	return a.id != "" && r.ID == a.id
}
