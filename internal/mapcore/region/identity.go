package region

import "prepmap/internal/errors"

// Identity names a region. An Identity with an empty ID marks a path that is
// drawn but never selectable.
type Identity struct {
	PathID string `json:"pathId,omitempty" yaml:"pathId"`
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
}

// IdentityTable resolves geometry-source paths to region identities.
//
// Keyed entries match a path by its own id attribute. Ordinal entries are the
// legacy positional mapping and apply only to paths without a keyed match.
type IdentityTable struct {
	Keyed   []Identity `json:"keyed" yaml:"keyed"`
	Ordinal []Identity `json:"ordinal" yaml:"ordinal"`
}

// ValidID reports whether id is a well-formed region id: upper-case letters,
// digits and underscores.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}

	return true
}

// Validate rejects entries whose non-empty id is not a valid region id.
func (t IdentityTable) Validate() error {
	for _, entries := range [][]Identity{t.Keyed, t.Ordinal} {
		for _, e := range entries {
			if e.ID != "" && !ValidID(e.ID) {
				return errors.Errorf("invalid region id %q for path %q", e.ID, e.PathID)
			}
		}
	}

	return nil
}

func (t IdentityTable) resolver() func(pathID string, ordinal int) (Identity, bool) {
	keyed := make(map[string]Identity, len(t.Keyed))
	for _, e := range t.Keyed {
		if e.PathID != "" {
			keyed[e.PathID] = e
		}
	}

	return func(pathID string, ordinal int) (Identity, bool) {
		if pathID != "" {
			if e, ok := keyed[pathID]; ok {
				return e, e.ID != ""
			}
		}
		if ordinal >= 0 && ordinal < len(t.Ordinal) {
			e := t.Ordinal[ordinal]

			return e, e.ID != ""
		}

		return Identity{}, false
	}
}
