package main

import (
	"fmt"
	"io"

	"prepmap/internal/mapcore/region"

	"github.com/pkg/errors"
)

// report prints one line per path and fails when any selectable region has no
// usable bounding box.
func report(w io.Writer, all []*region.Region) error {
	var selectable, broken int
	for _, r := range all {
		if !r.Selectable() {
			fmt.Fprintf(w, "  -  path %-12q ordinal %2d  (render only)\n", r.PathID, r.Ordinal)

			continue
		}
		selectable++

		bound, err := r.Bound()
		if err != nil {
			broken++
			fmt.Fprintf(w, "  !  %-16s %-20s no bounding box: %v\n", r.ID, r.DisplayName, err)

			continue
		}
		fmt.Fprintf(w, "  ok %-16s %-20s x=%.1f y=%.1f w=%.1f h=%.1f\n",
			r.ID, r.DisplayName, bound.X, bound.Y, bound.Width, bound.Height)
	}

	fmt.Fprintf(w, "\n%d paths, %d selectable regions\n", len(all), selectable)
	if broken > 0 {
		return errors.Errorf("%d regions without a usable bounding box", broken)
	}

	return nil
}
