package geometry

import (
	"encoding/xml"
	"io"

	"prepmap/internal/errors"
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/svgpath"
)

// ParseSVG extracts every <path> outside <defs> in document order. Only the
// id and d attributes are read; the rest of the document is ignored.
func ParseSVG(r io.Reader) ([]region.Source, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var (
		sources   []region.Source
		defsDepth int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode svg")
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case el.Name.Local == "defs" || defsDepth > 0:
				defsDepth++
			case el.Name.Local == "path":
				src, ok := pathSource(el)
				if ok {
					sources = append(sources, src)
				}
			}
		case xml.EndElement:
			if defsDepth > 0 {
				defsDepth--
			}
		}
	}

	if len(sources) == 0 {
		return nil, errors.New("svg contains no paths")
	}

	return sources, nil
}

func pathSource(el xml.StartElement) (region.Source, bool) {
	var id, d string
	for _, attr := range el.Attr {
		switch attr.Name.Local {
		case "id":
			id = attr.Value
		case "d":
			d = attr.Value
		}
	}
	if d == "" {
		return region.Source{}, false
	}

	return region.Source{PathID: id, Path: svgpath.New(d)}, true
}
