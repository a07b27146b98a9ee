package label

import (
	"math"
	"sync"

	"prepmap/internal/errors"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	goFontOnce sync.Once
	goFont     *opentype.Font
	goFontErr  error
)

func regularFont() (*opentype.Font, error) {
	goFontOnce.Do(func() {
		goFont, goFontErr = opentype.Parse(goregular.TTF)
	})

	return goFont, goFontErr
}

// EstimateFootprint measures the widest name at fontSize with the Go regular
// font. The height is one line of text.
func EstimateFootprint(names []string, fontSize float64) (Footprint, error) {
	if fontSize <= 0 {
		return Footprint{}, errors.Errorf("invalid font size %g", fontSize)
	}

	f, err := regularFont()
	if err != nil {
		return Footprint{}, errors.Wrap(err, "parse go regular font")
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Footprint{}, errors.Wrap(err, "create font face")
	}
	defer face.Close()

	width := 0
	for _, name := range names {
		if w := font.MeasureString(face, name).Ceil(); w > width {
			width = w
		}
	}
	height := face.Metrics().Height.Ceil()

	return Footprint{Width: float64(width), Height: math.Max(float64(height), fontSize)}, nil
}
