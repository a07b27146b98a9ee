package entity

// Anchor is the horizontal SVG text-anchor of a label.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// LabelPlacement is the chosen on-map position of a facility label.
type LabelPlacement struct {
	FacilityID int64   `json:"facility_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Anchor     Anchor  `json:"anchor"`
	// Collided is set when every candidate overlapped and the top-center fallback was used.
	Collided bool `json:"collided,omitempty"`
}

// Pin is a projected facility marker together with its label placement.
type Pin struct {
	Facility *Facility     `json:"facility"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Label    LabelPlacement `json:"label"`
}
