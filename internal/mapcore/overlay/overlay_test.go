package overlay

import (
	"testing"

	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/label"
	"prepmap/internal/mapcore/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOverlay(t *testing.T) *Overlay {
	t.Helper()

	p, err := projection.New(projection.GeoBounds{MinLat: 4.738, MaxLat: 11.175, MinLng: -3.260, MaxLng: 1.200}, 625, 910)
	require.NoError(t, err)

	return New(p, label.NewPlacer(label.Footprint{Width: 120, Height: 14}, 8))
}

func TestOverlay_EasternRegionalHospital(t *testing.T) {
	o := newOverlay(t)

	pins := o.Pins([]*entity.Facility{{
		ID:          1,
		Name:        "Eastern Regional Hospital",
		RegionID:    "EASTERN",
		Coordinates: entity.Coordinates{Lat: 6.094, Lng: -0.261},
	}})

	require.Len(t, pins, 1)
	pin := pins[0]
	assert.InDelta(t, 420.3, pin.X, 0.1)
	assert.InDelta(t, 718.3, pin.Y, 0.1)
	assert.Equal(t, entity.AnchorMiddle, pin.Label.Anchor)
	assert.InDelta(t, pin.X, pin.Label.X, 1e-9)
	assert.InDelta(t, pin.Y-8, pin.Label.Y, 1e-9)
	assert.Equal(t, "Eastern Regional Hospital", pin.Facility.Name)
}

func TestOverlay_KeepsEveryFacility(t *testing.T) {
	o := newOverlay(t)

	facilities := []*entity.Facility{
		{ID: 3, Coordinates: entity.Coordinates{Lat: 6.6985, Lng: -1.6244}},
		{ID: 4, Coordinates: entity.Coordinates{Lat: 6.7100, Lng: -1.6150}},
		{ID: 9, Coordinates: entity.Coordinates{Lat: 20, Lng: 20}},
		nil,
	}

	pins := o.Pins(facilities)
	require.Len(t, pins, 3)
	assert.Equal(t, int64(9), pins[0].Facility.ID)
	assert.Equal(t, int64(4), pins[1].Facility.ID)
	assert.Equal(t, int64(3), pins[2].Facility.ID)

	// Out-of-bounds facilities still get a pin, outside the map.
	assert.Greater(t, pins[0].X, 625.0)

	assert.Empty(t, o.Pins(nil))
}

func TestOverlay_AutoWidth(t *testing.T) {
	p, err := projection.New(projection.GeoBounds{MinLat: 4.738, MaxLat: 11.175, MinLng: -3.260, MaxLng: 1.200}, 625, 910)
	require.NoError(t, err)
	o := New(p, label.NewPlacer(label.Footprint{Height: 14}, 8)).WithAutoWidth(12)

	// Two markers 40 units apart horizontally: with a measured width the
	// second label cannot share the top slot.
	facilities := []*entity.Facility{
		{ID: 1, Name: "Komfo Anokye Teaching Hospital", Coordinates: entity.Coordinates{Lat: 6.7, Lng: -1.60}},
		{ID: 2, Name: "Manhyia District Hospital", Coordinates: entity.Coordinates{Lat: 6.7, Lng: -1.30}},
	}
	pins := o.Pins(facilities)
	require.Len(t, pins, 2)
	assert.Equal(t, entity.AnchorMiddle, pins[0].Label.Anchor)
	assert.NotEqual(t, pins[0].Label.Y, pins[1].Label.Y)

	// Without auto width a zero-width label never collides.
	plain := New(p, label.NewPlacer(label.Footprint{Height: 14}, 8)).Pins(facilities)
	assert.Equal(t, entity.AnchorMiddle, plain[1].Label.Anchor)
	assert.Equal(t, plain[0].Label.Y, plain[1].Label.Y)
}
