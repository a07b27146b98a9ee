package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ghana = GeoBounds{MinLat: 4.738, MaxLat: 11.175, MinLng: -3.260, MaxLng: 1.200}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		bounds GeoBounds
		w, h   float64
	}{
		{"zero lat span", GeoBounds{MinLat: 5, MaxLat: 5, MinLng: 0, MaxLng: 1}, 100, 100},
		{"inverted lng span", GeoBounds{MinLat: 0, MaxLat: 1, MinLng: 2, MaxLng: 1}, 100, 100},
		{"zero width", ghana, 0, 100},
		{"negative height", ghana, 100, -1},
		{"nan bound", GeoBounds{MinLat: math.NaN(), MaxLat: 1, MinLng: 0, MaxLng: 1}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.bounds, tt.w, tt.h)
			assert.Error(t, err)
		})
	}
}

func TestProjector_Corners(t *testing.T) {
	p, err := New(ghana, 625, 910)
	require.NoError(t, err)

	nw := p.Project(ghana.MaxLat, ghana.MinLng)
	assert.InDelta(t, 0, nw[0], 1e-9)
	assert.InDelta(t, 0, nw[1], 1e-9)

	se := p.Project(ghana.MinLat, ghana.MaxLng)
	assert.InDelta(t, 625, se[0], 1e-9)
	assert.InDelta(t, 910, se[1], 1e-9)
}

func TestProjector_EasternRegionalHospital(t *testing.T) {
	p, err := New(ghana, 625, 910)
	require.NoError(t, err)

	pt := p.Project(6.094, -0.261)
	assert.InDelta(t, 420.3, pt[0], 0.1)
	assert.InDelta(t, 718.3, pt[1], 0.1)
}

func TestProjector_Monotonic(t *testing.T) {
	p, err := New(ghana, 625, 910)
	require.NoError(t, err)

	// Moving east increases x; moving north decreases y.
	for lng := -3.0; lng < 1.0; lng += 0.25 {
		a := p.Project(7, lng)
		b := p.Project(7, lng+0.25)
		assert.Greater(t, b[0], a[0])
		assert.InDelta(t, a[1], b[1], 1e-9)
	}
	for lat := 5.0; lat < 11.0; lat += 0.25 {
		a := p.Project(lat, -1)
		b := p.Project(lat+0.25, -1)
		assert.Less(t, b[1], a[1])
		assert.InDelta(t, a[0], b[0], 1e-9)
	}
}

func TestProjector_Linear(t *testing.T) {
	p, err := New(ghana, 625, 910)
	require.NoError(t, err)

	a := p.Project(5, -2)
	b := p.Project(9, 0)
	mid := p.Project(7, -1)

	assert.InDelta(t, (a[0]+b[0])/2, mid[0], 1e-9)
	assert.InDelta(t, (a[1]+b[1])/2, mid[1], 1e-9)
}

func TestProjector_NoClamping(t *testing.T) {
	p, err := New(ghana, 625, 910)
	require.NoError(t, err)

	pt := p.Project(12, 2)
	assert.Greater(t, pt[0], 625.0)
	assert.Less(t, pt[1], 0.0)
}
