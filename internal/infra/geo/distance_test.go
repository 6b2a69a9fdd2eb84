package geo

import (
	"testing"

	domainerrors "wander/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{40.0, -73.0},
		{-33.86, 151.21},
		{89.9, 179.9},
	}

	for _, p := range points {
		pt := NewPoint(p[0], p[1])
		assert.Zero(t, Distance(pt, pt))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	p1 := NewPoint(40.0, -73.0)
	p2 := NewPoint(51.5, -0.12)

	assert.InDelta(t, Distance(p1, p2), Distance(p2, p1), 0.01)
}

func TestDistance_OneDegreeOfLatitude(t *testing.T) {
	home := NewPoint(40.0, -73.0)
	friend := NewPoint(41.0, -73.0)

	// One degree of latitude with R = 3963.0 mi is 3963·π/180 ≈ 69.17 mi.
	assert.InDelta(t, 69.17, Distance(home, friend), 0.01)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("40.7128", "-74.0060")
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, p.Lat(), 1e-9)
	assert.InDelta(t, -74.0060, p.Lon(), 1e-9)
}

func TestParsePoint_Malformed(t *testing.T) {
	cases := [][2]string{
		{"not-a-number", "0"},
		{"0", ""},
		{"NaN", "0"},
		{"0", "+Inf"},
	}

	for _, c := range cases {
		_, err := ParsePoint(c[0], c[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinate))
	}
}
