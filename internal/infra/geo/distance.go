// Package geo implements great-circle distance computation between
// geographic points. It is pure: no I/O, no state.
package geo

import (
	"math"
	"strconv"

	domainerrors "wander/internal/domain/errors"

	"github.com/paulmach/orb"
)

// earthRadiusMiles is the mean Earth radius in miles. Callers expect miles,
// not kilometers.
const earthRadiusMiles = 3963.0

// NewPoint builds an orb.Point from latitude and longitude in decimal degrees.
// orb stores points as (lon, lat).
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// ParsePoint parses latitude and longitude given as decimal strings.
// Malformed or non-finite input fails with domainerrors.ErrInvalidCoordinate,
// which the caller must treat as a hard failure.
func ParsePoint(lat, lng string) (orb.Point, error) {
	latF, err := parseCoordinate(lat)
	if err != nil {
		return orb.Point{}, err
	}

	lngF, err := parseCoordinate(lng)
	if err != nil {
		return orb.Point{}, err
	}

	return NewPoint(latF, lngF), nil
}

// Distance returns the great-circle distance between two points in miles,
// rounded to two decimal places, using the haversine formula:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)
//	d = 2 · R · atan2(√a, √(1−a))
func Distance(p1, p2 orb.Point) float64 {
	lat1 := degToRad(p1.Lat())
	lat2 := degToRad(p2.Lat())
	deltaLat := degToRad(p2.Lat() - p1.Lat())
	deltaLng := degToRad(p2.Lon() - p1.Lon())

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	d := 2 * earthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(d*100) / 100
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidCoordinate.WrapMessage("parse coordinate " + strconv.Quote(s))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainerrors.ErrInvalidCoordinate.WrapMessage("coordinate must be finite")
	}

	return v, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
