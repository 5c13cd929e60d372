// Package ephemeris is the boundary to the external ephemeris provider. The
// provider itself (a native astronomical library fronted by a small sidecar
// service) is out of scope: this package only issues calls and normalizes
// the heterogeneous result shapes of different provider builds into one
// canonical form.
package ephemeris

import (
	"context"
	"errors"
)

// Bodies is the fixed, ordered list of bodies computed per chart. Output
// ordering follows this list regardless of how calls complete.
var Bodies = []string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// ErrHousesUnavailable is returned when house computation cannot run, e.g.
// the provider's ephemeris data files were unreachable at initialization.
// Planetary positions are unaffected.
var ErrHousesUnavailable = errors.New("ephemeris: houses unavailable")

// RawPosition is a provider position result after adapter decoding. Nil
// fields mean the provider did not supply the value; a nil Longitude marks
// the body as unknown rather than failing the chart.
type RawPosition struct {
	Longitude  *float64
	Speed      *float64
	Retrograde *bool
}

// RawHouses is a provider house result after adapter decoding.
type RawHouses struct {
	Cusps []float64
	Asc   float64
	MC    float64
}

// Provider computes raw positions and house cusps.
type Provider interface {
	// Calc returns the raw position of one body at the given Julian Day.
	Calc(ctx context.Context, body string, jd float64) (RawPosition, error)

	// Houses returns house cusps and chart angles for a moment and place.
	// Returns ErrHousesUnavailable when the subsystem is degraded.
	Houses(ctx context.Context, jd, lat, lng float64, houseSystem string) (RawHouses, error)

	// HousesAvailable reports whether house computation can run.
	HousesAvailable() bool
}

// CallMetrics records provider call outcomes.
type CallMetrics interface {
	RecordCall(op string, seconds float64)
	RecordError(op string)
}
