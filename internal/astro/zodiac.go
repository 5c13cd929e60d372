// Package astro holds the pure chart math: degree normalization, zodiac
// signs, Julian Day conversion, and house assignment. Everything here is
// deterministic and provider-independent.
package astro

import "math"

// SignUnknown is the sentinel sign for a body whose longitude could not be
// extracted from the provider.
const SignUnknown = "Unknown"

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NormalizeDegree reduces x modulo 360 into [0,360).
func NormalizeDegree(x float64) float64 {
	d := math.Mod(x, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SignFor returns the zodiac sign containing the given ecliptic longitude.
// Each sign spans 30 degrees starting at Aries = [0,30).
func SignFor(degree float64) string {
	idx := int(NormalizeDegree(degree) / 30)
	if idx > 11 {
		// NormalizeDegree can land exactly on 360 only through float
		// rounding; clamp rather than index out of range.
		idx = 0
	}
	return signNames[idx]
}
