package astro

// HouseCount is the number of astrological houses.
const HouseCount = 12

// HouseOf returns the 1-based house containing the given ecliptic longitude.
// cusps must hold exactly 12 boundary longitudes in ecliptic order; house i
// spans the half-open interval [cusps[i-1], cusps[i mod 12]), wrapping
// through 0 when the start cusp is numerically larger than the end cusp.
// First matching house wins; with well-formed cusps every degree matches, so
// the house 12 fallback only covers degenerate input. Returns 0 when the
// cusp count is wrong.
func HouseOf(degree float64, cusps []float64) int {
	if len(cusps) != HouseCount {
		return 0
	}

	d := NormalizeDegree(degree)
	for i := 0; i < HouseCount; i++ {
		lo := NormalizeDegree(cusps[i])
		hi := NormalizeDegree(cusps[(i+1)%HouseCount])
		if inHouse(d, lo, hi) {
			return i + 1
		}
	}
	return HouseCount
}

// inHouse reports whether d falls in [lo, hi), treating the interval as
// wrapping through 360 when lo > hi. Inclusive start, exclusive end.
func inHouse(d, lo, hi float64) bool {
	if lo <= hi {
		return d >= lo && d < hi
	}
	return d >= lo || d < hi
}
