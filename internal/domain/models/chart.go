package models

// Angle is an ecliptic longitude reduced into [0,360) with its zodiac sign.
type Angle struct {
	Degree float64 `json:"degree"`
	Sign   string  `json:"sign"`
}

// CelestialBody is one computed body position. Degree is nil when the
// provider returned nothing usable for this body; Sign is then "Unknown".
type CelestialBody struct {
	Name       string   `json:"name"`
	Degree     *float64 `json:"degree,omitempty"`
	Sign       string   `json:"sign"`
	House      *int     `json:"house,omitempty"`
	Retrograde *bool    `json:"retrograde,omitempty"`
}

// HouseCusps holds exactly 12 house boundary angles in ecliptic order,
// indexed 0-11 for houses 1-12. Fewer or more cusps means the structure is
// treated as absent and house assignment is skipped.
type HouseCusps struct {
	Cusps []Angle `json:"cusps"`
}

// ChartAngles carries the ascendant and midheaven.
type ChartAngles struct {
	Asc Angle `json:"asc"`
	MC  Angle `json:"mc"`
}

// Chart is the canonical per-request result. It is built once and not
// mutated afterwards, except for the house-number backfill on planets.
type Chart struct {
	Planets []CelestialBody `json:"planets"`
	Houses  *HouseCusps     `json:"houses,omitempty"`
	Angles  *ChartAngles    `json:"angles,omitempty"`
}
