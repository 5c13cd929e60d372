package models

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

// PositionsRequest carries a birth moment and place. Lat/Lng are pointers so
// "required" can tell a missing value apart from a legitimate zero.
type PositionsRequest struct {
	Date            string   `query:"date" json:"date" validate:"required"`
	Time            string   `query:"time" json:"time" validate:"required"`
	Lat             *float64 `query:"lat" json:"lat" validate:"required,gte=-90,lte=90"`
	Lng             *float64 `query:"lng" json:"lng" validate:"required,gte=-180,lte=180"`
	HouseSystem     string   `query:"hsys" json:"hsys" validate:"omitempty,len=1,alpha"`
	TZOffsetMinutes int      `query:"tz_offset_minutes" json:"tz_offset_minutes" validate:"gte=-900,lte=900"`
}

// ChatRequest carries a free-text message plus a previously computed chart.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Chart   *Chart `json:"chart" validate:"required"`
}

// PositionsInput echoes the validated, normalized query back to the caller.
type PositionsInput struct {
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	HouseSystem     string  `json:"house_system"`
	TZOffsetMinutes int     `json:"tz_offset_minutes"`
}

// PositionsResponse is the body of a successful positions query.
type PositionsResponse struct {
	Success bool            `json:"success"`
	JDUT    float64         `json:"jd_ut"`
	Input   PositionsInput  `json:"input"`
	Planets []CelestialBody `json:"planets"`
	Houses  *HouseCusps     `json:"houses,omitempty"`
	Angles  *ChartAngles    `json:"angles,omitempty"`
}

// HousesResponse is the body of a successful houses query.
type HousesResponse struct {
	Success bool           `json:"success"`
	JDUT    float64        `json:"jd_ut"`
	Input   PositionsInput `json:"input"`
	Houses  *HouseCusps    `json:"houses"`
	Angles  *ChartAngles   `json:"angles"`
}

// ChatResponse is the body of a successful chat query.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HealthResponse is the body of the health query.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
	Version string `json:"version"`
}
