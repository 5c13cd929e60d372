package ephemeris

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// ResponseAdapter decodes one provider build's wire shapes into canonical
// raw results. The adapter is selected once at startup from config instead
// of re-probing shapes on every call; only the legacy adapter still probes,
// because legacy provider builds genuinely varied between deployments.
type ResponseAdapter interface {
	// DecodePosition never fails on a bad shape: a result that cannot be
	// read yields an absent longitude so one bad body does not abort the
	// chart.
	DecodePosition(raw json.RawMessage) RawPosition

	// DecodeHouses requires exactly 12 cusps.
	DecodeHouses(raw json.RawMessage) (RawHouses, error)
}

// NewAdapter returns the adapter for a provider wire version.
func NewAdapter(version string) (ResponseAdapter, error) {
	switch version {
	case "legacy":
		return legacyAdapter{}, nil
	case "v2":
		return v2Adapter{}, nil
	default:
		return nil, fmt.Errorf("unknown ephemeris adapter version %q", version)
	}
}

// legacyAdapter handles the historical provider builds, whose calc result
// was variously a bare number, an array with longitude first, an object
// with a "data" array, or an object with named fields. Shapes are tried in
// that fixed priority order.
type legacyAdapter struct{}

func (legacyAdapter) DecodePosition(raw json.RawMessage) RawPosition {
	var pos RawPosition

	if isNullish(raw) {
		return pos
	}

	// Bare number.
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		pos.Longitude = finite(num)
		return pos
	}

	// Array: [longitude, latitude, distance, speed, ...].
	var arr []float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		if len(arr) > 0 {
			pos.Longitude = finite(arr[0])
		}
		if len(arr) > 3 {
			pos.Speed = finite(arr[3])
		}
		return pos
	}

	// Object: {"data": [...]} takes priority over named fields.
	var obj struct {
		Data       []float64 `json:"data"`
		Longitude  *float64  `json:"longitude"`
		Lon        *float64  `json:"lon"`
		Speed      *float64  `json:"speed"`
		SpeedLon   *float64  `json:"speed_lon"`
		Retrograde *bool     `json:"retrograde"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return pos
	}

	switch {
	case len(obj.Data) > 0:
		pos.Longitude = finite(obj.Data[0])
		if len(obj.Data) > 3 {
			pos.Speed = finite(obj.Data[3])
		}
	case obj.Longitude != nil:
		pos.Longitude = finite(*obj.Longitude)
	case obj.Lon != nil:
		pos.Longitude = finite(*obj.Lon)
	}

	if pos.Speed == nil {
		if obj.Speed != nil {
			pos.Speed = finite(*obj.Speed)
		} else if obj.SpeedLon != nil {
			pos.Speed = finite(*obj.SpeedLon)
		}
	}
	pos.Retrograde = obj.Retrograde

	return pos
}

func (legacyAdapter) DecodeHouses(raw json.RawMessage) (RawHouses, error) {
	// Legacy builds returned either {"cusps": [...], "asc": x, "mc": y}
	// or {"house": [...], "ascendant": x, "mc": y}.
	var obj struct {
		Cusps     []float64 `json:"cusps"`
		House     []float64 `json:"house"`
		Asc       *float64  `json:"asc"`
		Ascendant *float64  `json:"ascendant"`
		MC        float64   `json:"mc"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return RawHouses{}, fmt.Errorf("decode houses: %w", err)
	}

	cusps := obj.Cusps
	if len(cusps) == 0 {
		cusps = obj.House
	}
	// Some builds prepend a dummy element so cusps are 1-indexed.
	if len(cusps) == 13 {
		cusps = cusps[1:]
	}
	if len(cusps) != 12 {
		return RawHouses{}, fmt.Errorf("expected 12 cusps, got %d", len(cusps))
	}

	h := RawHouses{Cusps: cusps, MC: obj.MC}
	if obj.Asc != nil {
		h.Asc = *obj.Asc
	} else if obj.Ascendant != nil {
		h.Asc = *obj.Ascendant
	}
	return h, nil
}

// v2Adapter handles the current provider build, which has one fixed,
// documented shape per endpoint.
type v2Adapter struct{}

func (v2Adapter) DecodePosition(raw json.RawMessage) RawPosition {
	if isNullish(raw) {
		return RawPosition{}
	}
	var obj struct {
		Longitude  *float64 `json:"longitude"`
		SpeedLon   *float64 `json:"speed_lon"`
		Retrograde *bool    `json:"retrograde"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return RawPosition{}
	}

	var pos RawPosition
	if obj.Longitude != nil {
		pos.Longitude = finite(*obj.Longitude)
	}
	if obj.SpeedLon != nil {
		pos.Speed = finite(*obj.SpeedLon)
	}
	pos.Retrograde = obj.Retrograde
	return pos
}

func (v2Adapter) DecodeHouses(raw json.RawMessage) (RawHouses, error) {
	var obj struct {
		Cusps []float64 `json:"cusps"`
		Asc   float64   `json:"asc"`
		MC    float64   `json:"mc"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return RawHouses{}, fmt.Errorf("decode houses: %w", err)
	}
	if len(obj.Cusps) != 12 {
		return RawHouses{}, fmt.Errorf("expected 12 cusps, got %d", len(obj.Cusps))
	}
	return RawHouses{Cusps: obj.Cusps, Asc: obj.Asc, MC: obj.MC}, nil
}

// isNullish reports whether raw is empty or a JSON null. json.Unmarshal
// leaves the target untouched for null, which would otherwise turn a missing
// result into longitude 0.
func isNullish(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// finite returns a pointer to v, or nil when v is NaN or infinite.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
