package usecase

import (
	"context"
	"errors"

	"AstroChart/internal/astro"
	"AstroChart/internal/domain/models"
	"AstroChart/internal/ephemeris"
	applogger "AstroChart/pkg/logger"
)

// BuildQuery is a validated, parsed chart request.
type BuildQuery struct {
	Year, Month, Day int
	LocalHours       float64
	TZOffsetMinutes  int
	Lat, Lng         float64
	HouseSystem      string
}

// BuildResult carries the computed chart plus its time base.
type BuildResult struct {
	JDUT  float64
	Chart models.Chart

	// HousesUnavailable is set when the house subsystem was degraded; the
	// planets are still complete.
	HousesUnavailable bool
}

// ChartBuilder turns raw provider output into the canonical chart model.
type ChartBuilder struct {
	prov ephemeris.Provider
	l    *applogger.Logger
}

func NewChartBuilder(prov ephemeris.Provider, l *applogger.Logger) *ChartBuilder {
	return &ChartBuilder{prov: prov, l: l}
}

// Build computes one chart. A provider failure for a single body degrades
// that body to sign "Unknown" instead of aborting; a house failure drops
// houses and angles while planets still return.
func (b *ChartBuilder) Build(ctx context.Context, q BuildQuery) (*BuildResult, error) {
	ut := astro.LocalToUT(q.LocalHours, q.TZOffsetMinutes)
	jd := astro.JulianDay(q.Year, q.Month, q.Day, ut)

	res := &BuildResult{JDUT: jd}
	res.Chart.Planets = b.buildPlanets(ctx, jd)
	b.attachHouses(ctx, q, jd, res)
	return res, nil
}

// BuildHouses computes only the house cusps and angles for a moment and
// place, skipping the per-body position calls.
func (b *ChartBuilder) BuildHouses(ctx context.Context, q BuildQuery) (*BuildResult, error) {
	ut := astro.LocalToUT(q.LocalHours, q.TZOffsetMinutes)
	jd := astro.JulianDay(q.Year, q.Month, q.Day, ut)

	res := &BuildResult{JDUT: jd}
	b.attachHouses(ctx, q, jd, res)
	return res, nil
}

func (b *ChartBuilder) attachHouses(ctx context.Context, q BuildQuery, jd float64, res *BuildResult) {
	raw, err := b.prov.Houses(ctx, jd, q.Lat, q.Lng, q.HouseSystem)
	if err != nil {
		res.HousesUnavailable = true
		if b.l != nil && !errors.Is(err, ephemeris.ErrHousesUnavailable) {
			b.l.Warn("house computation failed", applogger.Error(err))
		}
		return
	}

	// Anything other than exactly 12 cusps means the house structure is
	// absent; angles travel with it.
	if len(raw.Cusps) != astro.HouseCount {
		res.HousesUnavailable = true
		if b.l != nil {
			b.l.Warn("provider returned malformed cusps", applogger.Int("count", len(raw.Cusps)))
		}
		return
	}

	res.Chart.Houses = cuspAngles(raw.Cusps)
	res.Chart.Angles = &models.ChartAngles{
		Asc: newAngle(raw.Asc),
		MC:  newAngle(raw.MC),
	}
	assignHouses(res.Chart.Planets, raw.Cusps)
}

// buildPlanets queries every body in the fixed order. Output order matches
// ephemeris.Bodies regardless of call outcome.
func (b *ChartBuilder) buildPlanets(ctx context.Context, jd float64) []models.CelestialBody {
	planets := make([]models.CelestialBody, 0, len(ephemeris.Bodies))
	for _, name := range ephemeris.Bodies {
		pos, err := b.prov.Calc(ctx, name, jd)
		if err != nil {
			if b.l != nil {
				b.l.Warn("body position failed", applogger.String("body", name), applogger.Error(err))
			}
			planets = append(planets, unknownBody(name))
			continue
		}
		planets = append(planets, newBody(name, pos))
	}
	return planets
}

func newBody(name string, pos ephemeris.RawPosition) models.CelestialBody {
	if pos.Longitude == nil {
		return unknownBody(name)
	}

	deg := astro.NormalizeDegree(*pos.Longitude)
	body := models.CelestialBody{
		Name:   name,
		Degree: &deg,
		Sign:   astro.SignFor(deg),
	}

	// Explicit provider flag wins; otherwise negative longitudinal speed
	// means retrograde; otherwise direct.
	retro := false
	switch {
	case pos.Retrograde != nil:
		retro = *pos.Retrograde
	case pos.Speed != nil:
		retro = *pos.Speed < 0
	}
	body.Retrograde = &retro

	return body
}

func unknownBody(name string) models.CelestialBody {
	return models.CelestialBody{Name: name, Sign: astro.SignUnknown}
}

// assignHouses backfills house numbers onto planets with a known degree.
func assignHouses(planets []models.CelestialBody, cusps []float64) {
	if len(cusps) != astro.HouseCount {
		return
	}
	for i := range planets {
		if planets[i].Degree == nil {
			continue
		}
		h := astro.HouseOf(*planets[i].Degree, cusps)
		if h > 0 {
			planets[i].House = &h
		}
	}
}

func cuspAngles(cusps []float64) *models.HouseCusps {
	if len(cusps) != astro.HouseCount {
		return nil
	}
	out := make([]models.Angle, len(cusps))
	for i, c := range cusps {
		out[i] = newAngle(c)
	}
	return &models.HouseCusps{Cusps: out}
}

func newAngle(degree float64) models.Angle {
	d := astro.NormalizeDegree(degree)
	return models.Angle{Degree: d, Sign: astro.SignFor(d)}
}
