package usecase

import (
	"context"
	"errors"
	"testing"

	"AstroChart/internal/ephemeris"
)

// fakeProvider implements ephemeris.Provider with function hooks.
type fakeProvider struct {
	calc   func(body string, jd float64) (ephemeris.RawPosition, error)
	houses func(jd, lat, lng float64, hsys string) (ephemeris.RawHouses, error)
	ready  bool
}

func (f *fakeProvider) Calc(_ context.Context, body string, jd float64) (ephemeris.RawPosition, error) {
	return f.calc(body, jd)
}

func (f *fakeProvider) Houses(_ context.Context, jd, lat, lng float64, hsys string) (ephemeris.RawHouses, error) {
	if !f.ready {
		return ephemeris.RawHouses{}, ephemeris.ErrHousesUnavailable
	}
	return f.houses(jd, lat, lng, hsys)
}

func (f *fakeProvider) HousesAvailable() bool { return f.ready }

func equalCusps() []float64 {
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = float64(i * 30)
	}
	return cusps
}

func fixedPosition(lon, speed float64) func(string, float64) (ephemeris.RawPosition, error) {
	return func(string, float64) (ephemeris.RawPosition, error) {
		l, s := lon, speed
		return ephemeris.RawPosition{Longitude: &l, Speed: &s}, nil
	}
}

var query = BuildQuery{
	Year: 1992, Month: 9, Day: 8,
	LocalHours: 14, TZOffsetMinutes: 120,
	Lat: 48.2, Lng: 16.37,
	HouseSystem: "P",
}

func TestBuildTimeBase(t *testing.T) {
	prov := &fakeProvider{calc: fixedPosition(100, 1), ready: false}
	b := NewChartBuilder(prov, nil)

	res, err := b.Build(context.Background(), query)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// 14:00 local at UTC+2 is 12:00 UT.
	if res.JDUT != 2448874.0 {
		t.Fatalf("jd = %v, want 2448874.0", res.JDUT)
	}
}

func TestBuildPlanetOrder(t *testing.T) {
	prov := &fakeProvider{calc: fixedPosition(45, 0.5), ready: false}
	b := NewChartBuilder(prov, nil)

	res, err := b.Build(context.Background(), query)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(res.Chart.Planets) != len(ephemeris.Bodies) {
		t.Fatalf("got %d planets", len(res.Chart.Planets))
	}
	for i, p := range res.Chart.Planets {
		if p.Name != ephemeris.Bodies[i] {
			t.Fatalf("planet %d = %s, want %s", i, p.Name, ephemeris.Bodies[i])
		}
		if p.Sign != "Taurus" {
			t.Fatalf("planet %s sign = %s", p.Name, p.Sign)
		}
		if p.Retrograde == nil || *p.Retrograde {
			t.Fatalf("planet %s unexpectedly retrograde", p.Name)
		}
	}
}

func TestBuildPerBodyDegradation(t *testing.T) {
	prov := &fakeProvider{
		calc: func(body string, jd float64) (ephemeris.RawPosition, error) {
			if body == "Mercury" {
				return ephemeris.RawPosition{}, errors.New("provider blew up")
			}
			if body == "Venus" {
				// decoded but absent
				return ephemeris.RawPosition{}, nil
			}
			lon := 200.0
			return ephemeris.RawPosition{Longitude: &lon}, nil
		},
		ready: false,
	}
	b := NewChartBuilder(prov, nil)

	res, err := b.Build(context.Background(), query)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, p := range res.Chart.Planets {
		switch p.Name {
		case "Mercury", "Venus":
			if p.Degree != nil || p.Sign != "Unknown" {
				t.Fatalf("%s should be unknown, got %+v", p.Name, p)
			}
		default:
			if p.Degree == nil || p.Sign != "Libra" {
				t.Fatalf("%s should be known, got %+v", p.Name, p)
			}
		}
	}
}

func TestBuildRetrograde(t *testing.T) {
	retro := true
	prov := &fakeProvider{
		calc: func(body string, jd float64) (ephemeris.RawPosition, error) {
			lon := 10.0
			switch body {
			case "Sun":
				// explicit flag wins over positive speed
				speed := 1.0
				return ephemeris.RawPosition{Longitude: &lon, Speed: &speed, Retrograde: &retro}, nil
			case "Moon":
				speed := -0.5
				return ephemeris.RawPosition{Longitude: &lon, Speed: &speed}, nil
			default:
				return ephemeris.RawPosition{Longitude: &lon}, nil
			}
		},
		ready: false,
	}
	b := NewChartBuilder(prov, nil)

	res, _ := b.Build(context.Background(), query)
	sun, moon, mars := res.Chart.Planets[0], res.Chart.Planets[1], res.Chart.Planets[4]
	if sun.Retrograde == nil || !*sun.Retrograde {
		t.Fatalf("Sun: explicit flag should win")
	}
	if moon.Retrograde == nil || !*moon.Retrograde {
		t.Fatalf("Moon: negative speed should mean retrograde")
	}
	if mars.Retrograde == nil || *mars.Retrograde {
		t.Fatalf("Mars: no signal should default to direct")
	}
}

func TestBuildHousesUnavailable(t *testing.T) {
	prov := &fakeProvider{calc: fixedPosition(100, 1), ready: false}
	b := NewChartBuilder(prov, nil)

	res, err := b.Build(context.Background(), query)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !res.HousesUnavailable {
		t.Fatalf("expected houses unavailable")
	}
	if res.Chart.Houses != nil || res.Chart.Angles != nil {
		t.Fatalf("houses/angles should be absent")
	}
	if len(res.Chart.Planets) != len(ephemeris.Bodies) {
		t.Fatalf("planets should still return")
	}
	for _, p := range res.Chart.Planets {
		if p.House != nil {
			t.Fatalf("no house numbers expected")
		}
	}
}

func TestBuildHouseAssignment(t *testing.T) {
	prov := &fakeProvider{
		calc: fixedPosition(355, 1),
		houses: func(jd, lat, lng float64, hsys string) (ephemeris.RawHouses, error) {
			return ephemeris.RawHouses{Cusps: equalCusps(), Asc: 0, MC: 270}, nil
		},
		ready: true,
	}
	b := NewChartBuilder(prov, nil)

	res, err := b.Build(context.Background(), query)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Chart.Houses == nil || len(res.Chart.Houses.Cusps) != 12 {
		t.Fatalf("expected 12 cusps")
	}
	if res.Chart.Angles == nil || res.Chart.Angles.Asc.Sign != "Aries" || res.Chart.Angles.MC.Sign != "Capricorn" {
		t.Fatalf("unexpected angles %+v", res.Chart.Angles)
	}
	for _, p := range res.Chart.Planets {
		if p.House == nil || *p.House != 12 {
			t.Fatalf("planet at 355 should sit in house 12, got %+v", p.House)
		}
	}
}

func TestBuildBadCuspCountSkipsHouses(t *testing.T) {
	prov := &fakeProvider{
		calc: fixedPosition(100, 1),
		houses: func(jd, lat, lng float64, hsys string) (ephemeris.RawHouses, error) {
			return ephemeris.RawHouses{Cusps: []float64{0, 30, 60}}, nil
		},
		ready: true,
	}
	b := NewChartBuilder(prov, nil)

	res, _ := b.Build(context.Background(), query)
	if res.Chart.Houses != nil {
		t.Fatalf("malformed cusps should be treated as absent")
	}
	for _, p := range res.Chart.Planets {
		if p.House != nil {
			t.Fatalf("no house assignment with malformed cusps")
		}
	}
}
