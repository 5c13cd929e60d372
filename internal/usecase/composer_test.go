package usecase

import (
	"strings"
	"testing"

	"AstroChart/internal/domain/models"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func sampleChart() *models.Chart {
	return &models.Chart{
		Planets: []models.CelestialBody{
			{Name: "Sun", Degree: ptrFloat(165.5), Sign: "Virgo", House: ptrInt(10)},
			{Name: "Moon", Degree: ptrFloat(27.25), Sign: "Aries", House: ptrInt(5)},
			{Name: "Mercury", Degree: ptrFloat(150.0), Sign: "Virgo"},
		},
		Angles: &models.ChartAngles{
			Asc: models.Angle{Degree: 102.0, Sign: "Cancer"},
			MC:  models.Angle{Degree: 12.0, Sign: "Aries"},
		},
	}
}

func TestSummarize(t *testing.T) {
	cp := NewComposer()
	got := cp.Summarize(sampleChart())
	want := "Sun 165.50° Virgo H10; Moon 27.25° Aries H5; Asc 102.00° Cancer H-"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummarizeMissingBodies(t *testing.T) {
	cp := NewComposer()

	// No Sun, unknown Moon, no angles: only present entries appear.
	chart := &models.Chart{
		Planets: []models.CelestialBody{
			{Name: "Moon", Sign: "Unknown"},
			{Name: "Mars", Degree: ptrFloat(10), Sign: "Aries"},
		},
	}
	if got := cp.Summarize(chart); got != "" {
		t.Fatalf("got %q, want empty", got)
	}

	if got := cp.Summarize(nil); got != "" {
		t.Fatalf("nil chart: got %q, want empty", got)
	}
	if got := cp.Summarize(&models.Chart{}); got != "" {
		t.Fatalf("empty chart: got %q, want empty", got)
	}
}

func TestRoutePriority(t *testing.T) {
	cp := NewComposer()

	// career is checked before love
	got := cp.Route("What about my career and love life?")
	if got != topics[0].guidance {
		t.Fatalf("expected career guidance, got %q", got)
	}
}

func TestRouteTopics(t *testing.T) {
	cp := NewComposer()

	cases := []struct {
		msg  string
		want string
	}{
		{"how is my WORK going", topics[0].guidance},
		{"will I find romance", topics[1].guidance},
		{"what is the meaning of it all", topics[2].guidance},
		{"tell me about my energy levels", topics[3].guidance},
		{"hello there", genericGuidance},
		{"", genericGuidance},
	}
	for _, c := range cases {
		if got := cp.Route(c.msg); got != c.want {
			t.Fatalf("Route(%q) = %q, want %q", c.msg, got, c.want)
		}
	}
}

func TestRouteTotal(t *testing.T) {
	cp := NewComposer()

	fixed := map[string]bool{genericGuidance: true}
	for _, tp := range topics {
		fixed[tp.guidance] = true
	}
	for _, msg := range []string{"", "x", "love work purpose health", strings.Repeat("z", 1000)} {
		if !fixed[cp.Route(msg)] {
			t.Fatalf("Route(%q) returned a string outside the fixed set", msg)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	cp := NewComposer()
	chart := sampleChart()

	a := cp.Compose("what about my career?", chart)
	b := cp.Compose("what about my career?", chart)
	if a != b {
		t.Fatalf("compose not deterministic:\n%q\n%q", a, b)
	}
	if !strings.HasPrefix(a, "Astrologer: I see your chart: ") {
		t.Fatalf("unexpected prefix: %q", a)
	}
	if !strings.HasSuffix(a, "What would you like to explore next?") {
		t.Fatalf("unexpected suffix: %q", a)
	}
	if !strings.Contains(a, "Sun 165.50° Virgo H10") {
		t.Fatalf("missing summary: %q", a)
	}
}
