package usecase

import (
	"fmt"
	"strings"

	"AstroChart/internal/domain/models"
)

const (
	composerPrefix  = "Astrologer"
	composerClosing = "What would you like to explore next?"
)

// topic is one keyword-routed guidance entry. Topics are checked in slice
// order; the first match wins.
type topic struct {
	name     string
	keywords []string
	guidance string
}

var topics = []topic{
	{
		name:     "career",
		keywords: []string{"career", "work", "job", "profession"},
		guidance: "Your tenth house speaks of ambition: steady effort now compounds into recognition later.",
	},
	{
		name:     "love",
		keywords: []string{"love", "relationship", "partner", "romance"},
		guidance: "Venus asks for patience: real connection favors those who listen before they speak.",
	},
	{
		name:     "purpose",
		keywords: []string{"purpose", "life", "meaning", "destiny"},
		guidance: "The node points forward: purpose is built from small choices aligned with your Sun.",
	},
	{
		name:     "health",
		keywords: []string{"health", "wellbeing", "energy", "body"},
		guidance: "The sixth house counsels rhythm: rest and routine restore what urgency depletes.",
	},
}

const genericGuidance = "The stars are open to any question: ask about career, love, purpose, or health."

// Composer produces short advisory replies from a message and a chart.
type Composer struct{}

func NewComposer() *Composer { return &Composer{} }

// Summarize formats the Sun, the Moon, and the ascendant as
// "<Body> <degree>° <sign> H<house-or-dash>" joined with "; ". Missing
// bodies are omitted; any internal failure yields an empty string.
func (cp *Composer) Summarize(chart *models.Chart) (summary string) {
	defer func() {
		if r := recover(); r != nil {
			summary = ""
		}
	}()

	if chart == nil {
		return ""
	}

	parts := make([]string, 0, 3)
	for _, name := range []string{"Sun", "Moon"} {
		if p := findPlanet(chart.Planets, name); p != nil && p.Degree != nil {
			parts = append(parts, formatEntry(name, *p.Degree, p.Sign, p.House))
		}
	}
	if chart.Angles != nil {
		asc := chart.Angles.Asc
		parts = append(parts, formatEntry("Asc", asc.Degree, asc.Sign, nil))
	}

	return strings.Join(parts, "; ")
}

// Route lower-cases the message and returns the guidance for the first
// matching topic, or a generic prompt. Total: every input maps to exactly
// one of five fixed strings.
func (cp *Composer) Route(message string) string {
	lowered := strings.ToLower(message)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lowered, kw) {
				return t.guidance
			}
		}
	}
	return genericGuidance
}

// Compose builds the full reply. Deterministic given identical inputs.
func (cp *Composer) Compose(message string, chart *models.Chart) string {
	return fmt.Sprintf("%s: I see your chart: %s. %s %s",
		composerPrefix, cp.Summarize(chart), cp.Route(message), composerClosing)
}

func findPlanet(planets []models.CelestialBody, name string) *models.CelestialBody {
	for i := range planets {
		if planets[i].Name == name {
			return &planets[i]
		}
	}
	return nil
}

func formatEntry(name string, degree float64, sign string, house *int) string {
	h := "-"
	if house != nil {
		h = fmt.Sprintf("%d", *house)
	}
	return fmt.Sprintf("%s %.2f° %s H%s", name, degree, sign, h)
}
