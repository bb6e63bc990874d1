// Package emotion defines the canonical emotion vocabulary the fusion core
// reasons over, and the mapping from classifier-native categories onto it.
package emotion

import (
	"strings"
	"time"
)

// Label is one of the canonical emotion values.
type Label string

const (
	Happy     Label = "happy"
	Neutral   Label = "neutral"
	Sad       Label = "sad"
	Stressed  Label = "stressed"
	Tired     Label = "tired"
	Focused   Label = "focused"
	Anxious   Label = "anxious"
	Confused  Label = "confused"
	Calm      Label = "calm"
	Surprised Label = "surprised"
)

// Canonical fixes the label enumeration order. Tie-breaking in the smoother
// and the fusion engine follows this order so results stay deterministic.
var Canonical = []Label{
	Happy,
	Neutral,
	Sad,
	Stressed,
	Tired,
	Focused,
	Anxious,
	Confused,
	Calm,
	Surprised,
}

// Distribution maps a classifier-native category name to its probability.
type Distribution map[string]float64

// Reading is the minimal shape the voice and text channels supply.
type Reading struct {
	Label      Label
	Confidence float64
	Timestamp  time.Time
}

// rawOrder fixes the iteration order over the facial classifier's native
// vocabulary. Categories missing from a distribution are skipped.
var rawOrder = []string{
	"neutral",
	"happy",
	"sad",
	"angry",
	"fearful",
	"disgusted",
	"surprised",
}

var rawToCanonical = map[string]Label{
	"happy":     Happy,
	"sad":       Tired,
	"angry":     Stressed,
	"fearful":   Stressed,
	"surprised": Focused,
}

// Dominant picks the winning raw category of a distribution and translates it
// to its canonical label. A category wins only by strictly exceeding the
// neutral category's own score; anything else collapses to neutral.
func Dominant(dist Distribution) (Label, float64) {
	winner := "neutral"
	best := dist["neutral"]

	for _, category := range rawOrder {
		if p, ok := dist[category]; ok && p > best {
			winner = category
			best = p
		}
	}

	if canonical, ok := rawToCanonical[winner]; ok {
		return canonical, best
	}
	return Neutral, best
}

// ParseLabel normalizes a label string coming from an external classifier.
// Unknown values collapse to neutral.
func ParseLabel(s string) Label {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	for _, canonical := range Canonical {
		if l == canonical {
			return l
		}
	}
	return Neutral
}

// ClampConfidence forces a confidence value into [0, 1].
func ClampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}
