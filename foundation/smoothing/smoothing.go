// Package smoothing stabilizes a noisy per-tick classification stream into a
// single label with confidence, resistant to frame-to-frame flicker.
package smoothing

import (
	"sync"
	"time"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
)

const DefaultWindow = 10

// Sample is one smoothed-window entry derived from a raw classification.
type Sample struct {
	Label      emotion.Label
	Confidence float64
	Timestamp  time.Time
}

// Signal is the stabilized output of the smoother. Window holds a copy of the
// recent samples, oldest first.
type Signal struct {
	Label      emotion.Label
	Confidence float64
	Window     []Sample
	LastUpdate time.Time
}

// Smoother keeps a fixed-capacity ring of recent samples and answers with the
// majority label over that window. Safe for use from multiple goroutines.
type Smoother struct {
	mu sync.RWMutex

	samples    []Sample
	head       int
	count      int
	lastUpdate time.Time
}

func New(window int) *Smoother {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Smoother{
		samples: make([]Sample, window),
	}
}

// Ingest maps a raw classification distribution to its canonical label and
// appends it to the window, evicting the oldest sample once full.
func (s *Smoother) Ingest(dist emotion.Distribution, ts time.Time) {
	label, confidence := emotion.Dominant(dist)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples[(s.head+s.count)%len(s.samples)] = Sample{
		Label:      label,
		Confidence: confidence,
		Timestamp:  ts,
	}

	if s.count < len(s.samples) {
		s.count++
	} else {
		s.head = (s.head + 1) % len(s.samples)
	}
	s.lastUpdate = ts
}

// Current computes the majority label over the window, with confidence equal
// to the mean of that label's recorded confidences. Ties break by canonical
// label order. An empty window yields neutral at 0.5.
func (s *Smoother) Current() Signal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.count == 0 {
		return Signal{
			Label:      emotion.Neutral,
			Confidence: 0.5,
		}
	}

	counts := make(map[emotion.Label]int)
	sums := make(map[emotion.Label]float64)
	window := make([]Sample, 0, s.count)

	for i := 0; i < s.count; i++ {
		sample := s.samples[(s.head+i)%len(s.samples)]
		counts[sample.Label]++
		sums[sample.Label] += sample.Confidence
		window = append(window, sample)
	}

	winner := emotion.Neutral
	max := 0
	for _, label := range emotion.Canonical {
		if counts[label] > max {
			winner = label
			max = counts[label]
		}
	}

	return Signal{
		Label:      winner,
		Confidence: sums[winner] / float64(max),
		Window:     window,
		LastUpdate: s.lastUpdate,
	}
}
