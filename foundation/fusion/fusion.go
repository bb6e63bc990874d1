// Package fusion combines the latest reading from up to three emotion
// channels into one merged label with confidence, applies a session-duration
// fatigue bias, and exposes derived response guidance.
package fusion

import (
	"math"
	"sync"
	"time"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
	"github.com/studysense/goEmotionFusion/foundation/smoothing"
)

// Source identifies where a history entry came from.
type Source string

const (
	SourceFacial Source = "facial"
	SourceVoice  Source = "voice"
	SourceText   Source = "text"
	SourceMerged Source = "merged"
)

// Fatigue holds the session-duration thresholds that bias the merged result
// toward tired. Both thresholds apply additively once crossed.
type Fatigue struct {
	TiredAfterSec     float64
	TiredBias         float64
	ExhaustedAfterSec float64
	ExhaustedBias     float64
}

// Config carries the engine tuning values. Weights are fixed per channel and
// normalized only against the channels actually present.
type Config struct {
	FacialWeight float64
	VoiceWeight  float64
	TextWeight   float64
	HistoryLimit int
	Fatigue      Fatigue
}

func DefaultConfig() Config {
	return Config{
		FacialWeight: 0.5,
		VoiceWeight:  0.3,
		TextWeight:   0.2,
		HistoryLimit: 50,
		Fatigue: Fatigue{
			TiredAfterSec:     2700,
			TiredBias:         0.10,
			ExhaustedAfterSec: 5400,
			ExhaustedBias:     0.15,
		},
	}
}

// Entry is one chronological record of an emotion observation.
type Entry struct {
	Emotion   emotion.Label
	Source    Source
	Timestamp time.Time
}

// State is a snapshot of the engine. Channel slots are nil until that channel
// has reported at least once.
type State struct {
	Facial             *smoothing.Signal
	Voice              *emotion.Reading
	Text               *emotion.Reading
	SessionDurationSec float64
	MergedEmotion      emotion.Label
	Confidence         float64
	LastUpdate         time.Time
	History            []Entry
}

// Engine owns the fusion state. Every mutation runs the full
// set-slot, recompute, append-history sequence as one atomic unit.
type Engine struct {
	mu     sync.RWMutex
	config Config

	facial *smoothing.Signal
	voice  *emotion.Reading
	text   *emotion.Reading

	sessionSec float64
	merged     emotion.Label
	confidence float64
	lastUpdate time.Time

	history   []Entry
	histHead  int
	histCount int
}

func NewEngine(config Config) *Engine {
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = DefaultConfig().HistoryLimit
	}
	return &Engine{
		config:     config,
		merged:     emotion.Neutral,
		confidence: 0.5,
		history:    make([]Entry, config.HistoryLimit),
	}
}

func (e *Engine) Config() Config {
	return e.config
}

// SetFacial stores the smoothed facial signal and recomputes the merge.
func (e *Engine) SetFacial(sig smoothing.Signal) {
	now := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	sig.Confidence = emotion.ClampConfidence(sig.Confidence)
	e.facial = &sig
	e.appendLocked(Entry{Emotion: sig.Label, Source: SourceFacial, Timestamp: now})
	e.recomputeLocked(now)
}

// SetVoice stores the latest voice tone reading and recomputes the merge.
func (e *Engine) SetVoice(r emotion.Reading) {
	e.setReading(&e.voice, r, SourceVoice)
}

// SetText stores the latest text sentiment reading and recomputes the merge.
func (e *Engine) SetText(r emotion.Reading) {
	e.setReading(&e.text, r, SourceText)
}

func (e *Engine) setReading(slot **emotion.Reading, r emotion.Reading, src Source) {
	now := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	r.Confidence = emotion.ClampConfidence(r.Confidence)
	*slot = &r
	e.appendLocked(Entry{Emotion: r.Label, Source: src, Timestamp: now})
	e.recomputeLocked(now)
}

// SetSessionDuration stores the elapsed session time and recomputes the
// merge. Duration alone can flip the merged label through the fatigue bias.
func (e *Engine) SetSessionDuration(seconds float64) {
	now := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.sessionSec = seconds
	e.recomputeLocked(now)
}

// recomputeLocked runs the weighted merge. Callers must hold the write lock.
func (e *Engine) recomputeLocked(now time.Time) {
	totals := make(map[emotion.Label]float64)
	var present float64

	if e.facial != nil {
		totals[e.facial.Label] += e.config.FacialWeight
		present += e.config.FacialWeight
	}
	if e.voice != nil {
		totals[e.voice.Label] += e.config.VoiceWeight
		present += e.config.VoiceWeight
	}
	if e.text != nil {
		totals[e.text.Label] += e.config.TextWeight
		present += e.config.TextWeight
	}

	if present == 0 {
		e.merged = emotion.Neutral
		e.confidence = 0.5
	} else {
		for label := range totals {
			totals[label] /= present
		}

		// Fatigue bias is additive and deliberately not renormalized; only
		// the winning total is capped on the way out.
		if e.sessionSec > e.config.Fatigue.TiredAfterSec {
			totals[emotion.Tired] += e.config.Fatigue.TiredBias
		}
		if e.sessionSec > e.config.Fatigue.ExhaustedAfterSec {
			totals[emotion.Tired] += e.config.Fatigue.ExhaustedBias
		}

		winner := emotion.Neutral
		var best float64
		for _, label := range emotion.Canonical {
			if totals[label] > best {
				winner = label
				best = totals[label]
			}
		}

		e.merged = winner
		e.confidence = math.Min(best, 1)
	}

	e.lastUpdate = now
	e.appendLocked(Entry{Emotion: e.merged, Source: SourceMerged, Timestamp: now})
}

func (e *Engine) appendLocked(entry Entry) {
	if e.histCount < len(e.history) {
		e.history[(e.histHead+e.histCount)%len(e.history)] = entry
		e.histCount++
		return
	}
	e.history[e.histHead] = entry
	e.histHead = (e.histHead + 1) % len(e.history)
}

// State returns a defensive copy of the engine state; mutating the returned
// value never touches engine internals.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := State{
		SessionDurationSec: e.sessionSec,
		MergedEmotion:      e.merged,
		Confidence:         e.confidence,
		LastUpdate:         e.lastUpdate,
		History:            make([]Entry, 0, e.histCount),
	}

	if e.facial != nil {
		sig := *e.facial
		sig.Window = append([]smoothing.Sample(nil), e.facial.Window...)
		s.Facial = &sig
	}
	if e.voice != nil {
		r := *e.voice
		s.Voice = &r
	}
	if e.text != nil {
		r := *e.text
		s.Text = &r
	}

	for i := 0; i < e.histCount; i++ {
		s.History = append(s.History, e.history[(e.histHead+i)%len(e.history)])
	}

	return s
}

// Guidelines returns the response guidance for the current merged emotion.
func (e *Engine) Guidelines() Guidelines {
	e.mu.RLock()
	merged := e.merged
	e.mu.RUnlock()

	return guidelinesFor(merged)
}

// Colors returns the color scheme for the current merged emotion.
func (e *Engine) Colors() ColorScheme {
	e.mu.RLock()
	merged := e.merged
	e.mu.RUnlock()

	return colorsFor(merged)
}

// Reset restores the engine to its creation-time defaults, clearing history.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.facial = nil
	e.voice = nil
	e.text = nil
	e.sessionSec = 0
	e.merged = emotion.Neutral
	e.confidence = 0.5
	e.lastUpdate = time.Time{}
	e.histHead = 0
	e.histCount = 0
}
