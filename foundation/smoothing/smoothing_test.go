package smoothing_test

import (
	"math"
	"testing"
	"time"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
	"github.com/studysense/goEmotionFusion/foundation/smoothing"
)

func TestCurrent(t *testing.T) {
	t.Run("empty window defaults to neutral", func(t *testing.T) {
		t.Parallel()

		s := smoothing.New(10)
		sig := s.Current()

		if sig.Label != emotion.Neutral {
			t.Fatalf("got label %q, want %q", sig.Label, emotion.Neutral)
		}
		if sig.Confidence != 0.5 {
			t.Fatalf("got confidence %v, want 0.5", sig.Confidence)
		}
		if len(sig.Window) != 0 {
			t.Fatalf("got window length %d, want 0", len(sig.Window))
		}
	})

	t.Run("majority label wins with mean confidence", func(t *testing.T) {
		t.Parallel()

		s := smoothing.New(10)
		now := time.Now()

		// happy wins twice at 0.8 and 0.6, angry maps to stressed once.
		s.Ingest(emotion.Distribution{"happy": 0.8, "neutral": 0.2}, now)
		s.Ingest(emotion.Distribution{"angry": 0.9, "neutral": 0.1}, now.Add(200*time.Millisecond))
		s.Ingest(emotion.Distribution{"happy": 0.6, "neutral": 0.3}, now.Add(400*time.Millisecond))

		sig := s.Current()
		if sig.Label != emotion.Happy {
			t.Fatalf("got label %q, want %q", sig.Label, emotion.Happy)
		}
		if math.Abs(sig.Confidence-0.7) > 1e-9 {
			t.Fatalf("got confidence %v, want 0.7", sig.Confidence)
		}
	})

	t.Run("neutral keeps the win unless strictly exceeded", func(t *testing.T) {
		t.Parallel()

		s := smoothing.New(10)
		s.Ingest(emotion.Distribution{"happy": 0.4, "neutral": 0.4}, time.Now())

		sig := s.Current()
		if sig.Label != emotion.Neutral {
			t.Fatalf("got label %q, want %q", sig.Label, emotion.Neutral)
		}
	})
}

func TestEviction(t *testing.T) {
	t.Parallel()

	s := smoothing.New(10)
	start := time.Now()

	for i := 0; i < 11; i++ {
		s.Ingest(emotion.Distribution{"happy": 0.9}, start.Add(time.Duration(i)*time.Second))
	}

	sig := s.Current()
	if len(sig.Window) != 10 {
		t.Fatalf("got window length %d, want 10", len(sig.Window))
	}
	if sig.Window[0].Timestamp.Equal(start) {
		t.Fatal("oldest sample was not evicted")
	}
	if want := start.Add(1 * time.Second); !sig.Window[0].Timestamp.Equal(want) {
		t.Fatalf("got oldest timestamp %v, want %v", sig.Window[0].Timestamp, want)
	}
	if want := start.Add(10 * time.Second); !sig.LastUpdate.Equal(want) {
		t.Fatalf("got last update %v, want %v", sig.LastUpdate, want)
	}
}
