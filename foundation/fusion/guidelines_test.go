package fusion_test

import (
	"reflect"
	"testing"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
	"github.com/studysense/goEmotionFusion/foundation/fusion"
)

func TestGuidelines(t *testing.T) {
	t.Run("branches follow the merged emotion", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			label         emotion.Label
			tone          string
			verbosity     string
			detail        string
			breakNeeded   bool
			encouragement bool
		}{
			{emotion.Happy, "energetic", "normal", "comprehensive", false, true},
			{emotion.Focused, "energetic", "normal", "comprehensive", false, true},
			{emotion.Stressed, "calm", "concise", "simplified", true, true},
			{emotion.Anxious, "calm", "concise", "simplified", true, true},
			{emotion.Tired, "supportive", "minimal", "simplified", true, true},
			{emotion.Sad, "supportive", "minimal", "simplified", true, true},
			{emotion.Confused, "patient", "detailed", "step-by-step", false, true},
			{emotion.Neutral, "professional", "normal", "comprehensive", false, false},
			{emotion.Calm, "professional", "normal", "comprehensive", false, false},
		}

		for _, tt := range tests {
			e := fusion.NewEngine(fusion.DefaultConfig())
			e.SetVoice(emotion.Reading{Label: tt.label, Confidence: 0.9})

			g := e.Guidelines()
			if g.Tone != tt.tone || g.Verbosity != tt.verbosity || g.Detail != tt.detail {
				t.Fatalf("%q: got %s/%s/%s, want %s/%s/%s",
					tt.label, g.Tone, g.Verbosity, g.Detail, tt.tone, tt.verbosity, tt.detail)
			}
			if g.BreakNeeded != tt.breakNeeded {
				t.Fatalf("%q: got breakNeeded %v, want %v", tt.label, g.BreakNeeded, tt.breakNeeded)
			}
			if g.Encouragement != tt.encouragement {
				t.Fatalf("%q: got encouragement %v, want %v", tt.label, g.Encouragement, tt.encouragement)
			}
			if len(g.Suggestions) == 0 {
				t.Fatalf("%q: missing suggestions", tt.label)
			}
		}
	})

	t.Run("break suggestions only where a break is needed", func(t *testing.T) {
		t.Parallel()

		e := fusion.NewEngine(fusion.DefaultConfig())
		e.SetVoice(emotion.Reading{Label: emotion.Stressed, Confidence: 0.9})
		if g := e.Guidelines(); g.BreakSuggestion == "" || g.SupportMessage == "" {
			t.Fatal("stressed guidance is missing break suggestion or support message")
		}

		e.Reset()
		e.SetVoice(emotion.Reading{Label: emotion.Happy, Confidence: 0.9})
		if g := e.Guidelines(); g.BreakSuggestion != "" || g.SupportMessage != "" {
			t.Fatal("happy guidance should not carry break suggestion or support message")
		}
	})

	t.Run("idempotent without state change", func(t *testing.T) {
		t.Parallel()

		e := fusion.NewEngine(fusion.DefaultConfig())
		e.SetVoice(emotion.Reading{Label: emotion.Confused, Confidence: 0.9})

		first := e.Guidelines()
		second := e.Guidelines()
		if !reflect.DeepEqual(first, second) {
			t.Fatal("consecutive calls returned different guidance")
		}

		// Mutating a returned copy must not leak into the table.
		first.Suggestions[0] = "changed"
		if third := e.Guidelines(); third.Suggestions[0] == "changed" {
			t.Fatal("suggestion slice is shared with the table")
		}
	})
}

func TestColors(t *testing.T) {
	t.Run("idempotent lookup per emotion", func(t *testing.T) {
		t.Parallel()

		e := fusion.NewEngine(fusion.DefaultConfig())
		e.SetVoice(emotion.Reading{Label: emotion.Tired, Confidence: 0.9})

		first := e.Colors()
		second := e.Colors()
		if first != second {
			t.Fatal("consecutive calls returned different palettes")
		}
		if first.Primary == "" || first.Gradient == "" {
			t.Fatal("palette is incomplete")
		}
	})

	t.Run("unmapped labels fall back to neutral", func(t *testing.T) {
		t.Parallel()

		e := fusion.NewEngine(fusion.DefaultConfig())
		e.SetVoice(emotion.Reading{Label: emotion.Surprised, Confidence: 0.9})
		surprised := e.Colors()

		e.Reset()
		e.SetVoice(emotion.Reading{Label: emotion.Neutral, Confidence: 0.9})
		neutral := e.Colors()

		if surprised != neutral {
			t.Fatal("surprised did not fall back to the neutral palette")
		}
	})
}
