package fusion

import "github.com/studysense/goEmotionFusion/foundation/emotion"

// VoicePacing tunes the spoken-response delivery for an emotional state.
type VoicePacing struct {
	Pitch         string
	Pace          string
	TargetEmotion emotion.Label
}

// Guidelines is the response guidance derived from the merged emotion.
type Guidelines struct {
	Tone            string
	Verbosity       string
	Detail          string
	BreakNeeded     bool
	Encouragement   bool
	Suggestions     []string
	BreakSuggestion string
	Recommendation  string
	EmojiFrequency  string
	SupportMessage  string
	Pacing          VoicePacing
}

const supportMessage = "Remember: learning is a journey, not a destination. You're doing great!"

// guidelineTable is static configuration data. Labels without an entry fall
// back to the neutral guidance.
var guidelineTable = map[emotion.Label]Guidelines{
	emotion.Happy: {
		Tone:           "energetic",
		Verbosity:      "normal",
		Detail:         "comprehensive",
		Encouragement:  true,
		Suggestions:    []string{"That's awesome!", "You're doing great!", "Keep this momentum!"},
		Recommendation: "You're in a great mood! This is a perfect time to tackle challenging concepts. Keep going!",
		EmojiFrequency: "high",
		Pacing:         VoicePacing{Pitch: "bright", Pace: "upbeat", TargetEmotion: emotion.Happy},
	},
	emotion.Focused: {
		Tone:           "energetic",
		Verbosity:      "normal",
		Detail:         "comprehensive",
		Encouragement:  true,
		Suggestions:    []string{"Let's break this down.", "Here's the structured approach."},
		Recommendation: "You're in deep focus. This is ideal for learning complex topics. Make the most of it!",
		EmojiFrequency: "low",
		Pacing:         VoicePacing{Pitch: "steady", Pace: "measured", TargetEmotion: emotion.Focused},
	},
	emotion.Stressed: {
		Tone:            "calm",
		Verbosity:       "concise",
		Detail:          "simplified",
		BreakNeeded:     true,
		Encouragement:   true,
		Suggestions:     []string{"I understand. Let's take this slow.", "Breathe. You're doing fine."},
		BreakSuggestion: "Consider a 2-minute breathing exercise before we continue.",
		Recommendation:  "You're stressed. Remember: you can do this. Take short breaks and breathe. One step at a time.",
		EmojiFrequency:  "low",
		SupportMessage:  supportMessage,
		Pacing:          VoicePacing{Pitch: "low", Pace: "slow", TargetEmotion: emotion.Calm},
	},
	emotion.Anxious: {
		Tone:            "calm",
		Verbosity:       "concise",
		Detail:          "simplified",
		BreakNeeded:     true,
		Encouragement:   true,
		Suggestions:     []string{"You're safe.", "Let's focus on one thing.", "I'm here to help."},
		BreakSuggestion: "Try the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
		Recommendation:  "You're anxious. That's okay. Let's take this slowly and focus on what you can control.",
		EmojiFrequency:  "low",
		SupportMessage:  supportMessage,
		Pacing:          VoicePacing{Pitch: "low", Pace: "slow", TargetEmotion: emotion.Calm},
	},
	emotion.Tired: {
		Tone:            "supportive",
		Verbosity:       "minimal",
		Detail:          "simplified",
		BreakNeeded:     true,
		Encouragement:   true,
		Suggestions:     []string{"Let's keep it simple.", "One thing at a time.", "You're doing well!"},
		BreakSuggestion: "Take a 5-10 minute break. Stretch, get water, or take a short walk.",
		Recommendation:  "You're tired. It's okay to slow down. Short bursts of learning with breaks help more than pushing through.",
		EmojiFrequency:  "medium",
		SupportMessage:  supportMessage,
		Pacing:          VoicePacing{Pitch: "soft", Pace: "slow", TargetEmotion: emotion.Calm},
	},
	emotion.Sad: {
		Tone:            "supportive",
		Verbosity:       "minimal",
		Detail:          "simplified",
		BreakNeeded:     true,
		Encouragement:   true,
		Suggestions:     []string{"That's okay.", "You're stronger than you think.", "One step at a time."},
		BreakSuggestion: "How about a short break to refresh? You deserve it.",
		Recommendation:  "I sense you're feeling down. Learning can help, but be gentle with yourself. Progress is progress.",
		EmojiFrequency:  "medium",
		SupportMessage:  supportMessage,
		Pacing:          VoicePacing{Pitch: "warm", Pace: "gentle", TargetEmotion: emotion.Happy},
	},
	emotion.Confused: {
		Tone:           "patient",
		Verbosity:      "detailed",
		Detail:         "step-by-step",
		Encouragement:  true,
		Suggestions:    []string{"Let me explain differently.", "Think of it like...", "Does this make sense?"},
		Recommendation: "You're confused, which is normal when learning! Let's clarify step by step.",
		EmojiFrequency: "high",
		Pacing:         VoicePacing{Pitch: "even", Pace: "slow", TargetEmotion: emotion.Focused},
	},
	emotion.Neutral: {
		Tone:           "professional",
		Verbosity:      "normal",
		Detail:         "comprehensive",
		Suggestions:    []string{"Here's what you need to know.", "Let me explain this concept."},
		Recommendation: "You're in neutral state. Good for balanced learning. Maintain your pace.",
		EmojiFrequency: "medium",
		Pacing:         VoicePacing{Pitch: "neutral", Pace: "normal", TargetEmotion: emotion.Neutral},
	},
	emotion.Calm: {
		Tone:           "professional",
		Verbosity:      "normal",
		Detail:         "comprehensive",
		Suggestions:    []string{"Take your time.", "You've got this.", "Let's approach this calmly."},
		Recommendation: "You're calm and steady. Great for consistent, steady learning progress.",
		EmojiFrequency: "medium",
		Pacing:         VoicePacing{Pitch: "soft", Pace: "steady", TargetEmotion: emotion.Calm},
	},
}

func guidelinesFor(label emotion.Label) Guidelines {
	g, ok := guidelineTable[label]
	if !ok {
		g = guidelineTable[emotion.Neutral]
	}

	g.Suggestions = append([]string(nil), g.Suggestions...)
	return g
}
