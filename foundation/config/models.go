package config

type Config struct {
	Profiles []Profile `json:"profiles"`
}

// Profile is one deployment tuning profile.
type Profile struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Fusion   Fusion   `json:"fusion"`
	Sampling Sampling `json:"sampling"`
}

type Fusion struct {
	FacialWeight   float64 `json:"facial_weight"`
	VoiceWeight    float64 `json:"voice_weight"`
	TextWeight     float64 `json:"text_weight"`
	SmootherWindow int     `json:"smoother_window"`
	HistoryLimit   int     `json:"history_limit"`
	Fatigue        Fatigue `json:"fatigue"`
}

type Fatigue struct {
	TiredAfterSec     float64 `json:"tired_after_sec"`
	TiredBias         float64 `json:"tired_bias"`
	ExhaustedAfterSec float64 `json:"exhausted_after_sec"`
	ExhaustedBias     float64 `json:"exhausted_bias"`
}

type Sampling struct {
	FacialIntervalMs int `json:"facial_interval_ms"`
	VoiceIntervalMs  int `json:"voice_interval_ms"`
	TextIntervalMs   int `json:"text_interval_ms"`
}
