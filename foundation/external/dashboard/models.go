package dashboard

type SessionData struct {
	SessionID string `json:"session_id"`
	ProfileID string `json:"profile_id"`
}

type EmotionData struct {
	SessionID  string  `json:"session_id"`
	DataID     string  `json:"data_id"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	DurationS  float64 `json:"session_duration_sec"`
}

type GuidanceData struct {
	SessionID       string   `json:"session_id"`
	DataID          string   `json:"data_id"`
	Tone            string   `json:"tone"`
	Verbosity       string   `json:"verbosity"`
	Detail          string   `json:"detail"`
	BreakNeeded     bool     `json:"break_needed"`
	BreakSuggestion string   `json:"break_suggestion,omitempty"`
	Suggestions     []string `json:"suggestions"`
	PrimaryColor    string   `json:"primary_color"`
	BackgroundColor string   `json:"background_color"`
	Gradient        string   `json:"gradient"`
}
