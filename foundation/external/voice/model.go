package voice

type Result struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}
