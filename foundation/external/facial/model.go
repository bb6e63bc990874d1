package facial

// Result is one facial expression classification: a probability per
// classifier-native category (neutral, happy, sad, angry, fearful, disgusted,
// surprised).
type Result struct {
	Expressions map[string]float64 `json:"expressions"`
	CapturedAt  int64              `json:"captured_at"`
}
