package fusion

import "github.com/studysense/goEmotionFusion/foundation/emotion"

// ColorScheme is the UI palette for an emotional state.
type ColorScheme struct {
	Primary    string
	Secondary  string
	Background string
	Text       string
	Accent     string
	Gradient   string
}

// colorTable holds the nine fixed palettes. Labels without an entry, surprised
// included, fall back to the neutral palette.
var colorTable = map[emotion.Label]ColorScheme{
	emotion.Happy: {
		Primary:    "#FFD54F",
		Secondary:  "#FFB300",
		Background: "#FFFDE7",
		Text:       "#4E342E",
		Accent:     "#FF7043",
		Gradient:   "linear-gradient(135deg, #FFD54F 0%, #FF7043 100%)",
	},
	emotion.Focused: {
		Primary:    "#42A5F5",
		Secondary:  "#1E88E5",
		Background: "#E3F2FD",
		Text:       "#0D47A1",
		Accent:     "#26C6DA",
		Gradient:   "linear-gradient(135deg, #42A5F5 0%, #26C6DA 100%)",
	},
	emotion.Neutral: {
		Primary:    "#90A4AE",
		Secondary:  "#607D8B",
		Background: "#FAFAFA",
		Text:       "#263238",
		Accent:     "#78909C",
		Gradient:   "linear-gradient(135deg, #90A4AE 0%, #607D8B 100%)",
	},
	emotion.Calm: {
		Primary:    "#80CBC4",
		Secondary:  "#26A69A",
		Background: "#E0F2F1",
		Text:       "#004D40",
		Accent:     "#4DB6AC",
		Gradient:   "linear-gradient(135deg, #80CBC4 0%, #26A69A 100%)",
	},
	emotion.Stressed: {
		Primary:    "#81D4FA",
		Secondary:  "#4FC3F7",
		Background: "#E1F5FE",
		Text:       "#01579B",
		Accent:     "#B3E5FC",
		Gradient:   "linear-gradient(135deg, #81D4FA 0%, #4FC3F7 100%)",
	},
	emotion.Tired: {
		Primary:    "#B39DDB",
		Secondary:  "#9575CD",
		Background: "#EDE7F6",
		Text:       "#311B92",
		Accent:     "#D1C4E9",
		Gradient:   "linear-gradient(135deg, #B39DDB 0%, #9575CD 100%)",
	},
	emotion.Sad: {
		Primary:    "#A5D6A7",
		Secondary:  "#81C784",
		Background: "#E8F5E9",
		Text:       "#1B5E20",
		Accent:     "#C8E6C9",
		Gradient:   "linear-gradient(135deg, #A5D6A7 0%, #81C784 100%)",
	},
	emotion.Confused: {
		Primary:    "#FFCC80",
		Secondary:  "#FFB74D",
		Background: "#FFF3E0",
		Text:       "#E65100",
		Accent:     "#FFE0B2",
		Gradient:   "linear-gradient(135deg, #FFCC80 0%, #FFB74D 100%)",
	},
	emotion.Anxious: {
		Primary:    "#B0BEC5",
		Secondary:  "#90CAF9",
		Background: "#ECEFF1",
		Text:       "#37474F",
		Accent:     "#CFD8DC",
		Gradient:   "linear-gradient(135deg, #B0BEC5 0%, #90CAF9 100%)",
	},
}

func colorsFor(label emotion.Label) ColorScheme {
	if scheme, ok := colorTable[label]; ok {
		return scheme
	}
	return colorTable[emotion.Neutral]
}
