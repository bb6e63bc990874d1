package worker

import (
	"time"

	"github.com/studysense/goEmotionFusion/foundation/external/dashboard"
	"github.com/studysense/goEmotionFusion/foundation/fusion"
	"github.com/studysense/goEmotionFusion/foundation/redis"
	"github.com/studysense/goEmotionFusion/foundation/smoothing"
	"go.uber.org/zap"
)

type Settings struct {
	Config
	Logger    *zap.SugaredLogger
	Engine    *fusion.Engine
	Smoother  *smoothing.Smoother
	Dashboard *dashboard.Socket
	Redis     *redis.Redis
}

type Config struct {
	SessionID      string
	ProfileID      string
	FacialEndpoint string
	FacialApiKey   string
	VoiceEndpoint  string
	VoiceApiKey    string
	TextEndpoint   string
	FacialInterval time.Duration
	VoiceInterval  time.Duration
	TextInterval   time.Duration
}

// =====================================================================================================================

// Update is one merged-state snapshot fanned out to the sink operations.
type Update struct {
	State      fusion.State
	Guidelines fusion.Guidelines
	Colors     fusion.ColorScheme
}

// EmotionEventData is the redis payload consumed by the response adaptation
// service.
type EmotionEventData struct {
	SessionID  string  `json:"session_id"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Tone       string  `json:"tone"`
	BreakNeed  bool    `json:"break_needed"`
	Timestamp  int64   `json:"timestamp"`
}
