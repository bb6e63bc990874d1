package worker

import (
	"time"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
	"github.com/studysense/goEmotionFusion/foundation/external/voice"
	"github.com/studysense/goEmotionFusion/foundation/state"
)

func (w *Worker) voiceEmotionOperation() {
	w.logger.Infow("worker: voiceEmotionOperation: G started")
	defer w.logger.Infow("worker: voiceEmotionOperation: G completed")

	defer w.state.Set(state.Voice, false)

	ticker := time.NewTicker(w.config.VoiceInterval)
	defer ticker.Stop()

	w.logger.Infow("worker: voiceEmotionOperation: G listening")
	for {
		select {
		case <-ticker.C:
			if !w.state.Get(state.Voice) {
				return
			}

			resp, err := voice.ToneEmotion(w.config.VoiceEndpoint, w.config.VoiceApiKey)
			if err != nil {
				w.logger.Errorw("worker: voiceEmotionOperation", "ERROR", err)
				continue
			}

			w.engine.SetVoice(emotion.Reading{
				Label:      emotion.ParseLabel(resp.Emotion),
				Confidence: resp.Confidence,
				Timestamp:  time.Now(),
			})
			w.publishUpdate()
			w.logger.Infow("worker: voiceEmotionOperation:", "voice emotion", resp)

		case <-w.shut:
			w.logger.Infow("worker: voiceEmotionOperation: received shut signal")
			return
		}
	}
}
