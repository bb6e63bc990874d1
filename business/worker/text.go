package worker

import (
	"time"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
	"github.com/studysense/goEmotionFusion/foundation/external/text"
	"github.com/studysense/goEmotionFusion/foundation/state"
)

func (w *Worker) textEmotionOperation() {
	w.logger.Infow("worker: textEmotionOperation: G started")
	defer w.logger.Infow("worker: textEmotionOperation: G completed")

	defer w.state.Set(state.Text, false)

	ticker := time.NewTicker(w.config.TextInterval)
	defer ticker.Stop()

	w.logger.Infow("worker: textEmotionOperation: G listening")
	for {
		select {
		case <-ticker.C:
			if !w.state.Get(state.Text) {
				return
			}

			resp, err := text.Sentiment(w.config.TextEndpoint)
			if err != nil {
				w.logger.Errorw("worker: textEmotionOperation", "ERROR", err)
				continue
			}

			w.engine.SetText(emotion.Reading{
				Label:      emotion.ParseLabel(resp.Sentiment),
				Confidence: resp.Confidence,
				Timestamp:  time.Now(),
			})
			w.publishUpdate()
			w.logger.Infow("worker: textEmotionOperation:", "text emotion", resp)

		case <-w.shut:
			w.logger.Infow("worker: textEmotionOperation: received shut signal")
			return
		}
	}
}
