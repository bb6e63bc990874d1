package worker

import (
	"time"

	"github.com/studysense/goEmotionFusion/foundation/emotion"
	"github.com/studysense/goEmotionFusion/foundation/external/facial"
	"github.com/studysense/goEmotionFusion/foundation/state"
)

// facialSamplingOperation polls the facial classifier on a fixed cadence,
// feeds the smoother and pushes the stabilized signal into the fusion engine.
func (w *Worker) facialSamplingOperation() {
	w.logger.Infow("worker: facialSamplingOperation: G started")
	defer w.logger.Infow("worker: facialSamplingOperation: G completed")

	defer w.state.Set(state.Facial, false)

	ticker := time.NewTicker(w.config.FacialInterval)
	defer ticker.Stop()

	w.logger.Infow("worker: facialSamplingOperation: G listening")
	for {
		select {
		case <-ticker.C:
			if !w.state.Get(state.Facial) {
				return
			}

			resp, err := facial.Classify(w.config.FacialEndpoint, w.config.FacialApiKey)
			if err != nil {
				w.logger.Errorw("worker: facialSamplingOperation", "ERROR", err)
				continue
			}

			w.smoother.Ingest(emotion.Distribution(resp.Expressions), time.Now())
			w.engine.SetFacial(w.smoother.Current())
			w.publishUpdate()

		case <-w.shut:
			w.logger.Infow("worker: facialSamplingOperation: received shut signal")
			return
		}
	}
}
