package worker

import (
	"time"
)

// sessionOperation advances the engine's session duration once a second. The
// duration alone can flip the merged label through the fatigue bias, so an
// update is published whenever the label changes between ticks.
func (w *Worker) sessionOperation() {
	w.logger.Infow("worker: sessionOperation: G started")
	defer w.logger.Infow("worker: sessionOperation: G completed")

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	fatigue := w.engine.Config().Fatigue
	var tiredLogged, exhaustedLogged bool

	lastMerged := w.engine.State().MergedEmotion

	w.logger.Infow("worker: sessionOperation: G listening")
	for {
		select {
		case <-ticker.C:
			elapsed := time.Since(w.sessionStart).Seconds()
			w.engine.SetSessionDuration(elapsed)

			if !tiredLogged && elapsed > fatigue.TiredAfterSec {
				tiredLogged = true
				w.logger.Infow("worker: sessionOperation: fatigue threshold crossed", "elapsed", elapsed)
			}
			if !exhaustedLogged && elapsed > fatigue.ExhaustedAfterSec {
				exhaustedLogged = true
				w.logger.Infow("worker: sessionOperation: exhaustion threshold crossed", "elapsed", elapsed)
			}

			if merged := w.engine.State().MergedEmotion; merged != lastMerged {
				lastMerged = merged
				w.logger.Infow("worker: sessionOperation: merged emotion changed", "emotion", merged)
				w.publishUpdate()
			}

		case <-w.shut:
			w.logger.Infow("worker: sessionOperation: received shut signal")
			return
		}
	}
}
