package worker

import (
	"time"

	"github.com/google/uuid"
	"github.com/studysense/goEmotionFusion/foundation/external/dashboard"
	"github.com/studysense/goEmotionFusion/foundation/pubsub"
	"github.com/studysense/goEmotionFusion/foundation/state"
)

func (w *Worker) dashboardOperation() {
	w.logger.Infow("worker: dashboardOperation: G started")
	defer w.logger.Infow("worker: dashboardOperation: G completed")

	defer w.state.Set(state.Dashboard, false)

	if !w.state.Get(state.Dashboard) {
		return
	}

	sub := pubsub.NewSubscriber(10)
	w.broker.Subscribe(mergedUpdateTopic, sub)
	defer w.broker.UnSubscribe(mergedUpdateTopic, sub)

	dataCh := sub.GetChannel()

	// Announce the session before streaming updates.
	err := w.dashboard.SendData(dashboard.SessionEvent, dashboard.SessionData{
		SessionID: w.config.SessionID,
		ProfileID: w.config.ProfileID,
	})
	if err != nil {
		go w.Shutdown(err)
		return
	}

	// Keeping the connection alive
	keepAlive := time.NewTicker(10 * time.Second)
	defer keepAlive.Stop()

	w.logger.Infow("worker: dashboardOperation: G listening")
	for {
		select {
		case <-keepAlive.C:
			if err := w.dashboard.SendData(dashboard.KeepAliveEvent, nil); err != nil {
				go w.Shutdown(err)
				return
			}

		case data := <-dataCh:
			update, ok := data.(Update)
			if !ok {
				continue
			}

			dataID := uuid.New().String()

			err := w.dashboard.SendData(dashboard.EmotionEvent, dashboard.EmotionData{
				SessionID:  w.config.SessionID,
				DataID:     dataID,
				Emotion:    string(update.State.MergedEmotion),
				Confidence: update.State.Confidence,
				DurationS:  update.State.SessionDurationSec,
			})
			if err != nil {
				w.logger.Errorw("worker: dashboardOperation: emotion update", "ERROR", err)
				continue
			}

			err = w.dashboard.SendData(dashboard.GuidanceEvent, dashboard.GuidanceData{
				SessionID:       w.config.SessionID,
				DataID:          dataID,
				Tone:            update.Guidelines.Tone,
				Verbosity:       update.Guidelines.Verbosity,
				Detail:          update.Guidelines.Detail,
				BreakNeeded:     update.Guidelines.BreakNeeded,
				BreakSuggestion: update.Guidelines.BreakSuggestion,
				Suggestions:     update.Guidelines.Suggestions,
				PrimaryColor:    update.Colors.Primary,
				BackgroundColor: update.Colors.Background,
				Gradient:        update.Colors.Gradient,
			})
			if err != nil {
				w.logger.Errorw("worker: dashboardOperation: guidance update", "ERROR", err)
			}

		case <-w.shut:
			w.logger.Infow("worker: dashboardOperation: received shut signal")
			return
		}
	}
}
