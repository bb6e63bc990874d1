package worker

import (
	"time"

	"github.com/studysense/goEmotionFusion/foundation/pubsub"
	"github.com/studysense/goEmotionFusion/foundation/state"
)

// redisOperation mirrors merged-emotion events onto the redis channel read by
// the response adaptation service. Redis being down never stops the session;
// the flag just flips off.
func (w *Worker) redisOperation() {
	w.logger.Infow("worker: redisOperation: G started")
	defer w.logger.Infow("worker: redisOperation: G completed")

	if !w.state.Get(state.Redis) {
		return
	}

	sub := pubsub.NewSubscriber(10)
	w.broker.Subscribe(mergedUpdateTopic, sub)
	defer w.broker.UnSubscribe(mergedUpdateTopic, sub)

	dataCh := sub.GetChannel()

	w.logger.Infow("worker: redisOperation: G listening")
	for {
		select {
		case data := <-dataCh:
			update, ok := data.(Update)
			if !ok {
				continue
			}

			if !w.state.Get(state.Redis) {
				return
			}

			event := EmotionEventData{
				SessionID:  w.config.SessionID,
				Emotion:    string(update.State.MergedEmotion),
				Confidence: update.State.Confidence,
				Tone:       update.Guidelines.Tone,
				BreakNeed:  update.Guidelines.BreakNeeded,
				Timestamp:  time.Now().Unix(),
			}
			if err := w.redis.Produce(event); err != nil {
				w.state.Set(state.Redis, false)
				w.logger.Errorw("worker: redisOperation", "ERROR", err)
			}

		case <-w.shut:
			w.logger.Infow("worker: redisOperation: received shut signal")
			return
		}
	}
}
