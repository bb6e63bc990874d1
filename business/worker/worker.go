package worker

import (
	"sync"
	"time"

	"github.com/studysense/goEmotionFusion/foundation/external/dashboard"
	"github.com/studysense/goEmotionFusion/foundation/fusion"
	"github.com/studysense/goEmotionFusion/foundation/pubsub"
	"github.com/studysense/goEmotionFusion/foundation/redis"
	"github.com/studysense/goEmotionFusion/foundation/smoothing"
	"github.com/studysense/goEmotionFusion/foundation/state"
	"go.uber.org/zap"
)

const mergedUpdateTopic = "mergedUpdate"

type Worker struct {
	config Config
	state  *state.State
	logger *zap.SugaredLogger

	engine    *fusion.Engine
	smoother  *smoothing.Smoother
	dashboard *dashboard.Socket
	redis     *redis.Redis
	broker    *pubsub.Broker

	sessionStart time.Time

	wg    sync.WaitGroup
	shut  chan struct{}
	error chan error
}

func Run(s Settings) <-chan error {
	w := &Worker{
		config:       s.Config,
		state:        state.NewState(),
		logger:       s.Logger,
		engine:       s.Engine,
		smoother:     s.Smoother,
		dashboard:    s.Dashboard,
		redis:        s.Redis,
		broker:       pubsub.NewBroker(),
		sessionStart: time.Now(),
		shut:         make(chan struct{}),
		error:        make(chan error),
	}

	if w.redis == nil {
		w.state.Set(state.Redis, false)
	}
	if w.dashboard == nil {
		w.state.Set(state.Dashboard, false)
	}

	operations := []func(){
		w.facialSamplingOperation,
		w.voiceEmotionOperation,
		w.textEmotionOperation,
		w.sessionOperation,
		w.dashboardOperation,
		w.redisOperation,
	}

	g := len(operations)
	w.wg.Add(g)

	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	return w.error
}

func (w *Worker) Shutdown(err error) {
	w.logger.Infow("worker: shutdown: started")
	defer w.logger.Infow("worker: shutdown: completed")

	w.logger.Errorw("worker: shutdown", "ERROR", err)
	w.logger.Infow("worker: shutdown: terminate goroutines")
	close(w.shut)

	w.wg.Wait()

	if err != nil {
		w.error <- err
	}
}

// publishUpdate snapshots the engine and fans the result out to the sink
// operations.
func (w *Worker) publishUpdate() {
	update := Update{
		State:      w.engine.State(),
		Guidelines: w.engine.Guidelines(),
		Colors:     w.engine.Colors(),
	}

	if err := w.broker.Publish(mergedUpdateTopic, update); err != nil {
		w.logger.Errorw("worker: publishUpdate", "ERROR", err)
	}
}
