// Package worker runs one narration session: audio and text segments come
// in, classified emotion flows through the arc tracker and mapping table,
// and synchronized parameter frames go out on the session's topic.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
	"github.com/superfeelapi/goStorySymphony/business/mapping"
	"github.com/superfeelapi/goStorySymphony/business/timeline"
	"github.com/superfeelapi/goStorySymphony/foundation/pubsub"
	"github.com/superfeelapi/goStorySymphony/foundation/state"
)

type Worker struct {
	config Config
	state  *state.State
	logger *zap.SugaredLogger

	tracker *emotion.Tracker
	table   *mapping.Table
	clock   *timeline.Clock
	broker  *pubsub.Broker

	ctx    context.Context
	cancel context.CancelFunc

	wg       sync.WaitGroup
	shut     chan struct{}
	shutOnce sync.Once
	error    chan error

	audioCh    chan AudioSegment
	textCh     chan TextSegment
	eventCh    chan emotion.Event
	smoothedCh chan emotion.Event
	readyCh    chan timeline.Renderer
}

func Run(s Settings) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{
		config:     s.Config,
		state:      state.NewState(),
		logger:     s.Logger,
		tracker:    emotion.NewTracker(s.Config.DwellDuration),
		table:      s.Table,
		clock:      timeline.NewClock(s.Config.MinFrameInterval),
		broker:     s.Broker,
		ctx:        ctx,
		cancel:     cancel,
		shut:       make(chan struct{}),
		error:      make(chan error, 1),
		audioCh:    make(chan AudioSegment, 10),
		textCh:     make(chan TextSegment, 10),
		eventCh:    make(chan emotion.Event, 10),
		smoothedCh: make(chan emotion.Event, 10),
		readyCh:    make(chan timeline.Renderer, 2),
	}

	if w.config.ClassifierEndpoint == "" {
		w.state.Set(state.Classifier, false)
	}
	if w.config.TranscriberEndpoint == "" {
		w.state.Set(state.Transcriber, false)
	}

	operations := []func(){
		w.transcribeOperation,
		w.classifyOperation,
		w.trackOperation,
		w.dispatchOperation,
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

	return w
}

// Error reports a fatal session error, if any, once the worker stops.
func (w *Worker) Error() <-chan error {
	return w.error
}

// Topic is the broker topic this session's frames and updates go out on.
func (w *Worker) Topic() string {
	return "session:" + w.config.SessionID
}

// Arc exposes the session history for replay after playback stops.
func (w *Worker) Arc() *emotion.Arc {
	return w.tracker.Arc()
}

// =====================================================================================================================
// Inbound session operations. All are safe to call from the transport
// goroutine and become no-ops once the worker is shut.

// SubmitText accepts a typed narration segment.
func (w *Worker) SubmitText(text string) {
	if text == "" {
		return
	}
	select {
	case w.textCh <- TextSegment{Text: text, CapturedAt: time.Now()}:
	case <-w.shut:
	}
}

// SubmitAudio accepts a captured audio segment for transcription.
func (w *Worker) SubmitAudio(data []byte) {
	if len(data) == 0 {
		return
	}
	select {
	case w.audioCh <- AudioSegment{Data: data, CapturedAt: time.Now()}:
	case <-w.shut:
	}
}

// RendererReady records that one renderer can now play.
func (w *Worker) RendererReady(r timeline.Renderer) {
	select {
	case w.readyCh <- r:
	case <-w.shut:
	}
}

// =====================================================================================================================

// Shutdown ends the session: the clock stops scheduling, in-flight
// classifications are cancelled without touching the arc, and every
// operation goroutine drains. The arc itself survives for replay.
func (w *Worker) Shutdown(err error) {
	w.shutOnce.Do(func() {
		w.logger.Infow("worker: shutdown: started", "sessionID", w.config.SessionID)
		defer w.logger.Infow("worker: shutdown: completed", "sessionID", w.config.SessionID)

		w.clock.Stop()
		w.cancel()
		close(w.shut)

		w.wg.Wait()

		if err != nil {
			w.logger.Errorw("worker: shutdown", "ERROR", err)
			w.error <- err
		}
		close(w.error)
	})
}
