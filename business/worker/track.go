package worker

import (
	"errors"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
)

// trackOperation applies events to the arc strictly in arrival order. It
// is the only goroutine that touches the tracker, so no lock guards the
// arc.
func (w *Worker) trackOperation() {
	w.logger.Infow("worker: trackOperation: G started")
	defer w.logger.Infow("worker: trackOperation: G completed")

	defer close(w.smoothedCh)

	w.logger.Infow("worker: trackOperation: G listening")
	for {
		select {
		case event := <-w.eventCh:
			smoothed, err := w.tracker.Ingest(event)
			if err != nil {
				if errors.Is(err, emotion.ErrOutOfOrderEvent) {
					w.logger.Warnw("worker: trackOperation: dropping out-of-order event",
						"label", event.Label, "timestamp", event.Timestamp)
					continue
				}
				go w.Shutdown(err)
				return
			}

			select {
			case w.smoothedCh <- smoothed:
			case <-w.shut:
				return
			}

		case <-w.shut:
			w.logger.Infow("worker: trackOperation: received shut signal")
			return
		}
	}
}
