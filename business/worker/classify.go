package worker

import (
	"errors"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
	"github.com/superfeelapi/goStorySymphony/foundation/external/classifier"
	"github.com/superfeelapi/goStorySymphony/foundation/state"
)

func (w *Worker) classifyOperation() {
	w.logger.Infow("worker: classifyOperation: G started")
	defer w.logger.Infow("worker: classifyOperation: G completed")

	w.logger.Infow("worker: classifyOperation: G listening")
	for {
		select {
		case segment := <-w.textCh:
			go func(segment TextSegment) {
				event, err := w.classify(segment)
				if err != nil {
					w.logger.Errorw("worker: classifyOperation", "ERROR", err)
					return
				}

				// A session that shut down while the call was in flight
				// must not see the event; the arc stays untouched.
				select {
				case w.eventCh <- event:
				case <-w.shut:
				}
			}(segment)

		case <-w.shut:
			w.logger.Infow("worker: classifyOperation: received shut signal")
			return
		}
	}
}

// classify turns one segment into an emotion event. An unavailable
// classifier degrades to the neutral default instead of failing; a label
// outside the vocabulary is a contract violation and is surfaced.
func (w *Worker) classify(segment TextSegment) (emotion.Event, error) {
	if !w.state.Get(state.Classifier) {
		return emotion.NewEvent(emotion.Neutral, 0, segment.Text, segment.CapturedAt), nil
	}

	result, err := classifier.Classify(w.ctx, w.config.ClassifierEndpoint, segment.Text)
	if err != nil {
		if errors.Is(err, classifier.ErrUnavailable) {
			w.logger.Warnw("worker: classifyOperation: falling back to neutral", "reason", err)
			return emotion.NewEvent(emotion.Neutral, 0, segment.Text, segment.CapturedAt), nil
		}
		return emotion.Event{}, err
	}

	label, score := result.Dominant()

	parsed, err := emotion.Parse(label)
	if err != nil {
		return emotion.Event{}, err
	}

	return emotion.NewEvent(parsed, score, segment.Text, segment.CapturedAt), nil
}
