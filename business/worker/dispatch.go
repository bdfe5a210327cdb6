package worker

import (
	"github.com/superfeelapi/goStorySymphony/business/emotion"
	"github.com/superfeelapi/goStorySymphony/business/mapping"
	"github.com/superfeelapi/goStorySymphony/business/timeline"
	"github.com/superfeelapi/goStorySymphony/foundation/state"
)

// dispatchOperation maps smoothed events to parameter pairs, stamps them
// on the shared timeline, and publishes the frames. Both renderer halves
// ride one frame on one topic, so neither can observe the other's half
// missing.
func (w *Worker) dispatchOperation() {
	w.logger.Infow("worker: dispatchOperation: G started")
	defer w.logger.Infow("worker: dispatchOperation: G completed")

	w.logger.Infow("worker: dispatchOperation: G listening")
	for {
		select {
		case smoothed, open := <-w.smoothedCh:
			if !open {
				return
			}

			music, visual, err := w.table.Map(smoothed)
			if err != nil {
				// Vocabulary mismatch between classifier and table.
				w.logger.Errorw("worker: dispatchOperation", "ERROR", err)
				continue
			}

			w.publishStoryUpdate(smoothed)

			frame, deliver, err := w.clock.Schedule(music, visual)
			if err != nil {
				w.logger.Infow("worker: dispatchOperation: clock stopped, dropping frame")
				continue
			}
			if !deliver {
				w.logger.Infow("worker: dispatchOperation: renderers not ready, frame buffered",
					"frameID", frame.ID)
				continue
			}

			w.publishFrame(frame)

		case renderer := <-w.readyCh:
			switch renderer {
			case timeline.MusicRenderer:
				w.state.Set(state.MusicRenderer, true)
			case timeline.VisualRenderer:
				w.state.Set(state.VisualRenderer, true)
			}
			w.logger.Infow("worker: dispatchOperation: renderer ready", "renderer", renderer)

			if frame, replay := w.clock.SetReady(renderer); replay {
				w.logger.Infow("worker: dispatchOperation: replaying buffered frame", "frameID", frame.ID)
				w.publishFrame(frame)
			}

		case <-w.shut:
			w.logger.Infow("worker: dispatchOperation: received shut signal")
			return
		}
	}
}

func (w *Worker) publishFrame(frame timeline.SyncFrame) {
	if err := w.broker.Publish(w.Topic(), frame); err != nil {
		w.logger.Errorw("worker: dispatchOperation: publish frame", "ERROR", err)
	}
}

func (w *Worker) publishStoryUpdate(e emotion.Event) {
	valence, arousal := emotion.ValenceArousal(e.Label, e.Intensity)

	update := StoryUpdate{
		SessionID:   w.config.SessionID,
		Text:        e.SourceText,
		Emotion:     e.Label.String(),
		Intensity:   e.Intensity,
		Valence:     valence,
		Arousal:     arousal,
		AccentColor: mapping.ValenceArousalColor(valence, arousal),
	}

	if err := w.broker.Publish(w.Topic(), update); err != nil {
		w.logger.Errorw("worker: dispatchOperation: publish story update", "ERROR", err)
	}
}
