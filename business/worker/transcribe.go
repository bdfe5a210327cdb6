package worker

import (
	"github.com/superfeelapi/goStorySymphony/foundation/external/transcriber"
	"github.com/superfeelapi/goStorySymphony/foundation/state"
)

func (w *Worker) transcribeOperation() {
	w.logger.Infow("worker: transcribeOperation: G started")
	defer w.logger.Infow("worker: transcribeOperation: G completed")

	w.logger.Infow("worker: transcribeOperation: G listening")
	for {
		select {
		case segment := <-w.audioCh:
			if !w.state.Get(state.Transcriber) {
				continue
			}
			go func(segment AudioSegment) {
				result, err := transcriber.Transcribe(w.ctx, w.config.TranscriberEndpoint, segment.Data)
				if err != nil {
					w.logger.Errorw("worker: transcribeOperation", "ERROR", err)
					return
				}
				if result.Text == "" {
					return
				}

				// Keep the capture timestamp so classification ordering
				// follows the narration, not transcription latency.
				select {
				case w.textCh <- TextSegment{Text: result.Text, CapturedAt: segment.CapturedAt}:
				case <-w.shut:
				}
			}(segment)

		case <-w.shut:
			w.logger.Infow("worker: transcribeOperation: received shut signal")
			return
		}
	}
}
