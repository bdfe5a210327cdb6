package emotion

import (
	"time"
)

// DefaultDwell is the minimum time a label is expected to persist before a
// newly classified label fully overrides it. Tunable per tracker.
const DefaultDwell = 2 * time.Second

// Tracker absorbs the raw event stream of one session and produces smoothed
// targets, so playback does not jump on every short utterance. Events that
// arrive faster than the dwell duration blend intensities instead of
// overriding outright, and the label flips only once the blend weight
// crosses the majority threshold. Categories are never cross-faded.
//
// A Tracker is owned by a single session goroutine and is not safe for
// concurrent use.
type Tracker struct {
	arc   *Arc
	dwell time.Duration

	lastApplied *Event
}

func NewTracker(dwell time.Duration) *Tracker {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Tracker{
		arc:   NewArc(),
		dwell: dwell,
	}
}

// Arc exposes the session history for replay and inspection.
func (t *Tracker) Arc() *Arc {
	return t.arc
}

// Ingest appends the event to the arc and returns the smoothed target to
// hand to the mapping table. Out-of-order events return ErrOutOfOrderEvent
// and leave all tracker state untouched.
func (t *Tracker) Ingest(e Event) (Event, error) {
	e.Intensity = ClampIntensity(e.Intensity)

	if err := t.arc.Append(e); err != nil {
		return Event{}, err
	}

	// Cold start applies the first event verbatim.
	if t.lastApplied == nil {
		t.lastApplied = &e
		return e, nil
	}

	last := *t.lastApplied
	w := blendWeight(e.Timestamp.Sub(last.Timestamp), t.dwell)

	smoothed := Event{
		Label:      last.Label,
		Intensity:  last.Intensity*(1-w) + e.Intensity*w,
		SourceText: e.SourceText,
		Timestamp:  e.Timestamp,
	}
	if w > 0.5 {
		smoothed.Label = e.Label
	}

	t.lastApplied = &smoothed
	return smoothed, nil
}

// Reset discards the smoothing state and history at session end.
func (t *Tracker) Reset() {
	t.arc = NewArc()
	t.lastApplied = nil
}

// blendWeight maps the gap between two events onto [0, 1]. A gap at or
// beyond the dwell duration gives full weight to the newer event.
func blendWeight(elapsed, dwell time.Duration) float64 {
	if elapsed >= dwell {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(dwell)
}
