package emotion

import (
	"errors"
	"time"
)

// ErrOutOfOrderEvent reports an event whose timestamp precedes the last
// event already applied to the arc. The event is dropped; the arc keeps
// its previous tail.
var ErrOutOfOrderEvent = errors.New("event timestamp precedes the arc tail")

// Event is one timestamped classification result for a narrated segment.
// Events are immutable once created.
type Event struct {
	Label      Emotion
	Intensity  float64
	SourceText string
	Timestamp  time.Time
}

// NewEvent builds an event with the intensity clamped to [0, 1].
func NewEvent(label Emotion, intensity float64, sourceText string, timestamp time.Time) Event {
	return Event{
		Label:      label,
		Intensity:  ClampIntensity(intensity),
		SourceText: sourceText,
		Timestamp:  timestamp,
	}
}

// Arc is the ordered, append-only history of one session's events.
// Timestamps are non-decreasing; a violating append is rejected.
type Arc struct {
	events []Event
}

func NewArc() *Arc {
	return &Arc{}
}

func (a *Arc) Append(e Event) error {
	if n := len(a.events); n > 0 && e.Timestamp.Before(a.events[n-1].Timestamp) {
		return ErrOutOfOrderEvent
	}
	a.events = append(a.events, e)
	return nil
}

func (a *Arc) Len() int {
	return len(a.events)
}

// Last returns the most recent event, or false on an empty arc.
func (a *Arc) Last() (Event, bool) {
	if len(a.events) == 0 {
		return Event{}, false
	}
	return a.events[len(a.events)-1], true
}

// Events returns a copy of the history, oldest first.
func (a *Arc) Events() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}
