// Package timeline keeps the music and visual renderers on one shared
// timeline: every parameter update is stamped with a single effective time
// and carried by one frame so neither renderer can observe half an update.
package timeline

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/superfeelapi/goStorySymphony/business/mapping"
)

// DefaultMinFrameInterval spaces frames far enough apart that a burst of
// classifier results does not thrash the renderers.
const DefaultMinFrameInterval = 250 * time.Millisecond

// ErrClockStopped reports scheduling after the session stopped playback.
var ErrClockStopped = errors.New("clock is stopped")

// Renderer identifies one of the two playback engines.
type Renderer string

const (
	MusicRenderer  Renderer = "music"
	VisualRenderer Renderer = "visual"
)

// SyncFrame is the atomic unit delivered to both renderers. Music and
// visual halves always travel together.
type SyncFrame struct {
	ID            string               `json:"id"`
	EffectiveTime time.Time            `json:"effective_time"`
	Music         mapping.MusicParams  `json:"music"`
	Visual        mapping.VisualParams `json:"visual"`
}

// Clock assigns strictly increasing effective times to frames and gates
// delivery on renderer readiness. Frames scheduled before both renderers
// are ready stay buffered (latest wins) and replay on readiness.
type Clock struct {
	mu sync.Mutex

	now         func() time.Time
	minInterval time.Duration

	last    time.Time
	stopped bool

	musicReady  bool
	visualReady bool
	buffered    *SyncFrame
}

func NewClock(minInterval time.Duration) *Clock {
	if minInterval <= 0 {
		minInterval = DefaultMinFrameInterval
	}
	return &Clock{
		now:         time.Now,
		minInterval: minInterval,
	}
}

// Schedule stamps a frame with effectiveTime = max(now, last+minInterval).
// The returned boolean says whether the frame may be delivered now; false
// means both renderers are not yet ready and the frame was buffered.
func (c *Clock) Schedule(music mapping.MusicParams, visual mapping.VisualParams) (SyncFrame, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return SyncFrame{}, false, ErrClockStopped
	}

	frame := SyncFrame{
		ID:            uuid.New().String(),
		EffectiveTime: c.nextEffectiveTime(),
		Music:         music,
		Visual:        visual,
	}

	if !c.ready() {
		c.buffered = &frame
		return frame, false, nil
	}

	return frame, true, nil
}

// SetReady marks one renderer ready. Once both are, the buffered frame is
// returned for replay, restamped so effective times stay strictly
// increasing at the point of delivery.
func (c *Clock) SetReady(r Renderer) (SyncFrame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch r {
	case MusicRenderer:
		c.musicReady = true
	case VisualRenderer:
		c.visualReady = true
	}

	if !c.ready() || c.buffered == nil || c.stopped {
		return SyncFrame{}, false
	}

	frame := *c.buffered
	c.buffered = nil
	frame.EffectiveTime = c.nextEffectiveTime()
	return frame, true
}

// Ready reports whether both renderers have signalled readiness.
func (c *Clock) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready()
}

// Stop prevents any further scheduling and drops the buffered frame. The
// session's arc is not this clock's state and survives a stop.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.buffered = nil
}

func (c *Clock) ready() bool {
	return c.musicReady && c.visualReady
}

// nextEffectiveTime enforces monotonicity and minimum spacing. Caller must
// hold the mutex.
func (c *Clock) nextEffectiveTime() time.Time {
	effective := c.now()
	if !c.last.IsZero() {
		if earliest := c.last.Add(c.minInterval); effective.Before(earliest) {
			effective = earliest
		}
	}
	c.last = effective
	return effective
}
