package emotion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
)

var sessionStart = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time {
	return sessionStart.Add(offset)
}

func TestColdStart(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	first := emotion.NewEvent(emotion.Fear, 0.6, "the woods grew dark", at(0))
	smoothed, err := tracker.Ingest(first)
	if err != nil {
		t.Fatal(err)
	}

	if smoothed != first {
		t.Errorf("first event should apply verbatim, got %+v", smoothed)
	}
}

func TestOutOfOrderRejected(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	for i, offset := range []time.Duration{0, 3 * time.Second, 6 * time.Second} {
		if _, err := tracker.Ingest(emotion.NewEvent(emotion.Joy, 0.5, "", at(offset))); err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
	}

	stale := emotion.NewEvent(emotion.Anger, 0.9, "", at(5*time.Second))
	_, err := tracker.Ingest(stale)
	if !errors.Is(err, emotion.ErrOutOfOrderEvent) {
		t.Fatalf("got %v, want ErrOutOfOrderEvent", err)
	}

	last, exists := tracker.Arc().Last()
	if !exists {
		t.Fatal("arc lost its events")
	}
	if !last.Timestamp.Equal(at(6 * time.Second)) {
		t.Errorf("arc tail moved to %v after rejected event", last.Timestamp)
	}
	if tracker.Arc().Len() != 3 {
		t.Errorf("arc length got %d, want 3", tracker.Arc().Len())
	}
}

func TestRapidEventsBlendWithoutLabelFlip(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	if _, err := tracker.Ingest(emotion.NewEvent(emotion.Sadness, 0.9, "she wept", at(0))); err != nil {
		t.Fatal(err)
	}

	// Joy lands 50ms later, far inside the dwell duration.
	smoothed, err := tracker.Ingest(emotion.NewEvent(emotion.Joy, 0.9, "but then she laughed", at(50*time.Millisecond)))
	if err != nil {
		t.Fatal(err)
	}

	if smoothed.Label != emotion.Sadness {
		t.Errorf("label flipped to %s inside the dwell window", smoothed.Label)
	}
	if smoothed.Intensity < 0.89 || smoothed.Intensity > 0.91 {
		t.Errorf("intensity got %f, want a blend near 0.9", smoothed.Intensity)
	}
}

func TestLabelSwitchesPastMajorityWeight(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	if _, err := tracker.Ingest(emotion.NewEvent(emotion.Sadness, 0.8, "", at(0))); err != nil {
		t.Fatal(err)
	}

	// 1.5s elapsed on a 2s dwell gives weight 0.75: majority reached.
	smoothed, err := tracker.Ingest(emotion.NewEvent(emotion.Joy, 0.4, "", at(1500*time.Millisecond)))
	if err != nil {
		t.Fatal(err)
	}

	if smoothed.Label != emotion.Joy {
		t.Errorf("label got %s, want joy past the majority threshold", smoothed.Label)
	}

	want := 0.8*0.25 + 0.4*0.75
	if diff := smoothed.Intensity - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("intensity got %f, want %f", smoothed.Intensity, want)
	}
}

func TestFullOverridePastDwell(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	if _, err := tracker.Ingest(emotion.NewEvent(emotion.Neutral, 0.3, "", at(0))); err != nil {
		t.Fatal(err)
	}

	next := emotion.NewEvent(emotion.Anger, 0.7, "", at(5*time.Second))
	smoothed, err := tracker.Ingest(next)
	if err != nil {
		t.Fatal(err)
	}

	if smoothed.Label != emotion.Anger || smoothed.Intensity != 0.7 {
		t.Errorf("event past dwell should override outright, got %+v", smoothed)
	}
}

func TestSmoothingIsCumulative(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	if _, err := tracker.Ingest(emotion.NewEvent(emotion.Sadness, 0.9, "", at(0))); err != nil {
		t.Fatal(err)
	}

	// Three rapid joy events: the label holds until the blend window
	// relative to the previously applied target crosses majority.
	s1, err := tracker.Ingest(emotion.NewEvent(emotion.Joy, 0.9, "", at(100*time.Millisecond)))
	if err != nil {
		t.Fatal(err)
	}
	if s1.Label != emotion.Sadness {
		t.Fatalf("label flipped after 100ms")
	}

	s2, err := tracker.Ingest(emotion.NewEvent(emotion.Joy, 0.9, "", at(1800*time.Millisecond)))
	if err != nil {
		t.Fatal(err)
	}
	if s2.Label != emotion.Joy {
		t.Errorf("label did not switch once the gap crossed majority weight")
	}
}

func TestResetDiscardsState(t *testing.T) {
	tracker := emotion.NewTracker(2 * time.Second)

	if _, err := tracker.Ingest(emotion.NewEvent(emotion.Joy, 0.9, "", at(0))); err != nil {
		t.Fatal(err)
	}

	tracker.Reset()

	if tracker.Arc().Len() != 0 {
		t.Error("arc survived reset")
	}

	// A pre-epoch timestamp is fine again: the next event is a cold start.
	smoothed, err := tracker.Ingest(emotion.NewEvent(emotion.Fear, 0.5, "", at(-time.Hour)))
	if err != nil {
		t.Fatal(err)
	}
	if smoothed.Label != emotion.Fear || smoothed.Intensity != 0.5 {
		t.Errorf("post-reset cold start got %+v", smoothed)
	}
}

func TestIntensityClamped(t *testing.T) {
	e := emotion.NewEvent(emotion.Joy, 1.7, "", at(0))
	if e.Intensity != 1 {
		t.Errorf("intensity got %f, want clamp to 1", e.Intensity)
	}

	e = emotion.NewEvent(emotion.Joy, -0.2, "", at(0))
	if e.Intensity != 0 {
		t.Errorf("intensity got %f, want clamp to 0", e.Intensity)
	}
}
