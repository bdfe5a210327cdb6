package mapping

import (
	"fmt"
	"math"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
)

// ErrUnknownEmotion reports a lookup for a label outside the vocabulary.
// This is a contract violation between classifier and table, not a runtime
// condition to recover from.
var ErrUnknownEmotion = fmt.Errorf("emotion has no mapping entry")

// Entry binds one emotion to its canonical parameter pair. Degree fields
// carry a base (intensity 0) and a peak (intensity 1) and interpolate
// linearly in between; categorical fields are fixed so the emotional
// identity stays legible at every intensity.
type Entry struct {
	Key         PitchClass
	Scale       Scale
	Instruments []Instrument

	TempoBase, TempoPeak     int
	DensityBase, DensityPeak float64
	DynamicBase, DynamicPeak float64

	Palette    []Color
	Shape      Shape
	Motion     Motion
	Background Color

	CountBase, CountPeak float64
	SizeBase, SizePeak   float64
	BlurBase, BlurPeak   float64
	SpeedBase, SpeedPeak float64
}

func (e Entry) validate(label emotion.Emotion) error {
	for _, intensity := range []float64{0, 1} {
		m, v := e.at(intensity)
		if err := m.Validate(); err != nil {
			return fmt.Errorf("entry[%s] music: %w", label, err)
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("entry[%s] visual: %w", label, err)
		}
	}
	if e.TempoPeak < e.TempoBase || e.CountPeak < e.CountBase || e.SpeedPeak < e.SpeedBase {
		return fmt.Errorf("entry[%s] peak below base on a monotonic field", label)
	}
	return nil
}

// at evaluates the entry at one intensity.
func (e Entry) at(intensity float64) (MusicParams, VisualParams) {
	instruments := make([]Instrument, len(e.Instruments))
	copy(instruments, e.Instruments)

	palette := make([]Color, len(e.Palette))
	copy(palette, e.Palette)

	music := MusicParams{
		Key:             e.Key,
		Scale:           e.Scale,
		TempoBPM:        clampTempo(lerpInt(e.TempoBase, e.TempoPeak, intensity)),
		ChordDensity:    clamp01(lerp(e.DensityBase, e.DensityPeak, intensity)),
		Instrumentation: instruments,
		DynamicLevel:    clamp01(lerp(e.DynamicBase, e.DynamicPeak, intensity)),
	}

	count := int(math.Round(lerp(e.CountBase, e.CountPeak, intensity)))
	if count < 1 {
		count = 1
	}

	visual := VisualParams{
		ColorPalette:    palette,
		ShapeType:       e.Shape,
		MotionType:      e.Motion,
		ParticleCount:   count,
		ParticleSize:    lerp(e.SizeBase, e.SizePeak, intensity),
		BackgroundColor: e.Background,
		Blur:            lerp(e.BlurBase, e.BlurPeak, intensity),
		Speed:           lerp(e.SpeedBase, e.SpeedPeak, intensity),
	}

	return music, visual
}

// =====================================================================================================================

// Table is the immutable lookup shared by all sessions.
type Table struct {
	entries map[emotion.Emotion]Entry
}

// New builds and validates a table from the canonical entries.
func New() (*Table, error) {
	entries := make(map[emotion.Emotion]Entry, len(canonical))
	for label, entry := range canonical {
		entries[label] = entry
	}

	t := &Table{entries: entries}
	for label, entry := range t.entries {
		if err := entry.validate(label); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Map resolves an event to its parameter pair. Pure: same event in, same
// parameters out.
func (t *Table) Map(e emotion.Event) (MusicParams, VisualParams, error) {
	entry, exists := t.entries[e.Label]
	if !exists {
		return MusicParams{}, VisualParams{}, fmt.Errorf("label[%s]: %w", e.Label, ErrUnknownEmotion)
	}

	music, visual := entry.at(emotion.ClampIntensity(e.Intensity))
	return music, visual, nil
}

// Entry returns the canonical entry for a label; tests and the override
// loader read entries, nothing writes them after New.
func (t *Table) Entry(label emotion.Emotion) (Entry, bool) {
	entry, exists := t.entries[label]
	return entry, exists
}

// =====================================================================================================================

func lerp(base, peak, intensity float64) float64 {
	return base + intensity*(peak-base)
}

func lerpInt(base, peak int, intensity float64) int {
	return int(math.Round(lerp(float64(base), float64(peak), intensity)))
}

func clampTempo(bpm int) int {
	if bpm < TempoMin {
		return TempoMin
	}
	if bpm > TempoMax {
		return TempoMax
	}
	return bpm
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
