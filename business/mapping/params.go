// Package mapping binds each emotion to canonical music and visual
// parameter sets and scales the degree fields by intensity. The table is
// built once at startup and shared read-only by every session.
package mapping

import (
	"fmt"
	"regexp"
)

// Tempo bounds in beats per minute.
const (
	TempoMin = 40
	TempoMax = 200
)

// PitchClass is one of the 12 keys.
type PitchClass string

const (
	KeyC      PitchClass = "C"
	KeyCSharp PitchClass = "C#"
	KeyD      PitchClass = "D"
	KeyDSharp PitchClass = "D#"
	KeyE      PitchClass = "E"
	KeyF      PitchClass = "F"
	KeyFSharp PitchClass = "F#"
	KeyG      PitchClass = "G"
	KeyGSharp PitchClass = "G#"
	KeyA      PitchClass = "A"
	KeyASharp PitchClass = "A#"
	KeyB      PitchClass = "B"
)

var pitchClasses = map[PitchClass]bool{
	KeyC: true, KeyCSharp: true, KeyD: true, KeyDSharp: true,
	KeyE: true, KeyF: true, KeyFSharp: true, KeyG: true,
	KeyGSharp: true, KeyA: true, KeyASharp: true, KeyB: true,
}

// Scale is an enumerated mode.
type Scale string

const (
	Ionian     Scale = "ionian"
	Dorian     Scale = "dorian"
	Phrygian   Scale = "phrygian"
	Lydian     Scale = "lydian"
	Mixolydian Scale = "mixolydian"
	Aeolian    Scale = "aeolian"
	Locrian    Scale = "locrian"
	WholeTone  Scale = "whole_tone"
)

var scales = map[Scale]bool{
	Ionian: true, Dorian: true, Phrygian: true, Lydian: true,
	Mixolydian: true, Aeolian: true, Locrian: true, WholeTone: true,
}

// Instrument tags the voices a music renderer should activate.
type Instrument string

// Shape is the particle shape an emotion renders with.
type Shape string

const (
	Circles Shape = "circles"
	Squares Shape = "squares"
	Lines   Shape = "lines"
	Stars   Shape = "stars"
	Shards  Shape = "shards"
	Spikes  Shape = "spikes"
)

var shapes = map[Shape]bool{
	Circles: true, Squares: true, Lines: true,
	Stars: true, Shards: true, Spikes: true,
}

// Motion is the particle motion style.
type Motion string

const (
	Floating  Motion = "floating"
	Expanding Motion = "expanding"
	Drifting  Motion = "drifting"
	Explosive Motion = "explosive"
	Trembling Motion = "trembling"
	Bursting  Motion = "bursting"
)

var motions = map[Motion]bool{
	Floating: true, Expanding: true, Drifting: true,
	Explosive: true, Trembling: true, Bursting: true,
}

// Color is a #RRGGBB hex value.
type Color string

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (c Color) Valid() bool {
	return hexColor.MatchString(string(c))
}

// =====================================================================================================================

// MusicParams is the value handed to a music renderer. Produced fresh per
// mapping call, never mutated afterwards.
type MusicParams struct {
	Key             PitchClass   `json:"key"`
	Scale           Scale        `json:"scale"`
	TempoBPM        int          `json:"tempo_bpm"`
	ChordDensity    float64      `json:"chord_density"`
	Instrumentation []Instrument `json:"instrumentation"`
	DynamicLevel    float64      `json:"dynamic_level"`
}

func (p MusicParams) Validate() error {
	if !pitchClasses[p.Key] {
		return fmt.Errorf("key[%s] is not a pitch class", p.Key)
	}
	if !scales[p.Scale] {
		return fmt.Errorf("scale[%s] is not a known mode", p.Scale)
	}
	if p.TempoBPM < TempoMin || p.TempoBPM > TempoMax {
		return fmt.Errorf("tempo[%d] outside [%d, %d]", p.TempoBPM, TempoMin, TempoMax)
	}
	if p.ChordDensity < 0 || p.ChordDensity > 1 {
		return fmt.Errorf("chord density[%f] outside [0, 1]", p.ChordDensity)
	}
	if len(p.Instrumentation) == 0 {
		return fmt.Errorf("instrumentation is empty")
	}
	if p.DynamicLevel < 0 || p.DynamicLevel > 1 {
		return fmt.Errorf("dynamic level[%f] outside [0, 1]", p.DynamicLevel)
	}
	return nil
}

// VisualParams is the value handed to a visual renderer.
type VisualParams struct {
	ColorPalette    []Color `json:"color_palette"`
	ShapeType       Shape   `json:"shape_type"`
	MotionType      Motion  `json:"motion_type"`
	ParticleCount   int     `json:"particle_count"`
	ParticleSize    float64 `json:"particle_size"`
	BackgroundColor Color   `json:"background_color"`
	Blur            float64 `json:"blur"`
	Speed           float64 `json:"speed"`
}

func (p VisualParams) Validate() error {
	if len(p.ColorPalette) == 0 {
		return fmt.Errorf("color palette is empty")
	}
	for _, c := range p.ColorPalette {
		if !c.Valid() {
			return fmt.Errorf("palette color[%s] is not #RRGGBB", c)
		}
	}
	if !shapes[p.ShapeType] {
		return fmt.Errorf("shape[%s] is not a known shape", p.ShapeType)
	}
	if !motions[p.MotionType] {
		return fmt.Errorf("motion[%s] is not a known motion", p.MotionType)
	}
	if p.ParticleCount <= 0 {
		return fmt.Errorf("particle count[%d] must be positive", p.ParticleCount)
	}
	if p.ParticleSize <= 0 {
		return fmt.Errorf("particle size[%f] must be positive", p.ParticleSize)
	}
	if !p.BackgroundColor.Valid() {
		return fmt.Errorf("background color[%s] is not #RRGGBB", p.BackgroundColor)
	}
	if p.Blur < 0 {
		return fmt.Errorf("blur[%f] must be non-negative", p.Blur)
	}
	if p.Speed < 0 {
		return fmt.Errorf("speed[%f] must be non-negative", p.Speed)
	}
	return nil
}
