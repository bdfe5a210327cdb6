package mapping

import (
	"fmt"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
	"github.com/superfeelapi/goStorySymphony/foundation/config"
)

// NewWithOverrides builds the table with operator overrides layered on top
// of the canonical entries, then validates the result. An override naming
// an unknown emotion is rejected rather than ignored.
func NewWithOverrides(overrides config.Overrides) (*Table, error) {
	table, err := New()
	if err != nil {
		return nil, err
	}

	for name, override := range overrides.Emotions {
		label, err := emotion.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("override: %w", err)
		}

		entry := table.entries[label]
		applyOverride(&entry, override)

		if err := entry.validate(label); err != nil {
			return nil, fmt.Errorf("override: %w", err)
		}
		table.entries[label] = entry
	}

	return table, nil
}

func applyOverride(entry *Entry, o config.EntryOverride) {
	if o.Key != nil {
		entry.Key = PitchClass(*o.Key)
	}
	if o.Scale != nil {
		entry.Scale = Scale(*o.Scale)
	}
	if len(o.Instruments) > 0 {
		entry.Instruments = make([]Instrument, len(o.Instruments))
		for i, name := range o.Instruments {
			entry.Instruments[i] = Instrument(name)
		}
	}
	if o.Tempo != nil {
		entry.TempoBase, entry.TempoPeak = int(o.Tempo.Base), int(o.Tempo.Peak)
	}
	if o.Density != nil {
		entry.DensityBase, entry.DensityPeak = o.Density.Base, o.Density.Peak
	}
	if o.Dynamic != nil {
		entry.DynamicBase, entry.DynamicPeak = o.Dynamic.Base, o.Dynamic.Peak
	}
	if len(o.Palette) > 0 {
		entry.Palette = make([]Color, len(o.Palette))
		for i, c := range o.Palette {
			entry.Palette[i] = Color(c)
		}
	}
	if o.Shape != nil {
		entry.Shape = Shape(*o.Shape)
	}
	if o.Motion != nil {
		entry.Motion = Motion(*o.Motion)
	}
	if o.Background != nil {
		entry.Background = Color(*o.Background)
	}
	if o.ParticleCount != nil {
		entry.CountBase, entry.CountPeak = o.ParticleCount.Base, o.ParticleCount.Peak
	}
	if o.ParticleSize != nil {
		entry.SizeBase, entry.SizePeak = o.ParticleSize.Base, o.ParticleSize.Peak
	}
	if o.Blur != nil {
		entry.BlurBase, entry.BlurPeak = o.Blur.Base, o.Blur.Peak
	}
	if o.Speed != nil {
		entry.SpeedBase, entry.SpeedPeak = o.Speed.Base, o.Speed.Peak
	}
}
