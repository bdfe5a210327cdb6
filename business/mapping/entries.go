package mapping

import "github.com/superfeelapi/goStorySymphony/business/emotion"

// canonical carries the shipped emotion bindings. Base values are the most
// neutral reading of the emotion, peaks the fully saturated one; tempo
// spans 0.8x to 1.2x of the emotion's characteristic tempo.
var canonical = map[emotion.Emotion]Entry{
	emotion.Joy: {
		Key:         KeyC,
		Scale:       Lydian,
		Instruments: []Instrument{"piano", "strings", "glockenspiel"},
		TempoBase:   96, TempoPeak: 144,
		DensityBase: 0.35, DensityPeak: 0.7,
		DynamicBase: 0.5, DynamicPeak: 0.8,
		Palette:    []Color{"#FFD700", "#FFA500", "#FF8C00", "#FFFF00", "#FFFACD"},
		Shape:      Circles,
		Motion:     Expanding,
		Background: "#FFFAF0",
		CountBase:  100, CountPeak: 200,
		SizeBase: 5, SizePeak: 10,
		BlurBase: 0.1, BlurPeak: 0.2,
		SpeedBase: 0.35, SpeedPeak: 0.7,
	},
	emotion.Sadness: {
		Key:         KeyD,
		Scale:       Aeolian,
		Instruments: []Instrument{"cello", "piano", "pad"},
		TempoBase:   56, TempoPeak: 84,
		DensityBase: 0.2, DensityPeak: 0.4,
		DynamicBase: 0.25, DynamicPeak: 0.5,
		Palette:    []Color{"#000080", "#0000CD", "#4169E1", "#6495ED", "#B0C4DE"},
		Shape:      Lines,
		Motion:     Drifting,
		Background: "#F0F8FF",
		CountBase:  50, CountPeak: 100,
		SizeBase: 2.5, SizePeak: 5,
		BlurBase: 0.25, BlurPeak: 0.5,
		SpeedBase: 0.15, SpeedPeak: 0.3,
	},
	emotion.Anger: {
		Key:         KeyE,
		Scale:       Locrian,
		Instruments: []Instrument{"brass", "drums", "distorted_guitar"},
		TempoBase:   128, TempoPeak: 192,
		DensityBase: 0.4, DensityPeak: 0.8,
		DynamicBase: 0.6, DynamicPeak: 0.95,
		Palette:    []Color{"#8B0000", "#B22222", "#FF0000", "#CD5C5C", "#DC143C"},
		Shape:      Shards,
		Motion:     Explosive,
		Background: "#1A0000",
		CountBase:  150, CountPeak: 300,
		SizeBase: 4, SizePeak: 8,
		BlurBase: 0.05, BlurPeak: 0.1,
		SpeedBase: 0.45, SpeedPeak: 0.9,
	},
	emotion.Fear: {
		Key:         KeyFSharp,
		Scale:       Phrygian,
		Instruments: []Instrument{"tremolo_strings", "vibes", "bass"},
		TempoBase:   72, TempoPeak: 108,
		DensityBase: 0.25, DensityPeak: 0.5,
		DynamicBase: 0.3, DynamicPeak: 0.6,
		Palette:    []Color{"#2F4F4F", "#556B2F", "#483D8B", "#4B0082", "#191970"},
		Shape:      Spikes,
		Motion:     Trembling,
		Background: "#000000",
		CountBase:  75, CountPeak: 150,
		SizeBase: 3, SizePeak: 6,
		BlurBase: 0.2, BlurPeak: 0.4,
		SpeedBase: 0.3, SpeedPeak: 0.6,
	},
	emotion.Surprise: {
		Key:         KeyG,
		Scale:       WholeTone,
		Instruments: []Instrument{"piccolo", "bells", "harp"},
		TempoBase:   88, TempoPeak: 132,
		DensityBase: 0.3, DensityPeak: 0.6,
		DynamicBase: 0.5, DynamicPeak: 0.75,
		Palette:    []Color{"#FF1493", "#FF00FF", "#BA55D3", "#9370DB", "#EE82EE"},
		Shape:      Stars,
		Motion:     Bursting,
		Background: "#FFFFFF",
		CountBase:  125, CountPeak: 250,
		SizeBase: 6, SizePeak: 12,
		BlurBase: 0.05, BlurPeak: 0.1,
		SpeedBase: 0.4, SpeedPeak: 0.8,
	},
	emotion.Neutral: {
		Key:         KeyA,
		Scale:       Ionian,
		Instruments: []Instrument{"piano", "strings", "guitar"},
		TempoBase:   72, TempoPeak: 108,
		DensityBase: 0.25, DensityPeak: 0.5,
		DynamicBase: 0.3, DynamicPeak: 0.55,
		Palette:    []Color{"#808080", "#A9A9A9", "#C0C0C0", "#D3D3D3", "#DCDCDC"},
		Shape:      Squares,
		Motion:     Floating,
		Background: "#F5F5F5",
		CountBase:  60, CountPeak: 120,
		SizeBase: 3.5, SizePeak: 7,
		BlurBase: 0.15, BlurPeak: 0.3,
		SpeedBase: 0.25, SpeedPeak: 0.5,
	},
}
