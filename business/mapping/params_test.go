package mapping_test

import (
	"testing"

	"github.com/superfeelapi/goStorySymphony/business/mapping"
)

func validMusic() mapping.MusicParams {
	return mapping.MusicParams{
		Key: mapping.KeyC, Scale: mapping.Lydian, TempoBPM: 120,
		ChordDensity: 0.5, Instrumentation: []mapping.Instrument{"piano"}, DynamicLevel: 0.6,
	}
}

func validVisual() mapping.VisualParams {
	return mapping.VisualParams{
		ColorPalette: []mapping.Color{"#FFD700"}, ShapeType: mapping.Circles,
		MotionType: mapping.Expanding, ParticleCount: 100, ParticleSize: 5,
		BackgroundColor: "#FFFAF0", Blur: 0.1, Speed: 0.5,
	}
}

func TestMusicParamsValidate(t *testing.T) {
	if err := validMusic().Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*mapping.MusicParams)
	}{
		{"bad key", func(p *mapping.MusicParams) { p.Key = "H" }},
		{"bad scale", func(p *mapping.MusicParams) { p.Scale = "chromatic" }},
		{"tempo too low", func(p *mapping.MusicParams) { p.TempoBPM = 20 }},
		{"tempo too high", func(p *mapping.MusicParams) { p.TempoBPM = 500 }},
		{"density out of range", func(p *mapping.MusicParams) { p.ChordDensity = 1.5 }},
		{"no instruments", func(p *mapping.MusicParams) { p.Instrumentation = nil }},
		{"dynamic out of range", func(p *mapping.MusicParams) { p.DynamicLevel = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validMusic()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestVisualParamsValidate(t *testing.T) {
	if err := validVisual().Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*mapping.VisualParams)
	}{
		{"empty palette", func(p *mapping.VisualParams) { p.ColorPalette = nil }},
		{"bad palette color", func(p *mapping.VisualParams) { p.ColorPalette = []mapping.Color{"gold"} }},
		{"bad shape", func(p *mapping.VisualParams) { p.ShapeType = "hexagons" }},
		{"bad motion", func(p *mapping.VisualParams) { p.MotionType = "wobbling" }},
		{"zero particles", func(p *mapping.VisualParams) { p.ParticleCount = 0 }},
		{"zero size", func(p *mapping.VisualParams) { p.ParticleSize = 0 }},
		{"bad background", func(p *mapping.VisualParams) { p.BackgroundColor = "#FFF" }},
		{"negative blur", func(p *mapping.VisualParams) { p.Blur = -0.1 }},
		{"negative speed", func(p *mapping.VisualParams) { p.Speed = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validVisual()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
