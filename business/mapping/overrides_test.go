package mapping_test

import (
	"testing"
	"time"

	"github.com/superfeelapi/goStorySymphony/business/emotion"
	"github.com/superfeelapi/goStorySymphony/business/mapping"
	"github.com/superfeelapi/goStorySymphony/foundation/config"
)

func TestOverridesApply(t *testing.T) {
	overrides := config.Overrides{
		Emotions: map[string]config.EntryOverride{
			"joy": {
				Tempo: &config.Range{Base: 100, Peak: 140},
			},
		},
	}

	table, err := mapping.NewWithOverrides(overrides)
	if err != nil {
		t.Fatal(err)
	}

	music, _, err := table.Map(emotion.NewEvent(emotion.Joy, 0, "", time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if music.TempoBPM != 100 {
		t.Errorf("tempo got %d, want overridden base 100", music.TempoBPM)
	}

	// Other emotions keep their canonical entries.
	music, _, err = table.Map(emotion.NewEvent(emotion.Sadness, 0, "", time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if music.TempoBPM != 56 {
		t.Errorf("sadness tempo got %d, want canonical 56", music.TempoBPM)
	}
}

func TestOverridesRejected(t *testing.T) {
	t.Run("unknown emotion", func(t *testing.T) {
		_, err := mapping.NewWithOverrides(config.Overrides{
			Emotions: map[string]config.EntryOverride{
				"melancholy": {},
			},
		})
		if err == nil {
			t.Fatal("expected error for unknown emotion")
		}
	})

	t.Run("tempo outside bounds", func(t *testing.T) {
		_, err := mapping.NewWithOverrides(config.Overrides{
			Emotions: map[string]config.EntryOverride{
				"joy": {Tempo: &config.Range{Base: 10, Peak: 300}},
			},
		})
		if err == nil {
			t.Fatal("expected error for out-of-bounds tempo")
		}
	})

	t.Run("peak below base", func(t *testing.T) {
		_, err := mapping.NewWithOverrides(config.Overrides{
			Emotions: map[string]config.EntryOverride{
				"joy": {Tempo: &config.Range{Base: 140, Peak: 100}},
			},
		})
		if err == nil {
			t.Fatal("expected error for inverted range")
		}
	})
}
