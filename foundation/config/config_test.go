package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/superfeelapi/goStorySymphony/foundation/config"
)

const overridesYAML = `
emotions:
  joy:
    tempo:
      base: 100
      peak: 150
    palette: ["#FFD700", "#FFA500"]
  sadness:
    motion: drifting
`

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	if err := os.WriteFile(path, []byte(overridesYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	overrides, err := config.LoadOverrides(path)
	if err != nil {
		t.Fatal(err)
	}

	joy, exists := overrides.Emotions["joy"]
	if !exists {
		t.Fatal("joy override missing")
	}
	if joy.Tempo == nil || joy.Tempo.Base != 100 || joy.Tempo.Peak != 150 {
		t.Errorf("joy tempo got %+v, want base 100 peak 150", joy.Tempo)
	}
	if len(joy.Palette) != 2 {
		t.Errorf("joy palette got %d colors, want 2", len(joy.Palette))
	}

	sadness := overrides.Emotions["sadness"]
	if sadness.Motion == nil || *sadness.Motion != "drifting" {
		t.Errorf("sadness motion got %v, want drifting", sadness.Motion)
	}
	if sadness.Tempo != nil {
		t.Error("sadness tempo should stay nil")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	overrides, err := config.LoadOverrides("")
	if err != nil {
		t.Fatal(err)
	}
	if len(overrides.Emotions) != 0 {
		t.Error("empty path should yield empty overrides")
	}

	overrides, err = config.LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(overrides.Emotions) != 0 {
		t.Error("missing file should yield empty overrides")
	}
}

func TestLoadOverridesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	if err := os.WriteFile(path, []byte("emotions: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.LoadOverrides(path); err == nil {
		t.Fatal("expected parse error")
	}
}
