package config

// Overrides is the optional operator-supplied tuning file. Any field left
// nil keeps the shipped canonical value.
type Overrides struct {
	Emotions map[string]EntryOverride `yaml:"emotions"`
}

// EntryOverride retunes one emotion's binding. Categorical fields replace
// outright; range fields replace base and peak as a pair.
type EntryOverride struct {
	Key         *string  `yaml:"key"`
	Scale       *string  `yaml:"scale"`
	Instruments []string `yaml:"instruments"`

	Tempo   *Range `yaml:"tempo"`
	Density *Range `yaml:"density"`
	Dynamic *Range `yaml:"dynamic"`

	Palette    []string `yaml:"palette"`
	Shape      *string  `yaml:"shape"`
	Motion     *string  `yaml:"motion"`
	Background *string  `yaml:"background"`

	ParticleCount *Range `yaml:"particle_count"`
	ParticleSize  *Range `yaml:"particle_size"`
	Blur          *Range `yaml:"blur"`
	Speed         *Range `yaml:"speed"`
}

// Range is an intensity-scaled field's endpoints.
type Range struct {
	Base float64 `yaml:"base"`
	Peak float64 `yaml:"peak"`
}
