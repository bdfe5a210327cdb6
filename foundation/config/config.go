package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverrides reads a mapping override file. A missing path is not an
// error; it yields empty overrides so the canonical table ships as-is.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}
		return Overrides{}, err
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Overrides{}, err
	}

	var overrides Overrides
	if err := yaml.Unmarshal(bytes, &overrides); err != nil {
		return Overrides{}, fmt.Errorf("parsing overrides[%s]: %w", path, err)
	}

	return overrides, nil
}
