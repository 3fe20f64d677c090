package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tuning file from fsys and overlays it on Default.
// Keys missing from the file keep their default values.
func Load(fsys fs.FS, path string) (Tuning, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Parse overlays YAML data on Default and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
