package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML settings file
type File struct {
	Tick   *time.Duration    `yaml:"tick"`
	Sound  *bool             `yaml:"sound"`
	Glyphs GlyphsFile        `yaml:"glyphs"`
	Keys   map[string]string `yaml:"keys"` // key name → action name
}

// GlyphsFile overrides cell characters; each value must be a single character
type GlyphsFile struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

// ParseFile decodes YAML settings, rejecting unknown fields
func ParseFile(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		// Empty document
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if f.Tick != nil && *f.Tick <= 0 {
		return nil, fmt.Errorf("parse config: tick must be positive, got %s", *f.Tick)
	}
	return f, nil
}

// LoadFile reads and decodes the settings file at path
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
