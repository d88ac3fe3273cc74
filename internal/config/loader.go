package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	// ErrNoPresets is returned when the config file defines no presets.
	ErrNoPresets = errors.New("no presets found in config file")

	// ErrPresetNotFound is returned when the requested preset is absent.
	ErrPresetNotFound = errors.New("preset not found in config file")
)

// LoadPreset reads a preset file and returns the named preset merged over
// the built-in defaults. With an empty name the lexicographically first
// preset is used. Preset files are TOML by default; .yaml/.yml files are
// parsed as YAML.
func LoadPreset(path, name string) (*Spec, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	presets := k.MapKeys("preset")
	if len(presets) == 0 {
		return nil, ErrNoPresets
	}
	if name == "" {
		sort.Strings(presets)
		name = presets[0]
	} else if !k.Exists("preset." + name) {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	merged := koanf.New(".")
	if err := merged.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}
	if err := merged.Merge(k.Cut("preset." + name)); err != nil {
		return nil, fmt.Errorf("merging preset %q: %w", name, err)
	}

	var spec Spec
	if err := merged.Unmarshal("", &spec); err != nil {
		return nil, fmt.Errorf("parsing preset %q: %w", name, err)
	}
	return &spec, nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"method":      DefaultMethod,
		"timeout":     DefaultTimeout,
		"retry":       DefaultRetry,
		"retry_delay": DefaultRetryDelay,
	}
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
