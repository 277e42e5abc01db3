// Package config loads the TOML run configuration: a [field] patch and [run] host options
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/particlefield/field"
)

// ErrUnknownKeys is returned when the file holds keys that map to no option
var ErrUnknownKeys = errors.New("unknown config keys")

// Run holds host options that are not part of the field configuration
type Run struct {
	FPS   int  `toml:"fps"`
	Audio bool `toml:"audio"`
	// ChimeThreshold overrides the per-frame collision count that triggers the chime, 0 keeps the default
	ChimeThreshold int    `toml:"chime_threshold"`
	ReducedMotion  string `toml:"reduced_motion"`
	Preset         string `toml:"preset"`
	Adaptive       bool   `toml:"adaptive"`
	HUD            bool   `toml:"hud"`
	Debug          bool   `toml:"debug"`
	Stats          bool   `toml:"stats"`
}

// File is the decoded configuration file
type File struct {
	Field field.Patch `toml:"field"`
	Run   Run         `toml:"run"`
}

// Default returns the configuration used without a file
func Default() File {
	return File{Run: Run{FPS: 60, ReducedMotion: "scale", Adaptive: true, HUD: true}}
}

// Load decodes path over Default
func Load(path string) (File, error) {
	f := Default()
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return File{}, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes TOML text over Default
func Parse(data string) (File, error) {
	f := Default()
	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(names, ", "))
}

// FieldConfig resolves the field configuration: defaults, then the preset for width and cpus, then the file patch
// An explicit run preset overrides the detected choice
func (f File) FieldConfig(width, cpus int) (field.Config, field.Preset, error) {
	preset := field.PresetFor(width, cpus)
	if f.Run.Preset != "" {
		preset = field.Preset(f.Run.Preset)
	}
	pp, err := preset.Patch()
	if err != nil {
		return field.Config{}, "", err
	}
	cfg := field.DefaultConfig().Merge(pp.Combine(f.Field))
	if err := cfg.Validate(); err != nil {
		return field.Config{}, "", err
	}
	return cfg, preset, nil
}

// Encode writes f as TOML, used to print the effective configuration
func Encode(f File) (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(f); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}
