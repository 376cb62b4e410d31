// Package config loads render settings for the mathbox command from TOML.
//
// Example file:
//
//	font = "/usr/share/fonts/TTF/DejaVuSans.ttf"
//	size = 96
//	ink = "#1a1a1a"
//	background = "#ffffff"
//	shaper = "gotext"
//	parallelism = 4
//	cache_size = 256
//	script_scale = 0.7
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/mathbox"
)

// Shaper names accepted in the shaper key.
const (
	ShaperBuiltin = "builtin"
	ShaperGoText  = "gotext"
)

// ErrInvalid is returned by Validate and Load for out of range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds render settings. The zero value is not valid; start from
// Default.
type Config struct {
	// Font is a TTF/OTF file. Empty selects the built-in Go Regular font.
	Font        string  `toml:"font"`
	Size        float64 `toml:"size"`
	Ink         string  `toml:"ink"`
	Background  string  `toml:"background"`
	Shaper      string  `toml:"shaper"`
	Parallelism int     `toml:"parallelism"`
	CacheSize   int     `toml:"cache_size"`
	ScriptScale float64 `toml:"script_scale"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Size:        100,
		Ink:         "#000000",
		Background:  "#ffffff",
		Shaper:      ShaperBuiltin,
		Parallelism: 1,
		CacheSize:   512,
		ScriptScale: 0.7,
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %s in %s", ErrInvalid, strings.Join(keys, ", "), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case !(c.Size > 0):
		return fmt.Errorf("%w: size %v must be positive", ErrInvalid, c.Size)
	case c.Shaper != ShaperBuiltin && c.Shaper != ShaperGoText:
		return fmt.Errorf("%w: shaper %q (want %q or %q)", ErrInvalid, c.Shaper, ShaperBuiltin, ShaperGoText)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism %d must be at least 1", ErrInvalid, c.Parallelism)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: cache_size %d must not be negative", ErrInvalid, c.CacheSize)
	case !(c.ScriptScale > 0 && c.ScriptScale <= 1):
		return fmt.Errorf("%w: script_scale %v must be in (0, 1]", ErrInvalid, c.ScriptScale)
	}
	if _, err := c.InkColor(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// InkColor parses Ink.
func (c Config) InkColor() (mathbox.RGBA, error) {
	col, err := mathbox.ParseHex(c.Ink)
	if err != nil {
		return mathbox.RGBA{}, fmt.Errorf("%w: ink: %w", ErrInvalid, err)
	}
	return col, nil
}

// BackgroundColor parses Background. An empty background means transparent.
func (c Config) BackgroundColor() (mathbox.RGBA, error) {
	if c.Background == "" {
		return mathbox.Transparent, nil
	}
	col, err := mathbox.ParseHex(c.Background)
	if err != nil {
		return mathbox.RGBA{}, fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	return col, nil
}
