// Package config loads the optional TOML style file that overrides the
// symbol drawing constants and documentation metadata.
//
// A style file only needs the keys it changes; everything else keeps the
// built-in EnergyMicro defaults:
//
//	[geometry]
//	spacing = 100
//	power_width = 1200
//
//	[doc]
//	keywords = "EFM32 MCU"
//	datasheet = "https://example.com/datasheets"
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/hairykiwi/csv2kicad/pkg/eeschema"
	"github.com/hairykiwi/csv2kicad/pkg/errors"
	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// Config is the full style configuration.
type Config struct {
	Geometry symbol.Geometry `toml:"geometry"`
	Doc      Doc             `toml:"doc"`
}

// Doc configures the documentation library entries.
type Doc struct {
	Keywords  string `toml:"keywords"`
	Datasheet string `toml:"datasheet"`
}

// DocOptions converts the documentation settings for the serializer.
func (d Doc) DocOptions() eeschema.DocOptions {
	return eeschema.DocOptions{Keywords: d.Keywords, Datasheet: d.Datasheet}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Geometry: symbol.DefaultGeometry()}
}

// Load reads a TOML style file over the defaults. Unknown keys are
// rejected: a typoed geometry key silently falling back to its default
// would be painful to spot in the generated symbols.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s: unknown keys: %v", path, undecoded)
	}
	if err := validate(cfg.Geometry); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects geometry values that would degenerate the layout.
func validate(g symbol.Geometry) error {
	checks := []struct {
		name  string
		value int
	}{
		{"spacing", g.Spacing},
		{"pin_length", g.PinLength},
		{"text_size", g.TextSize},
		{"box_offset", g.BoxOffset},
		{"power_width", g.PowerWidth},
		{"char_width", g.CharWidth},
		{"width_margin", g.WidthMargin},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %d", c.name, c.value)
		}
	}
	return nil
}
