package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/mattn/matcalc"
)

// Config holds the settings that can come from the config file. Flags set
// on the command line take precedence over it.
type Config struct {
	Prompt string `toml:"prompt"`
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Header bool   `toml:"header"`
}

var colorModes = []string{"auto", "on", "off"}

func defaultConfig() Config {
	return Config{
		Prompt: "> ",
		Format: matcalc.FormatLiteral,
		Color:  "auto",
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "matcalc", "config.toml")
}

// loadConfig reads the TOML file at path over the defaults. A missing file
// is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	md, err := toml.Decode(string(b), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, fmt.Errorf("error decoding %s: unknown key %q", path, keys[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !slices.Contains(matcalc.Formats, c.Format) {
		return fmt.Errorf("unknown format: %q", c.Format)
	}
	if !slices.Contains(colorModes, c.Color) {
		return fmt.Errorf("invalid color mode: %q (want auto, on or off)", c.Color)
	}
	return nil
}
