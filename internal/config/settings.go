package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are user defaults applied when a CLI flag is not given.
type Settings struct {
	// Method is the default method name
	Method string `yaml:"method"`

	// Shift is the default caesar shift
	Shift *int `yaml:"shift,omitempty"`

	// Keyword is the default polyalphabetic keyword
	Keyword string `yaml:"keyword,omitempty"`

	// Recipe names a saved recipe to use when no method flag is given
	Recipe string `yaml:"recipe,omitempty"`

	// Verify checks every encode by decoding it again
	Verify bool `yaml:"verify,omitempty"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{Method: "caesar"}
}

// LoadSettings resolves settings from defaults, the optional YAML file at path,
// and environment overrides, in increasing precedence:
// - OBSCURA_METHOD: default method
// - OBSCURA_KEYWORD: default keyword
// - OBSCURA_RECIPE: default recipe
//
// A missing file is not an error; unknown keys in the file are.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeSettings(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&settings)
	return settings, nil
}

func decodeSettings(data []byte, settings *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnvOverrides(settings *Settings) {
	if v := strings.TrimSpace(os.Getenv("OBSCURA_METHOD")); v != "" {
		settings.Method = v
	}
	if v := os.Getenv("OBSCURA_KEYWORD"); v != "" {
		settings.Keyword = v
	}
	if v := strings.TrimSpace(os.Getenv("OBSCURA_RECIPE")); v != "" {
		settings.Recipe = v
	}
}
