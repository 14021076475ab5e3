package ui

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// ConfigFile is the merged application configuration: theme selection,
// keymap mode, and the theme presets themselves.
type ConfigFile struct {
	Theme struct {
		Default string `yaml:"default"`
	} `yaml:"theme"`
	Keymap  string                 `yaml:"keymap"`
	NoColor *bool                  `yaml:"no_color"`
	Themes  map[string]ThemeConfig `yaml:"themes"`
}

var (
	embeddedConfigOnce sync.Once
	embeddedConfig     ConfigFile
	embeddedConfigErr  error
)

// DefaultConfigYAML returns a copy of the embedded default config bytes.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// EmbeddedDefaultConfig parses and returns the embedded default
// configuration, the single source of truth for default settings and
// themes.
func EmbeddedDefaultConfig() (ConfigFile, error) {
	embeddedConfigOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedConfigErr = fmt.Errorf("embedded default config is empty")
			return
		}
		var raw struct {
			UI ConfigFile `yaml:"ui"`
		}
		if err := yaml.Unmarshal(embeddedDefaultConfig, &raw); err != nil {
			embeddedConfigErr = fmt.Errorf("decode embedded default config: %w", err)
			return
		}
		embeddedConfig = raw.UI
		if embeddedConfig.Themes == nil {
			embeddedConfig.Themes = map[string]ThemeConfig{}
		}
	})
	return embeddedConfig, embeddedConfigErr
}
