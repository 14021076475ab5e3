package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/ldx/internal/ui"
	"github.com/oakwood-commons/ldx/pkg/settings"
)

// loadMergedConfig returns the embedded default configuration with an
// optional user config file layered on top. User values win; theme presets
// merge per-field so a user theme only has to name the colors it changes.
func loadMergedConfig(cfgPath string) (ui.ConfigFile, error) {
	cfg, err := ui.EmbeddedDefaultConfig()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if cfg.Themes == nil {
		cfg.Themes = map[string]ui.ThemeConfig{}
	}
	if cfgPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfg, err
	}
	var nested struct {
		UI ui.ConfigFile `yaml:"ui"`
	}
	if err := yaml.Unmarshal(data, &nested); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", cfgPath, err)
	}

	user := nested.UI
	if user.Theme.Default != "" {
		cfg.Theme.Default = user.Theme.Default
	}
	if user.Keymap != "" {
		cfg.Keymap = user.Keymap
	}
	if user.NoColor != nil {
		cfg.NoColor = user.NoColor
	}
	for name, themeCfg := range user.Themes {
		cfg.Themes[name] = overlayThemeConfig(cfg.Themes[name], themeCfg)
	}
	return cfg, nil
}

// overlayThemeConfig copies every non-empty field of override onto base.
func overlayThemeConfig(base, override ui.ThemeConfig) ui.ThemeConfig {
	if override.HeaderFG != "" {
		base.HeaderFG = override.HeaderFG
	}
	if override.HeaderBG != "" {
		base.HeaderBG = override.HeaderBG
	}
	if override.FooterFG != "" {
		base.FooterFG = override.FooterFG
	}
	if override.SelectedFG != "" {
		base.SelectedFG = override.SelectedFG
	}
	if override.SelectedBG != "" {
		base.SelectedBG = override.SelectedBG
	}
	if override.IndexFG != "" {
		base.IndexFG = override.IndexFG
	}
	if override.IndexActiveFG != "" {
		base.IndexActiveFG = override.IndexActiveFG
	}
	if override.StatusFG != "" {
		base.StatusFG = override.StatusFG
	}
	if override.TitleFG != "" {
		base.TitleFG = override.TitleFG
	}
	if override.BorderStyle != "" {
		base.BorderStyle = override.BorderStyle
	}
	return base
}

// resolveConfigPath returns the explicit configFile if set, otherwise the
// XDG path ($XDG_CONFIG_HOME/ldx/config.yaml) or ~/.config/ldx/config.yaml
// if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// resolveTheme maps a theme name to a Theme through the merged config,
// falling back to the config default, then to the built-in default.
func resolveTheme(cfg ui.ConfigFile, name string) ui.Theme {
	if name == "" {
		name = cfg.Theme.Default
	}
	if themeCfg, ok := cfg.Themes[name]; ok {
		return ui.ThemeFromConfig(themeCfg, ui.DefaultTheme())
	}
	return ui.DefaultTheme()
}
