package ui

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines colors and styles used across the UI. Host apps can supply
// their own theme.
type Theme struct {
	HeaderFG      color.Color // Section header text
	HeaderBG      color.Color // Section header background
	FooterFG      color.Color // Section footer text
	SelectedFG    color.Color // Selected row foreground
	SelectedBG    color.Color // Selected row background
	IndexFG       color.Color // Section index bar entries
	IndexActiveFG color.Color // Index entry of the section under the cursor
	StatusFG      color.Color // Status bar text
	TitleFG       color.Color // Title bar text
	BorderStyle   string      // Border style (normal|rounded)
}

// ThemeConfig is the YAML form of a Theme; colors are hex strings, empty
// string leaves the base value in place.
type ThemeConfig struct {
	HeaderFG      string `yaml:"header_fg"`
	HeaderBG      string `yaml:"header_bg"`
	FooterFG      string `yaml:"footer_fg"`
	SelectedFG    string `yaml:"selected_fg"`
	SelectedBG    string `yaml:"selected_bg"`
	IndexFG       string `yaml:"index_fg"`
	IndexActiveFG string `yaml:"index_active_fg"`
	StatusFG      string `yaml:"status_fg"`
	TitleFG       string `yaml:"title_fg"`
	BorderStyle   string `yaml:"border_style"`
}

var (
	defaultThemeOnce sync.Once
	defaultTheme     Theme
)

// DefaultTheme returns the palette selected by the embedded default
// configuration, falling back to the hard-coded dark palette if the
// embedded config cannot be read.
func DefaultTheme() Theme {
	defaultThemeOnce.Do(func() {
		cfg, err := EmbeddedDefaultConfig()
		if err != nil {
			defaultTheme = fallbackDefaultTheme()
			return
		}
		name := cfg.Theme.Default
		themeCfg, ok := cfg.Themes[name]
		if !ok {
			defaultTheme = fallbackDefaultTheme()
			return
		}
		defaultTheme = ThemeFromConfig(themeCfg, fallbackDefaultTheme())
	})
	return defaultTheme
}

func fallbackDefaultTheme() Theme {
	return Theme{
		HeaderFG:      lipgloss.Color("#5fd7ff"),
		FooterFG:      lipgloss.Color("#808080"),
		SelectedFG:    lipgloss.Color("#000000"),
		SelectedBG:    lipgloss.Color("#5fd7ff"),
		IndexFG:       lipgloss.Color("#626262"),
		IndexActiveFG: lipgloss.Color("#5fd7ff"),
		StatusFG:      lipgloss.Color("#9e9e9e"),
		TitleFG:       lipgloss.Color("#d0d0d0"),
		BorderStyle:   "rounded",
	}
}

// ThemeFromConfig builds a Theme from its YAML form, taking unset fields
// from base.
func ThemeFromConfig(cfg ThemeConfig, base Theme) Theme {
	t := base
	if cfg.HeaderFG != "" {
		t.HeaderFG = lipgloss.Color(cfg.HeaderFG)
	}
	if cfg.HeaderBG != "" {
		t.HeaderBG = lipgloss.Color(cfg.HeaderBG)
	}
	if cfg.FooterFG != "" {
		t.FooterFG = lipgloss.Color(cfg.FooterFG)
	}
	if cfg.SelectedFG != "" {
		t.SelectedFG = lipgloss.Color(cfg.SelectedFG)
	}
	if cfg.SelectedBG != "" {
		t.SelectedBG = lipgloss.Color(cfg.SelectedBG)
	}
	if cfg.IndexFG != "" {
		t.IndexFG = lipgloss.Color(cfg.IndexFG)
	}
	if cfg.IndexActiveFG != "" {
		t.IndexActiveFG = lipgloss.Color(cfg.IndexActiveFG)
	}
	if cfg.StatusFG != "" {
		t.StatusFG = lipgloss.Color(cfg.StatusFG)
	}
	if cfg.TitleFG != "" {
		t.TitleFG = lipgloss.Color(cfg.TitleFG)
	}
	if cfg.BorderStyle != "" {
		t.BorderStyle = cfg.BorderStyle
	}
	return t
}

// AvailableThemes returns the theme presets declared by the embedded
// default config, keyed by name.
func AvailableThemes() map[string]Theme {
	themes := map[string]Theme{}
	cfg, err := EmbeddedDefaultConfig()
	if err != nil {
		themes["dark"] = fallbackDefaultTheme()
		return themes
	}
	base := fallbackDefaultTheme()
	for name, themeCfg := range cfg.Themes {
		themes[name] = ThemeFromConfig(themeCfg, base)
	}
	return themes
}
