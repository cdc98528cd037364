package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Name    string
	Hint    string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "mono", "ocean"}

// ThemeNames lists every explicit theme variant in display order.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Name:    "14",
		Hint:    "11",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
		Name:    "27",
		Hint:    "130",
	},
	"mono-dark": {
		Success: "50",
		Warning: "229",
		Error:   "210",
		Info:    "50",
		Muted:   "245",
		Header:  "bold",
		Name:    "50",
		Hint:    "250",
	},
	"mono-light": {
		Success: "30",
		Warning: "136",
		Error:   "124",
		Info:    "30",
		Muted:   "244",
		Header:  "bold",
		Name:    "30",
		Hint:    "240",
	},
	"ocean-dark": {
		Success: "43",
		Warning: "221",
		Error:   "174",
		Info:    "75",
		Muted:   "245",
		Header:  "bold",
		Name:    "75",
		Hint:    "43",
	},
	"ocean-light": {
		Success: "30",
		Warning: "130",
		Error:   "124",
		Info:    "25",
		Muted:   "244",
		Header:  "bold",
		Name:    "25",
		Hint:    "30",
	},
}

// IsValidTheme reports whether name is a base theme or an explicit variant.
func IsValidTheme(name string) bool {
	if _, ok := Themes[name]; ok {
		return true
	}
	for _, base := range BaseThemeNames {
		if base == name {
			return true
		}
	}
	return false
}

// IsDarkBackground returns true if the terminal has a dark background.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends a -dark or -light suffix to a base theme name
// based on the terminal background.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig resolves the theme from ARGTREE_THEME, then the "theme"
// config key, then "default". ARGTREE_COLOR_<ROLE> overrides single roles.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if env := os.Getenv("ARGTREE_THEME"); env != "" {
		name = env
	} else if v, ok := cfg["theme"]; ok && v != "" {
		name = v
	}

	theme, ok := Themes[ResolveThemeName(name)]
	if !ok {
		theme = Themes["default-dark"]
	}

	for _, f := range []struct {
		env   string
		field *string
	}{
		{"ARGTREE_COLOR_SUCCESS", &theme.Success},
		{"ARGTREE_COLOR_WARNING", &theme.Warning},
		{"ARGTREE_COLOR_ERROR", &theme.Error},
		{"ARGTREE_COLOR_INFO", &theme.Info},
		{"ARGTREE_COLOR_MUTED", &theme.Muted},
		{"ARGTREE_COLOR_HEADER", &theme.Header},
		{"ARGTREE_COLOR_NAME", &theme.Name},
		{"ARGTREE_COLOR_HINT", &theme.Hint},
	} {
		if v := os.Getenv(f.env); v != "" {
			*f.field = v
		}
	}
	return theme
}
