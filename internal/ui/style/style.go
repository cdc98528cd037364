// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Header, Name, Hint, Error, etc.) rather than
// visual. When disabled, every helper returns its input unchanged with no
// ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig
	styles  map[role]lipgloss.Style
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
	roleName
	roleHint
)

// Init initializes the style package with the given enabled state and config.
// NO_COLOR and ARGTREE_NO_COLOR disable styling regardless of enable.
//
// cfg supplies the "theme" key; nil means the default theme.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("ARGTREE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	colors = LoadColorConfig(cfg)
	lipgloss.SetColorProfile(termenv.ANSI256)
	styles = map[role]lipgloss.Style{
		roleSuccess: makeStyle(colors.Success),
		roleWarning: makeStyle(colors.Warning),
		roleError:   makeStyle(colors.Error),
		roleInfo:    makeStyle(colors.Info),
		roleMuted:   makeStyle(colors.Muted),
		roleHeader:  makeStyle(colors.Header),
		roleName:    makeStyle(colors.Name),
		roleHint:    makeStyle(colors.Hint),
	}
}

// GetColors returns the current color configuration.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

// makeStyle creates a lipgloss style from "bold" or an ANSI color number.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func render(r role, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(roleSuccess, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(roleWarning, text) }

// Error styles text for error messages.
func Error(text string) string { return render(roleError, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(roleInfo, text) }

// Header styles section headers and titles.
func Header(text string) string { return render(roleHeader, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(roleMuted, text) }

// Name styles option and command names in help output.
func Name(text string) string { return render(roleName, text) }

// Hint styles value hints such as <file>.
func Hint(text string) string { return render(roleHint, text) }
