package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/argtree/internal/ui/style"
)

// List prints every theme variant with a preview of its colors.
func List(deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = deps.Resolve(current)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		_, _ = deps.Printf("%s%-14s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'argtree theme set <name>' to change")
	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	if !style.Enabled() {
		return ""
	}

	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("Options ", cfg.Header) +
		colorize("--name ", cfg.Name) +
		colorize("<hint>", cfg.Hint)
}
