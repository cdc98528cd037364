package theme

import (
	"strings"

	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
)

// Set stores name, a base theme or an explicit variant, as the theme.
func Set(name string, deps Deps) error {
	if !valid(name, deps) {
		return usage.InvalidValue("theme", name, "available themes: "+strings.Join(deps.ThemeNames, ", "))
	}

	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, _ = deps.Set(lines, "theme", name)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(name))
	return nil
}

func valid(name string, deps Deps) bool {
	if _, ok := deps.Themes[name]; ok {
		return true
	}
	for _, variant := range deps.ThemeNames {
		if base, _, _ := strings.Cut(variant, "-"); base == name {
			return true
		}
	}
	return false
}
