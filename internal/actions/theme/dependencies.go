package theme

import (
	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	WithLock   func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
	Resolve    func(string) string
}

// DefaultDeps edits the rc file and prints to out.
func DefaultDeps(out domain.OutputWriter) Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		WithLock:   config.WithLock,
		Set:        config.Set,
		Get:        config.Get,
		Printf:     out.Printf,
		Println:    out.Println,
		ThemeNames: style.ThemeNames, // All variants (dark/light) explicitly
		Themes:     style.Themes,
		Resolve:    style.ResolveThemeName,
	}
}
