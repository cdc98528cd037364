package actions

import (
	"os"

	configactions "github.com/footprint-tools/argtree/internal/actions/config"
	themeactions "github.com/footprint-tools/argtree/internal/actions/theme"
	"github.com/footprint-tools/argtree/internal/app"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/manifest"
	"github.com/footprint-tools/argtree/internal/ui/browser"
)

// Deps are the services the argtree commands run on. The command schema
// binds methods of a *Deps, so the binary can fill it in after parsing its
// global flags.
type Deps struct {
	Out     domain.OutputWriter
	Logger  domain.Logger
	Styler  domain.Styler
	Load    func(path string) (*manifest.Manifest, error)
	Browse  func(entries []browser.Entry, start int) error
	Config  configactions.Deps
	Theme   themeactions.Deps
	Getenv  func(string) string
	Version func() string
}

// NewDeps wires Deps to an application.
func NewDeps(a *domain.Application) Deps {
	return Deps{
		Out:     a.Output,
		Logger:  a.Logger,
		Styler:  a.Styler,
		Load:    manifest.Load,
		Browse:  browser.Run,
		Config:  configactions.DefaultDeps(a.Output),
		Theme:   themeactions.DefaultDeps(a.Output),
		Getenv:  os.Getenv,
		Version: func() string { return app.Version },
	}
}
