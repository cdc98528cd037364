package actions

import (
	themeactions "github.com/footprint-tools/argtree/internal/actions/theme"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

func (d *Deps) ThemeList(_ *schema.Schema, _ values.Map, _ *schema.Schema, _ values.Map) error {
	return themeactions.List(d.Theme)
}

func (d *Deps) ThemeSet(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	return themeactions.Set(args.String(KeyName, ""), d.Theme)
}
