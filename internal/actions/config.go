package actions

import (
	configactions "github.com/footprint-tools/argtree/internal/actions/config"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

func (d *Deps) ConfigGet(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	return configactions.Get(args, d.Config)
}

func (d *Deps) ConfigSet(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	return configactions.Set(args, d.Config)
}

func (d *Deps) ConfigUnset(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	return configactions.Unset(args, d.Config)
}

func (d *Deps) ConfigList(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	return configactions.List(args, d.Config)
}
