package actions

import (
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

func (d *Deps) ShowVersion(_ *schema.Schema, _ values.Map, _ *schema.Schema, _ values.Map) error {
	_, _ = d.Out.Printf("argtree version %v\n", d.Version())
	return nil
}
