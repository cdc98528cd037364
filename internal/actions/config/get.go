package config

import (
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Get prints the value of the key argument, its default when unset.
func Get(args values.Map, deps Deps) error {
	key := args.String("key", "")
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidValue("key", key, "not a configuration key")
	}

	value, _ := deps.Get(key)
	_, _ = deps.Println(value)
	return nil
}
