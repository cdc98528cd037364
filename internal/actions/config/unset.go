package config

import (
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Unset removes the key argument from the rc file, or every entry with --all.
func Unset(args values.Map, deps Deps) error {
	key := args.String("key", "")

	if args.Bool("all", false) {
		if key != "" {
			return usage.InvalidValue("all", key, "--all does not take a key")
		}

		if err := deps.WithLock(func() error { return deps.WriteLines([]string{}) }); err != nil {
			return err
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if key == "" {
		return usage.MissingOption("key")
	}
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidValue("key", key, "not a configuration key")
	}

	var removed bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, removed = deps.Unset(lines, key)
		if !removed {
			return nil
		}
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	if !removed {
		_, _ = deps.Printf("%s is not set\n", key)
		return nil
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
