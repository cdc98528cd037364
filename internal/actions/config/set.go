package config

import (
	"strconv"

	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Set writes key=value to the rc file after validating both.
func Set(args values.Map, deps Deps) error {
	key := args.String("key", "")
	value := args.String("value", "")

	if err := validate(key, value); err != nil {
		return err
	}

	var updated bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

func validate(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidValue("key", key, "not a configuration key")
	}

	switch key {
	case "theme":
		if !style.IsValidTheme(value) {
			return usage.InvalidValue(key, value, "unknown theme")
		}
	case "enable_log":
		if value != "true" && value != "false" {
			return usage.InvalidValue(key, value, "expecting true or false")
		}
	case "log_level":
		if !log.IsValidLevel(value) {
			return usage.InvalidValue(key, value, "expecting debug, info, warn or error")
		}
	case "help_width":
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return usage.InvalidValue(key, value, "expecting a column count")
		}
	}
	return nil
}
