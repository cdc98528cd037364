package config

import "github.com/footprint-tools/argtree/internal/domain"

// Defaults maps every declared config key to its default value. Values are
// computed in code and never persisted unless the user sets them.
var Defaults = func() map[string]func() string {
	out := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		out[key.Name] = func() string { return value }
	}
	return out
}()

func defaultValue(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		return defaultValue(key)
	}

	cfg, err := Parse(lines)
	if err != nil {
		return defaultValue(key)
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}
	return defaultValue(key)
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}
