package config

import (
	"fmt"
	"strings"
)

// Parse turns rc file lines into a key/value map. Blank lines and lines
// starting with '#' are skipped, a " #" suffix is an inline comment, and
// values wrapped in double quotes are unquoted. Later keys win.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key], _ = splitValue(value)
	}

	return cfg, nil
}

// splitValue separates the right-hand side of a key=value line into its
// value and inline comment. A double-quoted value ends at the first quote
// followed by nothing or a comment, so it may itself contain " #".
func splitValue(raw string) (value, comment string) {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, `"`) {
		for i := 1; i < len(raw); i++ {
			if raw[i] != '"' {
				continue
			}
			rest := strings.TrimSpace(raw[i+1:])
			if rest == "" || strings.HasPrefix(rest, "#") {
				return raw[1:i], rest
			}
		}
	}

	if idx := strings.Index(raw, " #"); idx >= 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:])
	}
	return raw, ""
}
