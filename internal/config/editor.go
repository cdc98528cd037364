package config

import "strings"

// Set replaces the value of key in lines, keeping any inline comment, or
// appends key=value. It reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			lines[i] = key + "=" + quote(value)
			if _, comment := splitValue(parts[1]); comment != "" {
				lines[i] += " " + comment
			}
			return lines, true
		}
	}

	lines = append(lines, key+"="+quote(value))
	return lines, false
}

// Unset drops every line assigning key and reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			out = append(out, line)
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}

// quote wraps values that Parse would otherwise trim or cut at a comment.
func quote(value string) string {
	if strings.ContainsAny(value, " \t#") || strings.HasPrefix(value, `"`) {
		return `"` + value + `"`
	}
	return value
}
