// Package values holds the nested key/value document produced by a parse.
//
// Leaves are bool, float64 or string. Dotted keys nest into map[string]any,
// bracket keys and repeated keys produce []any.
package values

import (
	"fmt"
	"math"
)

// Map is a parse result.
type Map map[string]any

// Push writes value at path, nesting dotted and bracketed segments and
// promoting repeated writes into sequences.
func (m Map) Push(path string, value any) {
	setIn(map[string]any(m), parsePath(path), value)
}

// Init makes sure key holds a sequence, creating an empty one when absent.
func (m Map) Init(key string) {
	if _, ok := m[key]; !ok {
		m[key] = []any{}
	}
}

// Has returns true if the key is present.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// String returns the string value of a key, or defaultVal if absent or not a string.
func (m Map) String(key, defaultVal string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return defaultVal
}

// Number returns the numeric value of a key, or defaultVal if absent or not a number.
func (m Map) Number(key string, defaultVal float64) float64 {
	if n, ok := m[key].(float64); ok {
		return n
	}
	return defaultVal
}

// Int returns the integer value of a key, or defaultVal if absent, not a number,
// or not integral.
func (m Map) Int(key string, defaultVal int) int {
	n, ok := m[key].(float64)
	if !ok || n != math.Trunc(n) {
		return defaultVal
	}
	return int(n)
}

// Bool returns the boolean value of a key, or defaultVal if absent or not a boolean.
func (m Map) Bool(key string, defaultVal bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return defaultVal
}

// List returns the value of a key as a sequence. A scalar is wrapped,
// an absent key yields nil.
func (m Map) List(key string) []any {
	switch v := m[key].(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// Strings returns List(key) with every element formatted as a string.
func (m Map) Strings(key string) []string {
	list := m.List(key)
	if list == nil {
		return nil
	}
	out := make([]string, len(list))
	for i, v := range list {
		if s, ok := v.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Sub returns the nested document stored at key, or nil.
func (m Map) Sub(key string) Map {
	switch v := m[key].(type) {
	case map[string]any:
		return Map(v)
	case Map:
		return v
	}
	return nil
}
