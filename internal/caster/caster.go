// Package caster converts tokenized values to the type an option declares.
package caster

import (
	"math"
	"strconv"
	"strings"

	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

var (
	trueLiterals  = map[string]bool{"true": true, "on": true, "yes": true, "1": true}
	falseLiterals = map[string]bool{"false": true, "off": true, "no": true, "0": true}
)

// Cast converts value to typ. elem is the element type used when typ is
// schema.TypeArray. A sequence given to a boolean, string or number option
// comes from repeating it and is cast element-wise. Failures are
// *usage.Error of kind ErrBadType.
func Cast(key string, value any, typ, elem schema.Type) (any, error) {
	if list, ok := value.([]any); ok && scalar(typ) {
		return castEach(key, list, typ)
	}
	return castOne(key, value, typ, elem)
}

func castOne(key string, value any, typ, elem schema.Type) (any, error) {
	switch typ {
	case schema.TypeBoolean:
		return toBoolean(key, value)
	case schema.TypeString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, usage.BadType(key, value, "a string")
	case schema.TypeNumber:
		return toNumber(key, value)
	case schema.TypeObject:
		switch m := value.(type) {
		case map[string]any:
			return m, nil
		case values.Map:
			return map[string]any(m), nil
		}
		return nil, usage.BadType(key, value, "an object")
	case schema.TypeArray:
		return toArray(key, value, elem)
	default:
		return Auto(value), nil
	}
}

// Auto converts numeric strings to numbers, element-wise through sequences.
// Anything else is returned unchanged.
func Auto(value any) any {
	switch v := value.(type) {
	case string:
		if n, ok := ParseNumber(v); ok {
			return n
		}
		return v
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Auto(e)
		}
		return out
	default:
		return value
	}
}

// ParseNumber reports whether s is a finite number: decimal or float
// syntax, or an integer with a 0x, 0o or 0b prefix. Surrounding space is
// ignored, an empty string is not a number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}

	if prefixed(s) {
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(i), true
		}
	}
	return 0, false
}

func prefixed(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 3 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func toBoolean(key string, value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if trueLiterals[v] {
			return true, nil
		}
		if falseLiterals[v] {
			return false, nil
		}
	}
	return nil, usage.BadType(key, value, "a boolean")
}

func toNumber(key string, value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if n, ok := ParseNumber(v); ok {
			return n, nil
		}
	}
	return nil, usage.BadType(key, value, "a number")
}

func scalar(typ schema.Type) bool {
	return typ == schema.TypeBoolean || typ == schema.TypeString || typ == schema.TypeNumber
}

// castEach casts every element of list to typ, leaving holes of sparse
// sequences nil.
func castEach(key string, list []any, typ schema.Type) ([]any, error) {
	out := make([]any, len(list))
	for i, e := range list {
		if e == nil {
			continue
		}
		cast, err := castOne(key, e, typ, schema.TypeAuto)
		if err != nil {
			return nil, err
		}
		out[i] = cast
	}
	return out, nil
}

func toArray(key string, value any, elem schema.Type) (any, error) {
	var list []any
	switch v := value.(type) {
	case []any:
		list = v
	case map[string]any, values.Map:
		return nil, usage.BadType(key, value, "an array")
	default:
		list = []any{v}
	}

	return castEach(key, list, elem)
}
