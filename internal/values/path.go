package values

import (
	"strconv"
	"strings"
)

// MaxIndex is the largest bracket index a key path may use. A path with a
// larger index is kept as one literal key.
const MaxIndex = 1 << 12

// segment is one step of a key path: a map key, or a sequence index when index >= 0.
type segment struct {
	key   string
	index int
}

// parsePath splits "a.b[2].c" into segments. Keys without '.' or '[' are a single
// segment, and so is any key whose brackets are malformed or whose index is
// above MaxIndex.
func parsePath(path string) []segment {
	if !strings.ContainsAny(path, ".[") || path[0] == '.' || path[0] == '[' {
		return []segment{{key: path, index: -1}}
	}

	var segs []segment
	var cur strings.Builder
	flush := func() {
		segs = append(segs, segment{key: cur.String(), index: -1})
		cur.Reset()
	}

	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.':
			flush()
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return []segment{{key: path, index: -1}}
			}
			if cur.Len() > 0 {
				flush()
			}
			inner := path[i+1 : i+end]
			if digits(inner) {
				n, err := strconv.Atoi(inner)
				if err != nil || n > MaxIndex {
					return []segment{{key: path, index: -1}}
				}
				segs = append(segs, segment{index: n})
			} else if n, err := strconv.Atoi(inner); err == nil && n >= 0 && n <= MaxIndex {
				segs = append(segs, segment{index: n})
			} else {
				segs = append(segs, segment{key: inner, index: -1})
			}
			i += end
			// "a[0].b": the dot after a bracket only separates
			if i+1 < len(path) && path[i+1] == '.' {
				i++
			}
		default:
			cur.WriteByte(c)
		}
	}

	if cur.Len() > 0 || len(segs) == 0 || path[len(path)-1] == '.' {
		flush()
	}

	return segs
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SplitPath separates the top-level key of a path from the remainder,
// keeping the separator on the remainder ("a.b" -> "a", ".b"; "a[1]" -> "a", "[1]").
// A path that Push would store as one literal key is returned whole.
func SplitPath(path string) (root, rest string) {
	segs := parsePath(path)
	if len(segs) == 1 && segs[0].key == path {
		return path, ""
	}
	root = segs[0].key
	return root, path[len(root):]
}

// setIn writes v at segs below container, creating maps and sequences as needed,
// and returns the (possibly new) container.
func setIn(container any, segs []segment, v any) any {
	seg := segs[0]

	if seg.index < 0 {
		m, ok := container.(map[string]any)
		if !ok {
			m = make(map[string]any)
		}
		if len(segs) == 1 {
			m[seg.key] = promote(m[seg.key], v)
		} else {
			m[seg.key] = setIn(m[seg.key], segs[1:], v)
		}
		return m
	}

	s, _ := container.([]any)
	for len(s) <= seg.index {
		s = append(s, nil)
	}
	if len(segs) == 1 {
		s[seg.index] = promote(s[seg.index], v)
	} else {
		s[seg.index] = setIn(s[seg.index], segs[1:], v)
	}
	return s
}

// promote implements auto-promotion: a second write turns a scalar into a
// two-element sequence, further writes append.
func promote(old, v any) any {
	switch o := old.(type) {
	case nil:
		return v
	case []any:
		return append(o, v)
	default:
		return []any{o, v}
	}
}
