package usage

import "fmt"

// BadType is returned when a value cannot be coerced to the declared type.
// expected is a human noun phrase such as "a number" or "an array".
func BadType(key string, value any, expected string) *Error {
	return &Error{
		Kind:    ErrBadType,
		Message: fmt.Sprintf("bad type for option '%s', expecting %s but got '%s'", key, expected, describe(value)),
		Key:     key,
		Value:   value,
	}
}
