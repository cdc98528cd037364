package usage

import "fmt"

// MissingOption is returned when a mandatory option is absent after defaults were applied.
func MissingOption(key string) *Error {
	return &Error{
		Kind:    ErrMissingOption,
		Message: fmt.Sprintf("mandatory option '%s' missing", key),
		Key:     key,
	}
}
