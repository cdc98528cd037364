package usage

import "fmt"

// InvalidValue is returned when a well-typed value is outside the accepted
// set, such as an unknown configuration key or theme name.
func InvalidValue(key string, value any, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("invalid value '%s' for '%s': %s", describe(value), key, reason),
		Key:     key,
		Value:   value,
	}
}
