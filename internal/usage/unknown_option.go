package usage

import "fmt"

// UnknownOption is returned in strict mode when a flag names no declared option.
func UnknownOption(key string, value any) *Error {
	return &Error{
		Kind:    ErrUnknownOption,
		Message: fmt.Sprintf("unknown option '%s'", key),
		Key:     key,
		Value:   value,
	}
}
