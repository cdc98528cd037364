package usage

import (
	"fmt"
	"strconv"
)

// UnknownArgument is returned in strict mode for a bare token with no positional slot left.
func UnknownArgument(index int, value string) *Error {
	return &Error{
		Kind:    ErrUnknownArgument,
		Message: fmt.Sprintf("unknown argument #%d '%s'", index, value),
		Key:     strconv.Itoa(index),
		Value:   value,
	}
}
