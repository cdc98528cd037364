package usage

import (
	"errors"
	"fmt"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownOption
	ErrUnknownCommand
	ErrUnknownArgument
	ErrMissingOption
	ErrBadType
	ErrInvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownOption:
		return "unknownOption"
	case ErrUnknownCommand:
		return "unknownCommand"
	case ErrUnknownArgument:
		return "unknownArgument"
	case ErrMissingOption:
		return "missingOption"
	case ErrBadType:
		return "badType"
	case ErrInvalidValue:
		return "invalidValue"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: command resolution errors
//	  - Unknown errors
//	  - Unknown command
//
//	Exit 2: User input errors
//	  - Unknown option
//	  - Unknown argument
//	  - Missing option
//	  - Bad type
//	  - Invalid value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:         1,
	ErrUnknownCommand:  1,
	ErrUnknownOption:   2,
	ErrUnknownArgument: 2,
	ErrMissingOption:   2,
	ErrBadType:         2,
	ErrInvalidValue:    2,
}

// Error represents a user-facing usage error with semantic type information.
// It carries enough context for a renderer to build its own message.
type Error struct {
	Kind    ErrorKind
	Message string

	// Key is the offending option name or positional index.
	Key string
	// Value is the raw value that was rejected, if any.
	Value any
	// Command is the space-joined path of the schema that raised the error.
	Command string
	// Suggestions holds close matches for unknown commands.
	Suggestions []string

	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// In returns a copy of e attributed to the given command path.
// An error that already names a command keeps it.
func (e *Error) In(command string) *Error {
	if e.Command != "" {
		return e
	}
	cp := *e
	cp.Command = command
	return &cp
}

// As reports whether err is (or wraps) a usage error.
func As(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Is reports whether err is a usage error of the given kind.
func Is(err error, kind ErrorKind) bool {
	ue, ok := As(err)
	return ok && ue.Kind == kind
}

func describe(v any) string {
	if v == nil {
		return "nothing"
	}
	return fmt.Sprint(v)
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
