package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a token in command position matches no declared command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("unknown command '%s'", command)

	if len(suggestions) == 1 {
		msg += fmt.Sprintf(", did you mean '%s'?", suggestions[0])
	} else if len(suggestions) > 1 {
		msg += ", did you mean one of: '" + strings.Join(suggestions, "', '") + "'?"
	}

	return &Error{
		Kind:        ErrUnknownCommand,
		Message:     msg,
		Key:         command,
		Value:       command,
		Suggestions: suggestions,
	}
}
