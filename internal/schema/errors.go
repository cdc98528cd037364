package schema

import "fmt"

// DeclarationError reports a schema built the wrong way. It is raised with
// panic during declaration: it is a bug in the program, not bad user input.
type DeclarationError struct {
	Schema string // space-joined path of the schema being declared
	Name   string
	Reason string
}

func (e *DeclarationError) Error() string {
	where := "root schema"
	if e.Schema != "" {
		where = "schema " + e.Schema
	}
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", where, e.Reason)
	}
	return fmt.Sprintf("%s: cannot declare '%s': %s", where, e.Name, e.Reason)
}

func (s *Schema) fail(name, format string, args ...any) {
	panic(&DeclarationError{
		Schema: s.String(),
		Name:   name,
		Reason: fmt.Sprintf(format, args...),
	})
}
