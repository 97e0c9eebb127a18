package interpreter

import "fmt"

// UnknownCommandError is returned when a name resolves to no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// UsageError is returned by builtins invoked with invalid arguments.
type UsageError struct {
	Command string
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

// Usagef creates a UsageError for command.
func Usagef(command, format string, a ...interface{}) error {
	return &UsageError{Command: command, Message: fmt.Sprintf(format, a...)}
}
