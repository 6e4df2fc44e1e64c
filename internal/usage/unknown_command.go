package usage

import "fmt"

// UnknownCommand is returned when no executable or help-capable task matches.
// Suggestions are carried alongside the message, not inside it.
func UnknownCommand(command string, suggestions ...string) *Error {
	return &Error{
		Kind:        ErrUnknownCommand,
		Message:     fmt.Sprintf("Not a recognized command: '%s'", command),
		Suggestions: suggestions,
	}
}

// Destroyed is returned by any call on a torn-down dispatcher.
func Destroyed() *Error {
	return &Error{
		Kind:    ErrDestroyed,
		Message: "Command destroyed",
	}
}

// InvalidArguments is returned when a check hook rejects the parsed arguments.
func InvalidArguments() *Error {
	return &Error{
		Kind:    ErrInvalidArguments,
		Message: "Invalid arguments",
	}
}

// InvalidConfigKey is returned for keys outside the known configuration set.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a valid config key", key),
	}
}
