package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("invalid flag '%s'", flag),
	}
}

// NotANumber is returned when a numeric argument cannot be parsed.
func NotANumber(value string) *Error {
	return &Error{
		Kind:    ErrInvalidArguments,
		Message: fmt.Sprintf("Not a number: '%s'", value),
	}
}
