package usage

import "fmt"

// InvalidValue is returned when a value does not match its parameter's pattern.
func InvalidValue(name, value, detail string) *Error {
	msg := fmt.Sprintf("%s value of '%s' is invalid;", name, value)
	if detail != "" {
		msg += " " + detail
	}
	return &Error{
		Kind:    ErrInvalidValue,
		Message: msg,
		Params:  []string{name},
	}
}
