package usage

import "fmt"

// UnknownParam is returned when an argument names a parameter that was never declared.
func UnknownParam(name string) *Error {
	return &Error{
		Kind:    ErrUnknownParam,
		Message: fmt.Sprintf("%s invalid", name),
		Params:  []string{name},
	}
}
