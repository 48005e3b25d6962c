package usage

import "fmt"

// DuplicateParam is returned when a parameter name is declared twice.
func DuplicateParam(name string) *Error {
	return &Error{
		Kind:    ErrDuplicateParam,
		Message: fmt.Sprintf("parameter '%s' declared more than once", name),
		Params:  []string{name},
	}
}

// InvalidPattern is returned when a parameter's pattern does not compile.
func InvalidPattern(name, pattern string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidPattern,
		Message: fmt.Sprintf("parameter '%s': invalid pattern %q: %v", name, pattern, err),
		Params:  []string{name},
	}
}

// InvalidDeclaration is returned for declarations that could never match input,
// such as an empty name or an empty default value.
func InvalidDeclaration(name, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidDeclaration,
		Message: fmt.Sprintf("parameter '%s': %s", name, reason),
		Params:  []string{name},
	}
}
