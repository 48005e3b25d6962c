package usage

import "strings"

// MissingRequired is returned when one or more required parameters are absent.
// All missing names are listed, not only the first.
func MissingRequired(names []string) *Error {
	return &Error{
		Kind:    ErrMissingRequired,
		Message: "enter required parms: " + strings.Join(names, " "),
		Params:  names,
	}
}
