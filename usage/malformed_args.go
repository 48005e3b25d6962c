package usage

// MalformedArgs is returned when the argument vector is not a sequence of name/value pairs.
func MalformedArgs() *Error {
	return &Error{
		Kind:    ErrMalformedArgs,
		Message: "enter '-name value' pairs",
	}
}
