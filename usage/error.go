package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrMalformedArgs
	ErrMissingRequired
	ErrUnknownParam
	ErrInvalidValue
	ErrDuplicateParam
	ErrInvalidPattern
	ErrInvalidDeclaration
)

// Exit codes:
//
//	Exit 1: Declaration (programming) errors
//	  - Unknown errors
//	  - Duplicate parameter
//	  - Invalid pattern
//	  - Invalid declaration
//
//	Exit 2: User input errors
//	  - Malformed argument vector
//	  - Missing required parameter
//	  - Unknown parameter
//	  - Invalid value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrMalformedArgs:      2,
	ErrMissingRequired:    2,
	ErrUnknownParam:       2,
	ErrInvalidValue:       2,
	ErrDuplicateParam:     1,
	ErrInvalidPattern:     1,
	ErrInvalidDeclaration: 1,
}

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedArgs:
		return "malformed arguments"
	case ErrMissingRequired:
		return "missing required parameter"
	case ErrUnknownParam:
		return "unknown parameter"
	case ErrInvalidValue:
		return "invalid value"
	case ErrDuplicateParam:
		return "duplicate parameter"
	case ErrInvalidPattern:
		return "invalid pattern"
	case ErrInvalidDeclaration:
		return "invalid declaration"
	default:
		return "unknown"
	}
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	// Help is appended to the message when non-empty.
	Help string
	// Params names the parameters the error refers to, in declaration order.
	Params   []string
	ExitCode int // overrides the code derived from Kind when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Help == "" {
		return e.Message
	}
	return e.Message + "\n\n" + e.Help
}

// WithHelp returns a copy of e carrying the given help text.
func (e *Error) WithHelp(help string) *Error {
	cp := *e
	cp.Help = help
	return &cp
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
