package parsecmd

import "regexp"

const (
	// NumericPattern is selected when a default value looks like a number.
	NumericPattern = `^([+-]?)([0-9.]+)$`

	// TokenPattern is selected for every other default: a non-digit first
	// character followed by letters, digits or one of / _ : . ~
	TokenPattern = `^[^0-9]([a-zA-Z0-9/_:.~]+)$`
)

var numericRe = regexp.MustCompile(NumericPattern)

// Param is one declared flag.
type Param struct {
	Name         string
	Default      string
	Pattern      string
	Required     bool
	ErrorMessage string

	re *regexp.Regexp
}

// Matches reports whether value matches the whole of p's pattern.
func (p Param) Matches(value string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(value)
}

// defaultPattern picks the pattern implied by a default value.
func defaultPattern(defaultValue string) string {
	if numericRe.MatchString(defaultValue) {
		return NumericPattern
	}
	return TokenPattern
}

// compilePattern compiles pattern so that it must match the entire value.
// The pattern is compiled on its own first so that unbalanced groups cannot
// escape the anchoring wrapper.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	return regexp.Compile(`^(?:` + pattern + `)$`)
}
