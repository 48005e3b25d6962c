// Package parsecmd validates a command-line argument vector against a set of
// declared parameters and merges it with their default values.
//
// Arguments are read as alternating name/value pairs:
//
//	cmd := parsecmd.NewBuilder().
//		Help("usage: -loop n -delay nnn").
//		Param("-loop", "10", parsecmd.Required()).
//		Param("-delay", "100", parsecmd.Pattern(`[0-9]{3}`), parsecmd.ErrorMessage("must enter 3-digits.")).
//		MustBuild()
//
// Builder.UsageHelp derives the help text from the declarations instead.
//
//	if msg := cmd.Validate(args); msg != "" {
//		// report msg
//	}
//	values := cmd.Parse(args)
//
// Validate never modifies anything and Parse never validates; callers must
// only trust Parse's result after Validate returned "".
//
// A ParseCmd is immutable once built and safe for concurrent use.
package parsecmd

import (
	"strings"
)

// Logger receives diagnostics from the builder and the validator.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// ParseCmd holds a frozen set of parameter declarations.
type ParseCmd struct {
	params []Param
	index  map[string]int
	help   string
	logger Logger
}

// Help returns the help text given to the builder.
func (c *ParseCmd) Help() string {
	return c.help
}

// Size returns the number of declared parameters.
func (c *ParseCmd) Size() int {
	return len(c.params)
}

// Names returns the declared parameter names in declaration order.
func (c *ParseCmd) Names() []string {
	names := make([]string, len(c.params))
	for i, p := range c.params {
		names[i] = p.Name
	}
	return names
}

// Params returns a copy of the declarations in declaration order.
func (c *ParseCmd) Params() []Param {
	out := make([]Param, len(c.params))
	copy(out, c.params)
	return out
}

// Lookup returns the declaration for name.
func (c *ParseCmd) Lookup(name string) (Param, bool) {
	i, ok := c.index[name]
	if !ok {
		return Param{}, false
	}
	return c.params[i], true
}

// Default returns the default value of name, or "" if it is not declared.
func (c *ParseCmd) Default(name string) string {
	p, _ := c.Lookup(name)
	return p.Default
}

// Pattern returns the pattern of name, or "" if it is not declared.
func (c *ParseCmd) Pattern(name string) string {
	p, _ := c.Lookup(name)
	return p.Pattern
}

// ErrorMessage returns the error message of name, or "" if it is not declared.
func (c *ParseCmd) ErrorMessage(name string) string {
	p, _ := c.Lookup(name)
	return p.ErrorMessage
}

// Required reports whether name is declared and required.
func (c *ParseCmd) Required(name string) bool {
	p, _ := c.Lookup(name)
	return p.Required
}

// RequiredNames returns the required parameter names in declaration order.
func (c *ParseCmd) RequiredNames() []string {
	var names []string
	for _, p := range c.params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Usage returns a one-line synopsis built from the declarations, with
// required parameters first and optional ones in brackets:
//
//	usage: -loop 10 -delay 100 [ -tt 0 -of readme.txt ]
func (c *ParseCmd) Usage() string {
	var req, opt []string
	for _, p := range c.params {
		pair := p.Name
		if p.Default != "" {
			pair += " " + p.Default
		}
		if p.Required {
			req = append(req, pair)
		} else {
			opt = append(opt, pair)
		}
	}

	var sb strings.Builder
	sb.WriteString("usage:")
	for _, r := range req {
		sb.WriteString(" " + r)
	}
	if len(opt) > 0 {
		sb.WriteString(" [ " + strings.Join(opt, " ") + " ]")
	}
	return sb.String()
}
