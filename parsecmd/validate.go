package parsecmd

import (
	"github.com/footprint-tools/parsecmd/usage"
)

// Validate checks args and returns "" if they are acceptable, or a
// description of the first problem followed by the help text.
func (c *ParseCmd) Validate(args []string) string {
	if err := c.Check(args); err != nil {
		return err.Error()
	}
	return ""
}

// Check runs the same checks as Validate and returns the failure as a
// *usage.Error, or nil.
//
// The checks run in this order and the first failure wins:
//  1. args must hold at least one complete name/value pair
//  2. every required parameter must be named
//  3. each pair, left to right, must name a declared parameter and carry a
//     value matching its pattern
//
// Only check 2 reports more than one parameter.
func (c *ParseCmd) Check(args []string) *usage.Error {
	err := c.check(args)
	if err == nil {
		return nil
	}
	c.logger.Debug("parsecmd: validation failed (%s): %s", err.Kind, err.Message)
	return err.WithHelp(c.help)
}

func (c *ParseCmd) check(args []string) *usage.Error {
	if len(args) < 2 || len(args)%2 != 0 {
		return usage.MalformedArgs()
	}

	if missing := c.missingRequired(args); len(missing) > 0 {
		return usage.MissingRequired(missing)
	}

	for i := 0; i+1 < len(args); i += 2 {
		name, value := args[i], args[i+1]

		p, ok := c.Lookup(name)
		if !ok || p.Default == "" {
			return usage.UnknownParam(name)
		}
		if !p.Matches(value) {
			return usage.InvalidValue(name, value, p.ErrorMessage)
		}
	}

	return nil
}

// missingRequired returns the required names that do not appear in a name
// position of args, in declaration order.
func (c *ParseCmd) missingRequired(args []string) []string {
	present := make(map[string]bool, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		present[args[i]] = true
	}

	var missing []string
	for _, p := range c.params {
		if p.Required && !present[p.Name] {
			missing = append(missing, p.Name)
		}
	}
	return missing
}
