package parsecmd

// Parse merges args with the declared defaults. The result holds exactly one
// entry per declared parameter: the last value supplied for it, or its
// default. Undeclared names are dropped.
//
// Parse does not validate; call Validate first.
func (c *ParseCmd) Parse(args []string) map[string]string {
	result := make(map[string]string, len(c.params))

	for i := 0; i < len(args); i += 2 {
		name := args[i]
		if _, ok := c.index[name]; !ok {
			continue
		}
		value := ""
		if i+1 < len(args) {
			value = args[i+1]
		}
		result[name] = value
	}

	for _, p := range c.params {
		if _, ok := result[p.Name]; !ok {
			result[p.Name] = p.Default
		}
	}

	c.logger.Debug("parsecmd: parsed %d arguments into %d values", len(args), len(result))
	return result
}
