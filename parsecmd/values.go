package parsecmd

import (
	"strconv"
)

// Values provides typed access to the map returned by Parse.
type Values map[string]string

// Has returns true if name has an entry.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the value of name, or defaultVal if absent.
func (v Values) String(name, defaultVal string) string {
	if s, ok := v[name]; ok {
		return s
	}
	return defaultVal
}

// Int returns the integer value of name, or defaultVal if absent or not an integer.
func (v Values) Int(name string, defaultVal int) int {
	s, ok := v[name]
	if !ok {
		return defaultVal
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return n
}

// Float returns the float value of name, or defaultVal if absent or not a number.
// The numeric default pattern admits values like "1.5" and "+3".
func (v Values) Float(name string, defaultVal float64) float64 {
	s, ok := v[name]
	if !ok {
		return defaultVal
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
