// Package display renders parameter declarations and parse results as
// aligned, optionally styled text.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/footprint-tools/parsecmd/internal/domain"
	"github.com/footprint-tools/parsecmd/parsecmd"
	"github.com/footprint-tools/parsecmd/usage"
)

const (
	indent   = 15
	keyWidth = 10
)

// pad left-aligns s in a column of width, always leaving at least one space.
func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func row(w io.Writer, s domain.Styler, key, value string, styleValue func(string) string) error {
	_, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", indent), s.Info(pad(key, keyWidth)), styleValue(value))
	return err
}

// Declarations writes every declared parameter with its default, pattern,
// required flag and error message, in declaration order.
func Declarations(w io.Writer, cmd *parsecmd.ParseCmd, s domain.Styler) error {
	for _, p := range cmd.Params() {
		if _, err := fmt.Fprintf(w, "%s\n", s.Header(p.Name+":")); err != nil {
			return err
		}
		rows := []struct {
			key, value string
			style      func(string) string
		}{
			{"default", p.Default, s.Success},
			{"pattern", p.Pattern, s.Muted},
			{"required", strconv.FormatBool(p.Required), s.Warning},
			{"message", p.ErrorMessage, s.Muted},
		}
		for _, r := range rows {
			if err := row(w, s, r.key, r.value, r.style); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Result writes one line per declared parameter with its merged value.
// Keys in result that are not declared are skipped.
func Result(w io.Writer, cmd *parsecmd.ParseCmd, result map[string]string, s domain.Styler) error {
	for _, name := range cmd.Names() {
		value, ok := result[name]
		if !ok {
			continue
		}
		if err := row(w, s, name, value, s.Success); err != nil {
			return err
		}
	}
	return nil
}

// Failure writes a validation failure followed by its help text, if any.
func Failure(w io.Writer, err *usage.Error, s domain.Styler) error {
	if _, werr := fmt.Fprintln(w, s.Error(err.Message)); werr != nil {
		return werr
	}
	if err.Help == "" {
		return nil
	}
	_, werr := fmt.Fprintf(w, "\n%s\n", s.Muted(err.Help))
	return werr
}
