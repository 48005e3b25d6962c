package parsecmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/footprint-tools/parsecmd/internal/log"
	"github.com/footprint-tools/parsecmd/usage"
	"github.com/stretchr/testify/require"
)

const sampleUsage = "usage: -loop n  -delay nnn -if fileName [ -tt nn  -of abc ]"

func sampleCmd(t *testing.T) *ParseCmd {
	t.Helper()
	cmd, err := NewBuilder().
		Help(sampleUsage).
		Param("-loop", "10", Required()).
		Param("-delay", "100", Required(), Pattern(`^[0-9]{3}$`), ErrorMessage("must enter 3-digits.")).
		Param("-if", "./java.txt", Required()).
		Param("-tt", "0").
		Param("-of", "readme.txt").
		Build()
	require.NoError(t, err)
	return cmd
}

func TestValidate_Parity(t *testing.T) {
	cmd := sampleCmd(t)

	tests := []struct {
		name string
		args []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"single bare flag", []string{"-loop"}},
		{"odd count", []string{"-loop", "1", "-delay"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmd.Check(tt.args)
			require.NotNil(t, err)
			require.Equal(t, usage.ErrMalformedArgs, err.Kind)

			msg := cmd.Validate(tt.args)
			require.Equal(t, "enter '-name value' pairs\n\n"+sampleUsage, msg)
		})
	}
}

func TestValidate_RequiredAggregation(t *testing.T) {
	cmd := NewBuilder().
		Help("help").
		Param("A", "1", Required()).
		Param("B", "2", Required()).
		Param("C", "3").
		MustBuild()

	err := cmd.Check([]string{"C", "4"})
	require.NotNil(t, err)
	require.Equal(t, usage.ErrMissingRequired, err.Kind)
	require.Equal(t, []string{"A", "B"}, err.Params)

	msg := cmd.Validate([]string{"C", "4"})
	require.Equal(t, "enter required parms: A B\n\nhelp", msg)
	require.NotContains(t, strings.TrimSuffix(msg, "\n\nhelp"), "C")
}

func TestValidate_RequiredOnlyInNamePositions(t *testing.T) {
	cmd := sampleCmd(t)

	// "-if" appears as a value, not as a name.
	err := cmd.Check([]string{"-loop", "1", "-delay", "-if"})
	require.NotNil(t, err)
	require.Equal(t, usage.ErrMissingRequired, err.Kind)
	require.Equal(t, []string{"-if"}, err.Params)
}

func TestValidate_RequiredCheckedBeforePairs(t *testing.T) {
	cmd := sampleCmd(t)

	err := cmd.Check([]string{"-bogus", "x"})
	require.NotNil(t, err)
	require.Equal(t, usage.ErrMissingRequired, err.Kind)
	require.Equal(t, []string{"-loop", "-delay", "-if"}, err.Params)
}

func TestValidate_UnknownParam(t *testing.T) {
	cmd := sampleCmd(t)

	err := cmd.Check([]string{"-loop", "1", "-delay", "555", "-if", "afile.txt", "-bogus", "zz", "-tt", "x"})
	require.NotNil(t, err)
	require.Equal(t, usage.ErrUnknownParam, err.Kind)
	require.Equal(t, "-bogus invalid", err.Message)
	require.Equal(t, 2, err.GetExitCode())
}

func TestValidate_FailFast(t *testing.T) {
	cmd := NewBuilder().
		Param("A", "1", Pattern(`[0-9]+`), ErrorMessage("A needs digits")).
		Param("B", "2", Pattern(`[0-9]+`), ErrorMessage("B needs digits")).
		MustBuild()

	msg := cmd.Validate([]string{"A", "bad", "B", "alsoBad"})
	require.Equal(t, "A value of 'bad' is invalid; A needs digits", msg)
	require.NotContains(t, msg, "B")
}

func TestValidate_FullStringMatch(t *testing.T) {
	cmd := NewBuilder().Param("-n", "1", Pattern(`[0-9]{2}`)).MustBuild()

	require.Empty(t, cmd.Validate([]string{"-n", "12"}))
	require.NotEmpty(t, cmd.Validate([]string{"-n", "123"}))
	require.NotEmpty(t, cmd.Validate([]string{"-n", "x12"}))
}

func TestValidate_UnbalancedPatternCannotEscapeAnchors(t *testing.T) {
	_, err := NewBuilder().Param("-n", "1", Pattern(`a)|(b`)).Build()
	require.Error(t, err)
}

func TestValidate_NoHelp(t *testing.T) {
	cmd := NewBuilder().Param("-n", "1").MustBuild()
	require.Equal(t, "enter '-name value' pairs", cmd.Validate(nil))
}

func TestValidate_Sample(t *testing.T) {
	cmd := sampleCmd(t)

	tests := []struct {
		name     string
		args     []string
		wantKind usage.ErrorKind
		wantMsg  string
	}{
		{
			name:     "only -loop supplied",
			args:     []string{"-loop", "1"},
			wantKind: usage.ErrMissingRequired,
			wantMsg:  "enter required parms: -delay -if",
		},
		{
			name:     "-delay too short",
			args:     []string{"-loop", "1", "-delay", "33", "-if", "afile.txt"},
			wantKind: usage.ErrInvalidValue,
			wantMsg:  "-delay value of '33' is invalid; must enter 3-digits.",
		},
		{
			name:     "-loop not numeric",
			args:     []string{"-loop", "x", "-delay", "555", "-if", "afile.txt"},
			wantKind: usage.ErrInvalidValue,
			wantMsg:  "-loop value of 'x' is invalid;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmd.Check(tt.args)
			require.NotNil(t, err)
			require.Equal(t, tt.wantKind, err.Kind)
			require.Equal(t, tt.wantMsg, err.Message)
			require.Equal(t, tt.wantMsg+"\n\n"+sampleUsage, cmd.Validate(tt.args))
		})
	}

	ok := []string{"-loop", "1", "-delay", "555", "-if", "afile.txt"}
	require.Nil(t, cmd.Check(ok))
	require.Empty(t, cmd.Validate(ok))
}

func TestValidate_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewBuilder().
		Logger(log.NewTo(&buf, log.LevelDebug)).
		Param("-n", "1").
		MustBuild()

	cmd.Validate([]string{"-x", "1"})

	require.Contains(t, buf.String(), "DEBUG: parsecmd: validation failed (unknown parameter): -x invalid")
}
