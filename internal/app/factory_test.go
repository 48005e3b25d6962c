package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/footprint-tools/parsecmd/internal/log"
	"github.com/footprint-tools/parsecmd/internal/ui/style"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	require.NotNil(t, opts.Getenv)
	require.NotNil(t, opts.Stdout)
	require.NotNil(t, opts.Stderr)
	require.NotNil(t, opts.IsTerminal)
}

func TestNewForTesting(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewForTesting(&out, &errOut)

	require.NotNil(t, app.Config)
	require.IsType(t, log.NopLogger{}, app.Logger)
	require.IsType(t, style.NopStyler{}, app.Styler)
	require.IsType(t, style.NopStyler{}, app.ErrStyler)

	_, _ = app.Output.Printf("out")
	_, _ = app.Errors.Printf("err")
	require.Equal(t, "out", out.String())
	require.Equal(t, "err", errOut.String())
	require.NoError(t, Close(app))
}

func TestNew_LogPath(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	logPath := filepath.Join(t.TempDir(), "parsecmd.log")

	app, err := New(Options{
		Getenv: envFrom(map[string]string{
			"PARSECMD_LOG_PATH":  logPath,
			"PARSECMD_LOG_LEVEL": "info",
			"PARSECMD_COLOR":     "never",
		}),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	require.NoError(t, err)

	app.Logger.Debug("hidden")
	app.Logger.Info("shown")
	require.NoError(t, Close(app))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NotContains(t, string(content), "hidden")
	require.Contains(t, string(content), "INFO: shown")
	require.False(t, app.Styler.Enabled())
	require.IsType(t, log.NopLogger{}, log.Default())
}

func TestNew_UnopenableLogPath(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	var stderr bytes.Buffer
	app, err := New(Options{
		Getenv: envFrom(map[string]string{
			"PARSECMD_LOG_PATH": filepath.Join(blocker, "parsecmd.log"),
			"PARSECMD_COLOR":    "never",
		}),
		Stdout: &bytes.Buffer{},
		Stderr: &stderr,
	})
	require.NoError(t, err)
	defer Close(app)

	require.True(t, strings.HasPrefix(stderr.String(), "parsecmd: logging disabled: create log directory:"))
	require.Equal(t, 1, strings.Count(stderr.String(), "\n"))
	require.IsType(t, log.NopLogger{}, app.Logger)
}

func TestNew_ColorModes(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("PARSECMD_NO_COLOR", "")
	defer style.Init(false, nil)

	tests := []struct {
		name    string
		mode    string
		outTTY  bool
		errTTY  bool
		wantOut bool
		wantErr bool
	}{
		{"always", "always", false, false, true, true},
		{"never", "never", true, true, false, false},
		{"auto both terminals", "auto", true, true, true, true},
		{"auto no terminal", "auto", false, false, false, false},
		{"auto stdout piped", "auto", false, true, false, true},
		{"auto stderr piped", "auto", true, false, true, false},
		{"empty mode", "", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			app, err := New(Options{
				Getenv: envFrom(map[string]string{"PARSECMD_COLOR": tt.mode}),
				Stdout: stdout,
				Stderr: stderr,
				IsTerminal: func(w io.Writer) bool {
					if w == io.Writer(stdout) {
						return tt.outTTY
					}
					return tt.errTTY
				},
			})
			require.NoError(t, err)
			require.Equal(t, tt.wantOut, app.Styler.Enabled())
			require.Equal(t, tt.wantErr, app.ErrStyler.Enabled())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, isTerminal(f))
}

func TestNew_BadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0600))

	_, err := New(Options{Getenv: envFrom(map[string]string{"PARSECMD_CONFIG": path})})
	require.Error(t, err)
}
