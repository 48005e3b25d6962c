package app

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/parsecmd/internal/config"
	"github.com/footprint-tools/parsecmd/internal/domain"
	"github.com/footprint-tools/parsecmd/internal/log"
	"github.com/footprint-tools/parsecmd/internal/ui"
	"github.com/footprint-tools/parsecmd/internal/ui/style"
	"golang.org/x/term"
)

// Options configures the application factory.
type Options struct {
	Getenv func(string) string
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether w is a terminal. In "auto" color mode it is
	// asked separately for Stdout and Stderr.
	IsTerminal func(w io.Writer) bool
}

// DefaultOptions returns options bound to the process environment and stdio.
func DefaultOptions() Options {
	return Options{
		Getenv:     os.Getenv,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: isTerminal,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// New creates an Application with all dependencies wired up.
//
// A log file that cannot be opened is not fatal: a notice goes to Stderr
// and the application runs without logging.
func New(opts Options) (*domain.Application, error) {
	cfg, err := config.Load(opts.Getenv)
	if err != nil {
		return nil, err
	}

	if path, _ := cfg.Get("log_path"); path != "" {
		level, _ := cfg.Get("log_level")
		if err := log.Init(path, log.ParseLevel(level)); err != nil && opts.Stderr != nil {
			fmt.Fprintf(opts.Stderr, "parsecmd: logging disabled: %v\n", err)
		}
	}

	mode, _ := cfg.Get("color")
	outColor := colorEnabled(mode, opts.IsTerminal, opts.Stdout)
	errColor := colorEnabled(mode, opts.IsTerminal, opts.Stderr)
	style.Init(outColor || errColor, cfg.GetAll())

	return &domain.Application{
		Config:    cfg,
		Logger:    log.Default(),
		Output:    ui.NewWriterTo(opts.Stdout),
		Errors:    ui.NewWriterTo(opts.Stderr),
		Styler:    style.NewStyler(outColor),
		ErrStyler: style.NewStyler(errColor),
	}, nil
}

func colorEnabled(mode string, isTerminal func(io.Writer) bool, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal != nil && w != nil && isTerminal(w)
	}
}

// NewForTesting creates an Application with no logging and no styling.
func NewForTesting(stdout, stderr io.Writer) *domain.Application {
	cfg, _ := config.Load(func(string) string { return "" })
	return &domain.Application{
		Config:    cfg,
		Logger:    log.NopLogger{},
		Output:    ui.NewWriterTo(stdout),
		Errors:    ui.NewWriterTo(stderr),
		Styler:    style.NopStyler{},
		ErrStyler: style.NopStyler{},
	}
}

// Close flushes and closes the application's logger.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		if err := app.Logger.Close(); err != nil {
			return err
		}
	}
	return log.Close()
}
