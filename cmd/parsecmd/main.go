package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/footprint-tools/parsecmd/internal/app"
	"github.com/footprint-tools/parsecmd/internal/display"
	"github.com/footprint-tools/parsecmd/internal/domain"
	"github.com/footprint-tools/parsecmd/parsecmd"
	"github.com/footprint-tools/parsecmd/usage"
)

func main() {
	application, err := app.New(app.DefaultOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	code := run(os.Args[1:], application)
	_ = app.Close(application)
	os.Exit(code)
}

// declarations is the sample set: three required parameters and two optional ones.
// Its help text is the usage line derived from the set itself.
func declarations(logger parsecmd.Logger) (*parsecmd.ParseCmd, error) {
	return parsecmd.NewBuilder().
		UsageHelp().
		Logger(logger).
		Param("-loop", "10", parsecmd.Required()).
		Param("-delay", "100",
			parsecmd.Required(),
			parsecmd.Pattern(`^[0-9]{3}$`),
			parsecmd.ErrorMessage("must enter 3-digits.")).
		Param("-if", "./java.txt", parsecmd.Required()).
		Param("-tt", "0").
		Param("-of", "readme.txt").
		Build()
}

func run(args []string, a *domain.Application) int {
	cmd, err := declarations(a.Logger)
	if err != nil {
		return fail(a, err)
	}

	if err := display.Declarations(a.Output, cmd, a.Styler); err != nil {
		return fail(a, err)
	}

	if ue := cmd.Check(args); ue != nil {
		a.Logger.Warn("rejected arguments %q: %s", args, ue.Message)
		_ = display.Failure(a.Errors, ue, a.ErrStyler)
		return ue.GetExitCode()
	}

	result := cmd.Parse(args)
	values := parsecmd.Values(result)
	a.Logger.Info("accepted %d arguments: loop=%d delay=%d input=%s",
		len(args), values.Int("-loop", 0), values.Int("-delay", 0), values.String("-if", ""))
	if err := display.Result(a.Output, cmd, result, a.Styler); err != nil {
		return fail(a, err)
	}
	return 0
}

func fail(a *domain.Application, err error) int {
	a.Logger.Error("%v", err)
	_, _ = a.Errors.Println(a.ErrStyler.Error(err.Error()))

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
