package parsecmd

import (
	"github.com/footprint-tools/parsecmd/internal/log"
	"github.com/footprint-tools/parsecmd/usage"
)

// Option configures the parameter being declared by Builder.Param.
type Option func(*Param)

// Pattern overrides the pattern inferred from the default value.
// The pattern always has to match the entire value.
func Pattern(pattern string) Option {
	return func(p *Param) {
		p.Pattern = pattern
	}
}

// Required marks the parameter as mandatory.
func Required() Option {
	return func(p *Param) {
		p.Required = true
	}
}

// RequiredToken marks the parameter as mandatory when tok is exactly "1".
// Any other token leaves it optional; malformed tokens are not an error.
func RequiredToken(tok string) Option {
	return func(p *Param) {
		p.Required = tok == "1"
	}
}

// ErrorMessage sets the text reported when a value fails the pattern.
func ErrorMessage(text string) Option {
	return func(p *Param) {
		p.ErrorMessage = text
	}
}

// Builder accumulates parameter declarations in order.
// Problems with a declaration are held until Build.
type Builder struct {
	params    []Param
	index     map[string]int
	help      string
	usageHelp bool
	logger    Logger
	err       *usage.Error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		index:  make(map[string]int),
		logger: log.NopLogger{},
	}
}

// Help sets the help text echoed after every validation failure.
func (b *Builder) Help(text string) *Builder {
	b.help = text
	return b
}

// UsageHelp makes Build use the synopsis from ParseCmd.Usage as help text,
// replacing anything set with Help.
func (b *Builder) UsageHelp() *Builder {
	b.usageHelp = true
	return b
}

// Logger sets the logger used by the built ParseCmd.
func (b *Builder) Logger(l Logger) *Builder {
	if l == nil {
		l = log.NopLogger{}
	}
	b.logger = l
	return b
}

// Param declares a parameter. Its pattern is inferred from defaultValue
// unless the Pattern option overrides it; it starts optional with no
// error message. Options apply in order.
//
// An empty defaultValue is allowed but marks the parameter as one that can
// never be supplied: Validate reports it as invalid, and Parse always
// yields "" for it.
func (b *Builder) Param(name, defaultValue string, opts ...Option) *Builder {
	p := Param{
		Name:    name,
		Default: defaultValue,
		Pattern: defaultPattern(defaultValue),
	}
	for _, opt := range opts {
		opt(&p)
	}

	if b.err != nil {
		return b
	}

	if name == "" {
		b.err = usage.InvalidDeclaration(name, "name must not be empty")
		return b
	}

	if _, dup := b.index[name]; dup {
		b.err = usage.DuplicateParam(name)
		return b
	}

	re, err := compilePattern(p.Pattern)
	if err != nil {
		b.err = usage.InvalidPattern(name, p.Pattern, err)
		return b
	}
	p.re = re

	b.index[name] = len(b.params)
	b.params = append(b.params, p)
	return b
}

// Build freezes the declarations into a ParseCmd. The first declaration
// problem encountered, if any, is returned as a *usage.Error.
func (b *Builder) Build() (*ParseCmd, error) {
	if b.err != nil {
		b.logger.Error("parsecmd: build failed: %s", b.err.Message)
		return nil, b.err
	}

	params := make([]Param, len(b.params))
	copy(params, b.params)

	index := make(map[string]int, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}

	b.logger.Debug("parsecmd: built %d parameters", len(params))

	cmd := &ParseCmd{
		params: params,
		index:  index,
		help:   b.help,
		logger: b.logger,
	}
	if b.usageHelp {
		cmd.help = cmd.Usage()
	}
	return cmd, nil
}

// MustBuild is like Build but panics on error. It is meant for
// declarations fixed at compile time.
func (b *Builder) MustBuild() *ParseCmd {
	cmd, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cmd
}
