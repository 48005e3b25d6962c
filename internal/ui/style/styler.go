package style

import "github.com/footprint-tools/parsecmd/internal/domain"

// Styler implements domain.Styler for one output stream. It styles only
// when its own stream wants color and Init enabled styling.
type Styler struct {
	enabled bool
}

// NewStyler creates a Styler for a stream where color is wanted (or not).
func NewStyler(enable bool) *Styler {
	return &Styler{enabled: enable}
}

func (s *Styler) Enabled() bool { return s.enabled && Enabled() }

func (s *Styler) apply(fn func(string) string, text string) string {
	if !s.enabled {
		return text
	}
	return fn(text)
}

func (s *Styler) Success(text string) string { return s.apply(Success, text) }
func (s *Styler) Warning(text string) string { return s.apply(Warning, text) }
func (s *Styler) Error(text string) string   { return s.apply(Error, text) }
func (s *Styler) Info(text string) string    { return s.apply(Info, text) }
func (s *Styler) Muted(text string) string   { return s.apply(Muted, text) }
func (s *Styler) Header(text string) string  { return s.apply(Header, text) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
