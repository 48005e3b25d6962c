package config

import (
	"strings"

	"github.com/footprint-tools/parsecmd/internal/domain"
)

// Provider resolves configuration keys from, in order of precedence,
// PARSECMD_<KEY> environment variables, the file named by PARSECMD_CONFIG,
// and Defaults.
type Provider struct {
	file   map[string]string
	getenv func(string) string
}

// Load builds a Provider using getenv to read the environment.
func Load(getenv func(string) string) (*Provider, error) {
	p := &Provider{file: map[string]string{}, getenv: getenv}

	path := getenv(FileEnv)
	if path == "" {
		return p, nil
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	p.file = cfg
	return p, nil
}

func envKey(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// Get returns the value for key and whether it is known at all.
func (p *Provider) Get(key string) (string, bool) {
	if v := p.getenv(envKey(key)); v != "" {
		return v, true
	}
	if v, ok := p.file[key]; ok {
		return v, true
	}
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// GetAll returns every known key with its resolved value. Keys found only
// in the config file are included as well.
func (p *Provider) GetAll() map[string]string {
	all := make(map[string]string, len(Defaults)+len(p.file))
	for key := range Defaults {
		all[key], _ = p.Get(key)
	}
	for key := range p.file {
		all[key], _ = p.Get(key)
	}
	return all
}

var _ domain.ConfigProvider = (*Provider)(nil)
