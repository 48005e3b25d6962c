package config

// Default configuration values (in code, not persisted).
var Defaults = map[string]func() string{
	"log_path":      func() string { return "" }, // empty disables logging
	"log_level":     func() string { return "debug" },
	"color":         func() string { return "auto" }, // auto, always, never
	"color_success": func() string { return "" },     // uses palette default
	"color_warning": func() string { return "" },
	"color_error":   func() string { return "" },
	"color_info":    func() string { return "" },
	"color_muted":   func() string { return "" },
	"color_header":  func() string { return "" },
}

// EnvPrefix prefixes the environment variable of every key, e.g. PARSECMD_LOG_LEVEL.
const EnvPrefix = "PARSECMD_"

// FileEnv names the environment variable holding an optional config file path.
const FileEnv = EnvPrefix + "CONFIG"
