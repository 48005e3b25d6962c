package style

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the colors used for each semantic role.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// DarkColors uses bright colors for dark backgrounds.
var DarkColors = ColorConfig{
	Success: "10",
	Warning: "11",
	Error:   "9",
	Info:    "14",
	Muted:   "245",
	Header:  "bold",
}

// LightColors uses dark, saturated colors for light backgrounds.
var LightColors = ColorConfig{
	Success: "28",
	Warning: "130",
	Error:   "124",
	Info:    "27",
	Muted:   "242",
	Header:  "bold",
}

// hasDarkBackground is replaced in tests.
var hasDarkBackground = termenv.HasDarkBackground

// LoadColorConfig picks the palette matching the terminal background and
// applies overrides keyed "color_success", "color_warning", and so on.
// Override values that are neither "bold" nor a number in 0-255 are ignored.
func LoadColorConfig(overrides map[string]string) ColorConfig {
	colors := LightColors
	if hasDarkBackground() {
		colors = DarkColors
	}

	for key, value := range overrides {
		role, ok := strings.CutPrefix(key, "color_")
		if !ok || !validColor(value) {
			continue
		}
		switch role {
		case "success":
			colors.Success = value
		case "warning":
			colors.Warning = value
		case "error":
			colors.Error = value
		case "info":
			colors.Info = value
		case "muted":
			colors.Muted = value
		case "header":
			colors.Header = value
		}
	}

	return colors
}

func validColor(value string) bool {
	if value == "bold" {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}
