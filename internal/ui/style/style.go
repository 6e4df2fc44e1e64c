// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Info, Muted, Header, Error) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorConfig holds one color value per semantic style.
// A value is an ANSI color number (0-255) or "bold".
type ColorConfig struct {
	Info   string
	Muted  string
	Header string
	Error  string
}

// DefaultColors match the config defaults.
var DefaultColors = ColorConfig{
	Info:   "6",
	Muted:  "245",
	Header: "bold",
	Error:  "1",
}

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig

	infoStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
)

// Init initializes the style package with the given enabled state and config.
// It respects NO_COLOR and TASKCMD_NO_COLOR; if either is set to any
// non-empty value, styling is disabled regardless of enable.
//
// cfg may carry color_info, color_muted, color_header and color_error
// overrides. A nil cfg uses DefaultColors.
//
// Call it once from main before any output.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TASKCMD_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	colors = LoadColorConfig(cfg)

	// Force ANSI256 regardless of TTY detection; the caller already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	errorStyle = makeStyle(colors.Error)
}

// LoadColorConfig overlays cfg's color_* keys on DefaultColors.
// Empty values keep the default.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	c := DefaultColors
	set := func(dst *string, key string) {
		if v := cfg[key]; v != "" {
			*dst = v
		}
	}
	set(&c.Info, "color_info")
	set(&c.Muted, "color_muted")
	set(&c.Header, "color_header")
	set(&c.Error, "color_error")
	return c
}

// makeStyle creates a lipgloss style from a color value.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// GetColors returns the active color configuration.
// It is empty if styling is not enabled.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Info styles command names and other highlighted text.
func Info(text string) string {
	return render(&infoStyle, text)
}

// Muted styles less important or secondary information.
func Muted(text string) string {
	return render(&mutedStyle, text)
}

// Header styles section headers.
func Header(text string) string {
	return render(&headerStyle, text)
}

// Error styles error messages.
func Error(text string) string {
	return render(&errorStyle, text)
}
