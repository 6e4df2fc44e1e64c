package config

// Key defines a configuration key with its metadata.
type Key struct {
	Name        string
	Default     string
	Description string
	Section     string // grouping in `taskcmd config list`
	Hidden      bool   // not shown in the generated config file
}

// Keys is the single source of truth for configuration.
// Order determines display order in `taskcmd config list`.
var Keys = []Key{
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Write dispatcher diagnostics to the log file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "log_path",
		Default:     "",
		Description: "Log file location (defaults to the application data directory)",
		Section:     "Logging",
		Hidden:      true,
	},
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored output: auto, always, never",
		Section:     "Display",
	},
	{
		Name:        "color_info",
		Default:     "6",
		Description: "ANSI color (0-255) or 'bold' for command names",
		Section:     "Display",
	},
	{
		Name:        "color_muted",
		Default:     "245",
		Description: "ANSI color (0-255) or 'bold' for secondary text",
		Section:     "Display",
	},
	{
		Name:        "color_header",
		Default:     "bold",
		Description: "ANSI color (0-255) or 'bold' for section headers",
		Section:     "Display",
	},
	{
		Name:        "color_error",
		Default:     "1",
		Description: "ANSI color (0-255) or 'bold' for errors",
		Section:     "Display",
	},
}

// LookupKey returns the key definition for name.
func LookupKey(name string) (Key, bool) {
	for _, k := range Keys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}
