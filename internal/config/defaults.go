package config

import "github.com/taskcmd/taskcmd/internal/paths"

// Defaults holds the value of every key when the config file does not set it.
// Some defaults are computed at lookup time.
var Defaults = func() map[string]func() string {
	m := make(map[string]func() string, len(Keys))
	for _, k := range Keys {
		value := k.Default
		m[k.Name] = func() string { return value }
	}
	m["log_path"] = paths.LogFilePath
	return m
}()

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := load()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// A missing or unreadable file yields the defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
