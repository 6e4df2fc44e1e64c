package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskcmd/taskcmd/internal/log"
	"github.com/taskcmd/taskcmd/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating it with the
// visible defaults if it does not exist yet.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(configPath, 0600); err != nil {
		log.Default().Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Default().Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	var lines []string

	lines = append(lines, "# taskcmd configuration")
	lines = append(lines, "# Edit values below or use: taskcmd config set --key=<key> --value=<value>")

	section := ""
	for _, key := range Keys {
		if key.Hidden {
			continue
		}

		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}

		// Quote values that contain spaces
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
