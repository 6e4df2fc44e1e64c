package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "taskcmd"
	configFileName = ".taskcmdrc"

	// ConfigEnv overrides the config file location.
	ConfigEnv = "TASKCMD_CONFIG"
)

// AppDataDir returns the application data directory, creating it if needed.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns $TASKCMD_CONFIG if set, otherwise ~/.taskcmdrc.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the default path of the diagnostic log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "taskcmd.log")
}
