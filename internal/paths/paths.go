package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "argtree"
	configFileName = ".argtreerc"
	logFileName    = "argtree.log"
)

// AppDataDir returns the application data directory.
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
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the rc file in the home directory.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file:
//   - macOS: ~/Library/Application Support/argtree/argtree.log
//   - Linux: $XDG_CONFIG_HOME/argtree/argtree.log or ~/.config/argtree/argtree.log
//   - Windows: %AppData%\argtree\argtree.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
