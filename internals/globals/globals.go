package globals

import (
	"os"
	"path/filepath"
)

// GlobalDir holds the config file and the credentials fallback file
var GlobalDir = defaultGlobalDir()

func defaultGlobalDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".webcraft")
	}
	return filepath.Join(configDir, "webcraft")
}
