package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deploykit/kitlog/internal/utils"
)

type Settings struct {
	ConfigPath string
	AuditPath  string
}

var KitlogSettings *Settings

// InitSettings resolves the default config and audit paths. configPath
// overrides the config location when non-empty.
func InitSettings(configPath string) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("error getting config directory: %w", err)
	}

	dataDir, err := utils.DataDir()
	if err != nil {
		return fmt.Errorf("error getting data directory: %w", err)
	}

	if configPath == "" {
		configPath = filepath.Join(configDir, "kitlog", "config.toml")
	}

	KitlogSettings = &Settings{
		ConfigPath: configPath,
		AuditPath:  filepath.Join(dataDir, "kitlog", "audit.jsonl"),
	}

	return nil
}
