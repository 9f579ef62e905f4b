package configs

import (
	"log"
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that overrides the config location.
const EnvConfigPath = "RSATRACE_CONFIG"

type Settings struct {
	ConfigDir  string
	ConfigPath string
}

var RSATraceSettings *Settings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	RSATraceSettings = &Settings{
		ConfigDir:  filepath.Join(configDir, "rsatrace"),
		ConfigPath: filepath.Join(configDir, "rsatrace", "config.toml"),
	}
}

// ResolveConfigPath picks the config file to use: an explicit path wins,
// then RSATRACE_CONFIG, then the default location.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return RSATraceSettings.ConfigPath
}
