package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/keys"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Keys.Mode != "fixed" {
		t.Errorf("Expected default mode fixed, got %q", config.Keys.Mode)
	}
	if config.Keys.PrimeLow != keys.DefaultPrimeLow || config.Keys.PrimeHigh != keys.DefaultPrimeHigh {
		t.Errorf("Expected default range [%d, %d), got [%d, %d)",
			keys.DefaultPrimeLow, keys.DefaultPrimeHigh, config.Keys.PrimeLow, config.Keys.PrimeHigh)
	}
	if config.Output.Transcript != "" {
		t.Errorf("Expected no default transcript, got %q", config.Output.Transcript)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *config != *DefaultConfig() {
		t.Errorf("Expected defaults for a missing file, got %+v", config)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	original := &Config{
		Keys: KeysConfig{
			Mode:      "random",
			PrimeLow:  20,
			PrimeHigh: 60,
			Seed:      1234,
		},
		Output: OutputConfig{Transcript: "/tmp/chat.jsonl"},
	}

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("Expected %+v, got %+v", original, loaded)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[keys]\nmode = \"random\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Keys.Mode != "random" {
		t.Errorf("Expected mode random, got %q", config.Keys.Mode)
	}
	if config.Keys.PrimeHigh != keys.DefaultPrimeHigh {
		t.Errorf("Expected default prime_high %d, got %d", keys.DefaultPrimeHigh, config.Keys.PrimeHigh)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[keys]\nmodulus = 77\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for unknown key, got nil")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not = valid = toml"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid TOML, got nil")
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if _, err := InitConfig(path, false); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Config file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected permissions 0600, got %o", info.Mode().Perm())
	}

	if _, err := InitConfig(path, false); !errors.Is(err, kerrors.ErrConfigExists) {
		t.Errorf("Expected ErrConfigExists on second init, got %v", err)
	}

	if _, err := InitConfig(path, true); err != nil {
		t.Errorf("Expected forced init to succeed, got %v", err)
	}
}

func TestKeyOptions(t *testing.T) {
	config := DefaultConfig()
	config.Keys.Mode = "random"
	config.Keys.Seed = 7

	opts, err := config.KeyOptions()
	if err != nil {
		t.Fatalf("KeyOptions failed: %v", err)
	}
	if opts.Mode != keys.ModeRandom || opts.Seed != 7 {
		t.Errorf("Expected random mode with seed 7, got %+v", opts)
	}
}

func TestKeyOptionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"unknown mode", func(c *Config) { c.Keys.Mode = "secure" }, kerrors.ErrUnknownKeyMode},
		{"inverted range", func(c *Config) { c.Keys.PrimeLow = 100; c.Keys.PrimeHigh = 10 }, kerrors.ErrInvalidPrimeRange},
		{"range above cap", func(c *Config) { c.Keys.PrimeHigh = 5_000_000_000 }, kerrors.ErrInvalidPrimeRange},
		{"negative seed", func(c *Config) { c.Keys.Seed = -1 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			_, err := config.KeyOptions()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	if got := ResolveConfigPath(""); got != RSATraceSettings.ConfigPath {
		t.Errorf("Expected default path %s, got %s", RSATraceSettings.ConfigPath, got)
	}

	t.Setenv(EnvConfigPath, "/from/env.toml")
	if got := ResolveConfigPath(""); got != "/from/env.toml" {
		t.Errorf("Expected env path, got %s", got)
	}

	if got := ResolveConfigPath("/explicit.toml"); got != "/explicit.toml" {
		t.Errorf("Expected explicit path, got %s", got)
	}
}
