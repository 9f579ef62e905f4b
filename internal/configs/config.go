package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/keys"
)

type Config struct {
	Keys   KeysConfig   `toml:"keys" json:"keys"`
	Output OutputConfig `toml:"output" json:"output"`
}

type KeysConfig struct {
	Mode      string `toml:"mode" json:"mode"`
	PrimeLow  int64  `toml:"prime_low" json:"prime_low"`
	PrimeHigh int64  `toml:"prime_high" json:"prime_high"`
	Seed      int64  `toml:"seed" json:"seed"`
}

type OutputConfig struct {
	Transcript string `toml:"transcript" json:"transcript"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Keys: KeysConfig{
			Mode:      string(keys.ModeFixed),
			PrimeLow:  keys.DefaultPrimeLow,
			PrimeHigh: keys.DefaultPrimeHigh,
		},
	}
}

// KeyOptions converts the [keys] table into generator options.
func (c *Config) KeyOptions() (keys.Options, error) {
	mode, err := keys.ParseMode(c.Keys.Mode)
	if err != nil {
		return keys.Options{}, err
	}
	if c.Keys.Seed < 0 {
		return keys.Options{}, fmt.Errorf("seed must not be negative, got %d", c.Keys.Seed)
	}
	if err := keys.CheckRange(c.Keys.PrimeLow, c.Keys.PrimeHigh); err != nil {
		return keys.Options{}, err
	}
	return keys.Options{
		Mode:      mode,
		PrimeLow:  c.Keys.PrimeLow,
		PrimeHigh: c.Keys.PrimeHigh,
		Seed:      uint64(c.Keys.Seed),
	}, nil
}

// LoadConfig loads the configuration at path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to path, creating parent directories.
func SaveConfig(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// InitConfig writes the default configuration to path. It refuses to
// overwrite an existing file unless force is set.
func InitConfig(path string, force bool) (*Config, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, fmt.Errorf("%s: %w", path, kerrors.ErrConfigExists)
	}

	config := DefaultConfig()
	if err := SaveConfig(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveTOML saves a struct to a TOML file.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML loads a TOML file into a struct, rejecting keys it does not know.
func LoadTOML(filePath string, data interface{}) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}
