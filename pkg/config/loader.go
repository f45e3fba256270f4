package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tetrado/pkg/errors"
)

// EnvPath names the environment variable holding a config file path.
const EnvPath = "TETRADO_CONFIG"

// Load reads the file at path over the defaults and validates the result.
// The decoder is chosen by extension: .yaml/.yml use YAML, anything else
// TOML.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve picks the config file to load: explicit, then $TETRADO_CONFIG,
// then config.toml under the XDG config directory. It returns the defaults
// when no file is found on the implicit paths.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	if env := os.Getenv(EnvPath); env != "" {
		cfg, err := Load(env)
		return cfg, env, err
	}
	if path, ok := defaultPath(); ok {
		cfg, err := Load(path)
		return cfg, path, err
	}
	return Default(), "", nil
}

// defaultPath returns the XDG config file if it exists.
func defaultPath() (string, bool) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	path := filepath.Join(dir, "tetrado", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
