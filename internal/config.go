package internal

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk client configuration, read from
// ~/.akwaba/config.yaml when present.
type Config struct {
	APIURL    string `yaml:"api_url,omitempty"`
	StatePath string `yaml:"state_path,omitempty"`
}

// ConfigDir returns the directory holding config and state, creating
// nothing. Defaults to ~/.akwaba.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".akwaba"), nil
}

// LoadConfig reads the config file from dir and applies defaults and
// the AKWABA_API_URL environment override. A missing file is not an
// error; an unreadable file falls back to defaults with a warning.
func LoadConfig(dir string) Config {
	cfg := Config{}

	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			LogWarn("ignoring unreadable config %s: %v", path, err)
			cfg = Config{}
		}
	} else if !os.IsNotExist(err) {
		LogWarn("ignoring config %s: %v", path, err)
	}

	if v := os.Getenv("AKWABA_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.StatePath == "" {
		cfg.StatePath = filepath.Join(dir, "state.db")
	}

	return cfg
}

// SaveConfig writes the config file into dir, creating it if needed.
func SaveConfig(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}
