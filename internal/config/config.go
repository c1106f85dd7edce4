// Package config loads the optional tickload.yaml project file. Settings from
// the file sit below command-line flags and above built-in defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Workers    int              `yaml:"workers"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "tickload.yaml"

// Load reads dir/tickload.yaml. A missing file is ErrConfigNotFound so callers
// can treat it as "use defaults"; a malformed file is a hard error.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
