package app

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-veneer/veneer/pkg/errors"
)

// ConfigFile is the optional per-project configuration file name.
const ConfigFile = "veneer.yaml"

// Config represents the optional veneer.yaml configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	// Verbose enables stack traces in the default error log.
	Verbose bool `yaml:"verbose,omitempty"`
}

// WindowConfig contains window settings.
type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// LoadOptional reads veneer.yaml from dir if present. A missing file yields
// the zero configuration; a malformed one yields a config error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &errors.VeneerError{
			Op:   "app.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", ConfigFile, err),
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.VeneerError{
			Op:   "app.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", ConfigFile, err),
		}
	}
	return &cfg, nil
}
