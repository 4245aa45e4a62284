package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sharedconfig "github.com/ideamans/hellogate/pkg/shared/config"
	"gopkg.in/yaml.v3"
)

// Loader is an interface for loading configuration
type Loader interface {
	Load() (*Config, error)
}

// FileLoader loads configuration from a YAML or JSON file, overlaying it on
// the environment-resolved configuration. Fields absent from the file keep
// their environment (or default) values.
type FileLoader struct {
	path string
}

// NewFileLoader creates a new FileLoader
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and parses the configuration file
// Supports both YAML (.yaml, .yml) and JSON (.json) formats, detected from
// the file extension. Environment variables in the format ${VAR} or
// ${VAR:-default} are expanded before parsing.
func (l *FileLoader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in config file
	data = sharedconfig.ExpandEnvBytes(data)

	// Start from the environment overlay so the file only has to name what
	// it changes
	cfg := FromEnv()
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s (supported: .yaml, .yml, .json)", ErrUnsupportedFormat, ext)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// EnvLoader resolves configuration from the process environment only
type EnvLoader struct{}

// NewEnvLoader creates a new EnvLoader
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{}
}

// Load returns the environment-resolved configuration
func (l *EnvLoader) Load() (*Config, error) {
	cfg := FromEnv()
	applyDefaults(cfg)
	return cfg, nil
}
