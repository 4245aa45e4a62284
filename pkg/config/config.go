package config

import (
	"os"
	"strconv"
	"strings"
)

// Default server settings
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Gate      GateConfig      `yaml:"gate" json:"gate"`
	BasicAuth BasicAuthConfig `yaml:"basic_auth" json:"basic_auth"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// ServerConfig contains listen address settings
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// GateConfig contains host restriction settings
type GateConfig struct {
	// AllowedHost is the only Host header value admitted.
	// Empty disables the restriction.
	AllowedHost string `yaml:"allowed_host" json:"allowed_host"`
}

// BasicAuthConfig contains the single credential pair protecting the index pages
type BasicAuthConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string             `yaml:"level" json:"level"`
	Color bool               `yaml:"color" json:"color"`
	File  *FileLoggingConfig `yaml:"file" json:"file"`
}

// FileLoggingConfig contains log file rotation settings
type FileLoggingConfig struct {
	Path       string `yaml:"path" json:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// FromEnv returns the default configuration overlaid with the process
// environment:
//
//	PORT            - listen port (default 5000), unparsable values are ignored
//	ALLOWED_HOST    - Host header allow-list value, trimmed, empty disables
//	AUTH_ENABLED    - 1|true|yes|on (case-insensitive) enables basic auth
//	BASIC_AUTH_USER - basic auth username
//	BASIC_AUTH_PASS - basic auth password
func FromEnv() *Config {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
		// Unparsable PORT keeps the default, misconfiguration never crashes
	}

	cfg.Gate.AllowedHost = strings.TrimSpace(os.Getenv("ALLOWED_HOST"))
	cfg.BasicAuth.Enabled = ParseTruthy(os.Getenv("AUTH_ENABLED"))
	cfg.BasicAuth.Username = os.Getenv("BASIC_AUTH_USER")
	cfg.BasicAuth.Password = os.Getenv("BASIC_AUTH_PASS")

	return cfg
}

// ParseTruthy reports whether s is one of the accepted truthy values
// (1, true, yes, on), case-insensitively
func ParseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// applyDefaults sets default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Gate.AllowedHost = strings.TrimSpace(cfg.Gate.AllowedHost)
}
