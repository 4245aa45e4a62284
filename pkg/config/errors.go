package config

import "errors"

// Configuration loading errors
var (
	// ErrConfigFileNotFound is returned when the config file does not exist
	ErrConfigFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml, .json
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)
