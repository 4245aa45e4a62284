package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_HOST", "")
	t.Setenv("AUTH_ENABLED", "")
	t.Setenv("BASIC_AUTH_USER", "")
	t.Setenv("BASIC_AUTH_PASS", "")

	cfg := FromEnv()

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Empty(t, cfg.Gate.AllowedHost)
	assert.False(t, cfg.BasicAuth.Enabled)
	assert.Empty(t, cfg.BasicAuth.Username)
	assert.Empty(t, cfg.BasicAuth.Password)
}

func TestFromEnv_Port(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"valid port", "8080", 8080},
		{"unparsable port falls back silently", "not-a-number", DefaultPort},
		{"empty port uses default", "", DefaultPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.env)
			cfg := FromEnv()
			assert.Equal(t, tt.want, cfg.Server.Port)
		})
	}
}

func TestFromEnv_AllowedHostTrimmed(t *testing.T) {
	t.Setenv("ALLOWED_HOST", "  example.com  ")

	cfg := FromEnv()
	assert.Equal(t, "example.com", cfg.Gate.AllowedHost)
}

func TestFromEnv_BasicAuth(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("BASIC_AUTH_USER", "admin")
	t.Setenv("BASIC_AUTH_PASS", "secret")

	cfg := FromEnv()
	assert.True(t, cfg.BasicAuth.Enabled)
	assert.Equal(t, "admin", cfg.BasicAuth.Username)
	assert.Equal(t, "secret", cfg.BasicAuth.Password)
}

func TestParseTruthy(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"Yes", true},
		{"on", true},
		{"ON", true},
		{" true ", true},
		{"0", false},
		{"false", false},
		{"off", false},
		{"no", false},
		{"", false},
		{"enabled", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTruthy(tt.input), "ParseTruthy(%q)", tt.input)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}
