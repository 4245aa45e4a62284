package config

import (
	"testing"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		envVars map[string]string
		want    string
	}{
		{
			name:    "simple variable substitution",
			input:   "host: ${ALLOWED_HOST}",
			envVars: map[string]string{"ALLOWED_HOST": "example.com"},
			want:    "host: example.com",
		},
		{
			name:    "variable with default value - env set",
			input:   "port: ${PORT:-5000}",
			envVars: map[string]string{"PORT": "8080"},
			want:    "port: 8080",
		},
		{
			name:    "variable with default value - env not set",
			input:   "port: ${PORT:-5000}",
			envVars: map[string]string{},
			want:    "port: 5000",
		},
		{
			name:    "variable with default value - env empty",
			input:   "port: ${PORT:-5000}",
			envVars: map[string]string{"PORT": ""},
			want:    "port: 5000",
		},
		{
			name:    "variable without default - env not set",
			input:   "host: ${ALLOWED_HOST}",
			envVars: map[string]string{},
			want:    "host: ",
		},
		{
			name:    "multiple variables",
			input:   "user: ${BASIC_AUTH_USER}, pass: ${BASIC_AUTH_PASS}",
			envVars: map[string]string{"BASIC_AUTH_USER": "admin", "BASIC_AUTH_PASS": "secret"},
			want:    "user: admin, pass: secret",
		},
		{
			name:    "no variables",
			input:   "status: ok",
			envVars: map[string]string{},
			want:    "status: ok",
		},
		{
			name:    "malformed reference left untouched",
			input:   "value: ${not closed",
			envVars: map[string]string{},
			want:    "value: ${not closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandEnvBytes(t *testing.T) {
	t.Setenv("PORT", "9000")

	got := ExpandEnvBytes([]byte("port: ${PORT:-5000}"))
	if string(got) != "port: 9000" {
		t.Errorf("ExpandEnvBytes = %q, want %q", got, "port: 9000")
	}
}
