package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "secret substitution",
			input: "api_key: {{.PROVIDER_API_KEY}}",
			env:   map[string]string{"PROVIDER_API_KEY": "secret123"},
			want:  "api_key: secret123",
		},
		{
			name:  "database section with several variables",
			input: "host: {{.DB_HOST}}\nport: {{.DB_PORT}}",
			env:   map[string]string{"DB_HOST": "localhost", "DB_PORT": "5432"},
			want:  "host: localhost\nport: 5432",
		},
		{
			name:  "missing variable expands to empty",
			input: "webhook_secret: {{.UNSET_WEBHOOK_SECRET}}",
			want:  "webhook_secret: ",
		},
		{
			name:  "shell-style reference is left alone",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "literal dollar preserved",
			input: "password: p@ss$word",
			want:  "password: p@ss$word",
		},
		{
			name:  "content without templates unchanged",
			input: "queue:\n  worker_count: 5",
			want:  "queue:\n  worker_count: 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

// Malformed template syntax must pass through untouched and must not
// leak environment values into the output.
func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "should-not-appear")

	for _, input := range []string{
		"api_key: {{.PROVIDER_API_KEY",
		"api_key: {{}}",
		"api_key: }}.PROVIDER_API_KEY{{",
	} {
		result := ExpandEnv([]byte(input))
		assert.Equal(t, input, string(result))
		assert.NotContains(t, string(result), "should-not-appear")
	}
}
