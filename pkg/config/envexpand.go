package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables referenced as
// {{.VAR_NAME}} in YAML content. Template syntax keeps literal $
// characters intact, so regex patterns and passwords containing $
// survive expansion. Missing variables expand to empty strings and
// are caught by validation when the field is required. Malformed
// template syntax returns the input unchanged so the YAML parser can
// report it in context.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("reflex").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
