package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Provider resolves raw configuration values by key.
// The caller selects one provider at startup; Load is polymorphic over it.
type Provider interface {
	// Get returns the value for key, or "" when the key is not set.
	Get(key string) string
}

// EnvProvider reads configuration from environment variables.
// If a .env file exists in the current directory or an ancestor, it is
// loaded first; variables already set take precedence over .env values.
type EnvProvider struct{}

// NewEnvProvider creates an EnvProvider and loads .env files.
func NewEnvProvider() *EnvProvider {
	_ = godotenv.Load() // Try current directory

	// Walk up a few directories to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return &EnvProvider{}
}

// Get returns the environment variable value for key.
func (p *EnvProvider) Get(key string) string {
	return os.Getenv(key)
}

// SecretsProvider reads configuration from a TOML secrets file.
// Keys use the same names as the environment variables.
type SecretsProvider struct {
	values map[string]string
}

// NewSecretsProvider loads a TOML secrets file from path.
func NewSecretsProvider(path string) (*SecretsProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secrets file: %w", err)
	}

	values := make(map[string]string)
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}

	return &SecretsProvider{values: values}, nil
}

// Get returns the secrets file value for key.
func (p *SecretsProvider) Get(key string) string {
	return p.values[key]
}
