package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// mapProvider is a test-only Provider backed by a map.
type mapProvider map[string]string

func (p mapProvider) Get(key string) string { return p[key] }

func validProvider(t *testing.T) mapProvider {
	t.Helper()
	return mapProvider{
		"OPENAI_API_KEY": "sk-proj-abc123",
		"QDRANT_API_KEY": "qdr-secret",
		"DB_PATH":        filepath.Join(t.TempDir(), "data", "test.db"),
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(validProvider(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.QdrantURL != "http://localhost:6333" {
		t.Errorf("QdrantURL = %q", cfg.QdrantURL)
	}
	if cfg.IndexName != "documentos-cliente" {
		t.Errorf("IndexName = %q", cfg.IndexName)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q", cfg.EmbeddingModel)
	}
	if cfg.ChatModel != "gpt-4o-mini-2024-07-18" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.EmbeddingDimension != 1536 {
		t.Errorf("EmbeddingDimension = %d", cfg.EmbeddingDimension)
	}
	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 200 {
		t.Errorf("chunking = %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.DocumentsFolder != "documentos" {
		t.Errorf("DocumentsFolder = %q", cfg.DocumentsFolder)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
		t.Errorf("logging = %v/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	p := validProvider(t)

	if _, err := Load(p); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dataDir := filepath.Dir(p["DB_PATH"])
	if _, err := os.Stat(dataDir); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestLoad_CredentialValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(mapProvider)
		wantKey string
	}{
		{
			name:    "missing openai key",
			mutate:  func(p mapProvider) { delete(p, "OPENAI_API_KEY") },
			wantKey: "OPENAI_API_KEY",
		},
		{
			name:    "placeholder openai key",
			mutate:  func(p mapProvider) { p["OPENAI_API_KEY"] = "sk-your-api-key-here" },
			wantKey: "OPENAI_API_KEY",
		},
		{
			name:    "missing qdrant key",
			mutate:  func(p mapProvider) { delete(p, "QDRANT_API_KEY") },
			wantKey: "QDRANT_API_KEY",
		},
		{
			name:    "placeholder qdrant key",
			mutate:  func(p mapProvider) { p["QDRANT_API_KEY"] = "your-qdrant-key" },
			wantKey: "QDRANT_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProvider(t)
			tt.mutate(p)

			_, err := Load(p)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %v, want ConfigError", err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("ConfigError key = %q, want %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
	}{
		{"non-numeric dimension", "EMBEDDING_DIMENSION", "mil"},
		{"zero dimension", "EMBEDDING_DIMENSION", "0"},
		{"zero chunk size", "CHUNK_SIZE", "0"},
		{"overlap ge chunk size", "CHUNK_OVERLAP", "1000"},
		{"negative overlap", "CHUNK_OVERLAP", "-1"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProvider(t)
			p[tt.key] = tt.value

			if _, err := Load(p); err == nil {
				t.Errorf("Load() error = nil, want error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_LogLevels(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			p := validProvider(t)
			p["LOG_LEVEL"] = tt.value

			cfg, err := Load(p)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.LogLevel != tt.want {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.want)
			}
		})
	}
}

func TestEnvProvider_Get(t *testing.T) {
	t.Setenv("DOCUCHAT_TEST_KEY", "valor")

	p := NewEnvProvider()
	if got := p.Get("DOCUCHAT_TEST_KEY"); got != "valor" {
		t.Errorf("Get() = %q, want %q", got, "valor")
	}
	if got := p.Get("DOCUCHAT_TEST_UNSET"); got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestSecretsProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.toml")
	content := `OPENAI_API_KEY = "sk-proj-abc123"
QDRANT_API_KEY = "qdr-secret"
API_PORT = "9100"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := NewSecretsProvider(path)
	if err != nil {
		t.Fatalf("NewSecretsProvider() error = %v", err)
	}

	if got := p.Get("OPENAI_API_KEY"); got != "sk-proj-abc123" {
		t.Errorf("Get() = %q", got)
	}
	if got := p.Get("API_PORT"); got != "9100" {
		t.Errorf("Get() = %q", got)
	}
	if got := p.Get("MISSING"); got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestSecretsProvider_Errors(t *testing.T) {
	if _, err := NewSecretsProvider(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("NewSecretsProvider() error = nil, want error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("=== not toml ==="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSecretsProvider(bad); err == nil {
		t.Error("NewSecretsProvider() error = nil, want parse error")
	}
}
