package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ConfigError reports a fatal configuration problem detected before any
// collaborator call is attempted.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error on %s: %s", e.Key, e.Reason)
}

// Config holds all configuration for the application.
type Config struct {
	OpenAIAPIKey       string
	QdrantAPIKey       string
	QdrantURL          string
	IndexName          string
	EmbeddingModel     string
	EmbeddingDimension int
	ChatModel          string
	ChunkSize          int
	ChunkOverlap       int
	DocumentsFolder    string
	DBPath             string
	APIPort            string
	LogLevel           slog.Level
	LogFormat          string
}

// Load reads configuration through the given provider and returns a Config.
// It applies defaults for optional fields and validates required fields.
// Missing or placeholder API credentials are rejected here, before any
// network call happens.
func Load(p Provider) (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:    p.Get("OPENAI_API_KEY"),
		QdrantAPIKey:    p.Get("QDRANT_API_KEY"),
		QdrantURL:       getValue(p, "QDRANT_URL", "http://localhost:6333"),
		IndexName:       getValue(p, "INDEX_NAME", "documentos-cliente"),
		EmbeddingModel:  getValue(p, "EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:       getValue(p, "CHAT_MODEL", "gpt-4o-mini-2024-07-18"),
		DocumentsFolder: getValue(p, "DOCUMENTS_FOLDER", "documentos"),
		DBPath:          getValue(p, "DB_PATH", "./data/docuchat.db"),
		APIPort:         getValue(p, "API_PORT", "9000"),
		LogFormat:       getValue(p, "LOG_FORMAT", "text"),
	}

	if err := checkCredential("OPENAI_API_KEY", cfg.OpenAIAPIKey, "sk-your"); err != nil {
		return nil, err
	}
	if err := checkCredential("QDRANT_API_KEY", cfg.QdrantAPIKey, "your"); err != nil {
		return nil, err
	}

	var err error
	// Must match the output vector size of the embedding model.
	// text-embedding-3-small produces 1536 dimensions.
	cfg.EmbeddingDimension, err = getIntValue(p, "EMBEDDING_DIMENSION", 1536)
	if err != nil {
		return nil, err
	}
	if cfg.EmbeddingDimension <= 0 {
		return nil, &ConfigError{Key: "EMBEDDING_DIMENSION", Reason: "must be greater than 0"}
	}

	cfg.ChunkSize, err = getIntValue(p, "CHUNK_SIZE", 1000)
	if err != nil {
		return nil, err
	}
	if cfg.ChunkSize <= 0 {
		return nil, &ConfigError{Key: "CHUNK_SIZE", Reason: "must be greater than 0"}
	}

	cfg.ChunkOverlap, err = getIntValue(p, "CHUNK_OVERLAP", 200)
	if err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, &ConfigError{Key: "CHUNK_OVERLAP", Reason: "must be non-negative and smaller than CHUNK_SIZE"}
	}

	cfg.LogLevel, err = parseLogLevel(getValue(p, "LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	// Create the data directory for the document ledger if needed
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// checkCredential rejects missing credentials and the placeholder values
// that ship in example configuration files.
func checkCredential(key, value, placeholderPrefix string) error {
	if strings.TrimSpace(value) == "" {
		return &ConfigError{Key: key, Reason: "is required"}
	}
	if strings.HasPrefix(value, placeholderPrefix) {
		return &ConfigError{Key: key, Reason: "still holds the placeholder value, set a real credential"}
	}
	return nil
}

// getValue gets a configuration value or returns a default value.
func getValue(p Provider, key, defaultValue string) string {
	if value := p.Get(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntValue gets an integer configuration value or returns a default value.
func getIntValue(p Provider, key string, defaultValue int) (int, error) {
	value := p.Get(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ConfigError{Key: key, Reason: "must be a valid integer"}
	}
	return n, nil
}

// parseLogLevel converts a level name into a slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, &ConfigError{Key: "LOG_LEVEL", Reason: fmt.Sprintf("unknown level %q", level)}
	}
}
