package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"docuchat-ai/internal/config"
	"docuchat-ai/internal/http"
	"docuchat-ai/internal/index"
	"docuchat-ai/internal/ingest"
	"docuchat-ai/internal/llm"
	"docuchat-ai/internal/rag"
	"docuchat-ai/internal/storage"
	"docuchat-ai/internal/vectorstore"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API answers questions about PDF documents using retrieval-augmented
// generation: documents are chunked, embedded and indexed in Qdrant, and
// answers are generated from the most similar chunks.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: DocuChat AI API
//   description: |
//     Question answering over an indexed folder of PDF documents.
//   version: 1.0.0
// schemes:
//   - http
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Secrets can come from a TOML file instead of the environment.
	var provider config.Provider
	if secretsFile := os.Getenv("SECRETS_FILE"); secretsFile != "" {
		secrets, err := config.NewSecretsProvider(secretsFile)
		if err != nil {
			log.Fatalf("Failed to load secrets file: %v", err)
		}
		provider = secrets
	} else {
		provider = config.NewEnvProvider()
	}

	cfg, err := config.Load(provider)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	documentRepo := storage.NewDocumentRepo(db)

	ctx := context.Background()

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL, cfg.QdrantAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	embedder := llm.NewEmbeddingsClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDimension)
	chatClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel)

	adapter := index.NewAdapter(embedder, vectorStore, cfg.IndexName, cfg.EmbeddingDimension)
	if err := adapter.EnsureCollection(ctx); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.IndexName, "dimension", cfg.EmbeddingDimension)

	chunker := ingest.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	pipeline := ingest.NewPipeline(
		cfg.DocumentsFolder,
		chunker,
		ingest.NewPDFExtractor(),
		documentRepo,
		adapter,
	)

	engine := rag.NewEngine()
	engine.Setup(adapter, chatClient)
	slog.Info("Answering engine initialized", "chat_model", cfg.ChatModel, "embedding_model", cfg.EmbeddingModel)

	deps := &http.Deps{
		Engine:     engine,
		Runner:     pipeline,
		IndexAdmin: adapter,
		Documents:  documentRepo,
	}
	router := http.NewRouter(deps)

	// Index whatever is already in the documents folder after the router is up.
	go func() {
		report, err := pipeline.Run(context.Background(), false)
		if err != nil {
			slog.Error("Initial ingestion failed", "error", err)
			return
		}
		slog.Info("Initial ingestion finished",
			"found", report.DocumentsFound,
			"indexed", report.DocumentsIndexed,
			"skipped", report.DocumentsSkipped,
			"failed", report.DocumentsFailed,
			"chunks", report.ChunksIndexed,
		)
	}()

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
