package ingest

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docuchat-ai/internal/contextutil"
	"docuchat-ai/internal/storage"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_indexer.go -package=mocks docuchat-ai/internal/ingest Indexer

// Indexer writes chunk batches into the similarity index.
// Defined here from the consumer's perspective; the vector index adapter
// implements it.
type Indexer interface {
	// UpsertChunks embeds and writes a chunk batch. At-least-once: some
	// chunks may be written even when an error is returned.
	UpsertChunks(ctx context.Context, chunks []Chunk) error
	// DeleteSource removes all previously indexed chunks of one document.
	DeleteSource(ctx context.Context, source string) error
}

// Pipeline discovers PDF documents in a folder, extracts their text,
// chunks it and hands the chunks to the similarity index. A document
// ledger skips documents whose content has not changed since the last run.
type Pipeline struct {
	folder    string
	chunker   *Chunker
	extractor TextExtractor
	docs      storage.DocumentStore
	indexer   Indexer
	logger    *slog.Logger
}

// NewPipeline creates an ingestion pipeline over the given documents folder.
func NewPipeline(
	folder string,
	chunker *Chunker,
	extractor TextExtractor,
	docs storage.DocumentStore,
	indexer Indexer,
) *Pipeline {
	return &Pipeline{
		folder:    folder,
		chunker:   chunker,
		extractor: extractor,
		docs:      docs,
		indexer:   indexer,
		logger:    slog.Default(),
	}
}

// Discover lists the PDF files in the documents folder, non-recursive,
// matching the extension case-insensitively. A missing folder is a soft
// failure: it logs a warning and returns an empty list.
func (p *Pipeline) Discover() []string {
	entries, err := os.ReadDir(p.folder)
	if err != nil {
		p.logger.Warn("documents folder not readable", "folder", p.folder, "error", err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(p.folder, entry.Name()))
		}
	}

	p.logger.Info("discovered pdf files", "folder", p.folder, "count", len(files))
	return files
}

// ProcessDocument extracts and chunks a single document. Chunk IDs are
// assigned after empty-segment discarding, so they are contiguous starting
// at 0, and every chunk carries the document's total chunk count.
// A document without an extractable text layer yields no chunks and no error.
func (p *Pipeline) ProcessDocument(path string) ([]Chunk, error) {
	text, err := p.extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	filename := filepath.Base(path)
	segments := p.chunker.Split(text)

	chunks := make([]Chunk, len(segments))
	for i, segment := range segments {
		chunks[i] = Chunk{
			Source:      filename,
			ChunkID:     i,
			TotalChunks: len(segments),
			Text:        segment,
		}
	}
	return chunks, nil
}

// Run executes a full ingestion: discover, extract, chunk, embed and
// upsert. Documents whose content hash matches the ledger are skipped
// unless force is set; force also drops the ledger so every document is
// re-indexed. Failures are per-document: one bad file never aborts the
// batch.
func (p *Pipeline) Run(ctx context.Context, force bool) (Report, error) {
	logger := contextutil.LoggerFromContext(ctx)
	report := Report{}

	if force {
		if err := p.docs.DeleteAll(ctx); err != nil {
			return report, fmt.Errorf("failed to reset document ledger: %w", err)
		}
		logger.InfoContext(ctx, "document ledger cleared", "folder", p.folder)
	}

	files := p.Discover()
	report.DocumentsFound = len(files)
	if len(files) == 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("no pdf documents found in %s", p.folder))
		return report, nil
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		filename := filepath.Base(path)

		content, err := os.ReadFile(path)
		if err != nil {
			report.DocumentsFailed++
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", filename, err))
			logger.WarnContext(ctx, "failed to read document", "path", path, "error", err)
			continue
		}
		hash := fmt.Sprintf("%x", sha256.Sum256(content))

		existing, err := p.docs.GetByName(ctx, filename)
		if err != nil && err != storage.ErrNotFound {
			logger.WarnContext(ctx, "ledger lookup failed, re-indexing", "document", filename, "error", err)
		}
		if existing != nil && existing.Hash == hash {
			report.DocumentsSkipped++
			logger.DebugContext(ctx, "skipping unchanged document", "document", filename, "hash", hash)
			continue
		}

		chunks, err := p.ProcessDocument(path)
		if err != nil {
			report.DocumentsFailed++
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", filename, err))
			logger.WarnContext(ctx, "failed to process document", "document", filename, "error", err)
			continue
		}
		if len(chunks) == 0 {
			report.DocumentsFailed++
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: no text could be extracted", filename))
			logger.WarnContext(ctx, "no text extracted", "document", filename)
			continue
		}

		if existing != nil {
			// The document changed; drop its old vectors so the index
			// never holds chunks from two versions at once.
			if err := p.indexer.DeleteSource(ctx, filename); err != nil {
				logger.WarnContext(ctx, "failed to delete stale chunks, continuing", "document", filename, "error", err)
			}
		}

		if err := p.indexer.UpsertChunks(ctx, chunks); err != nil {
			report.DocumentsFailed++
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", filename, err))
			logger.ErrorContext(ctx, "failed to index document", "document", filename, "error", err)
			continue
		}

		record := &storage.DocumentRecord{
			Name:       filename,
			Hash:       hash,
			ChunkCount: len(chunks),
			IndexedAt:  time.Now().UTC(),
		}
		if err := p.docs.Upsert(ctx, record); err != nil {
			// The vectors are already written; a stale ledger entry only
			// costs a redundant re-index next run.
			logger.WarnContext(ctx, "failed to update document ledger", "document", filename, "error", err)
		}

		report.DocumentsIndexed++
		report.ChunksIndexed += len(chunks)
		logger.InfoContext(ctx, "indexed document", "document", filename, "chunks", len(chunks))
	}

	logger.InfoContext(ctx, "ingestion completed",
		"found", report.DocumentsFound,
		"indexed", report.DocumentsIndexed,
		"skipped", report.DocumentsSkipped,
		"failed", report.DocumentsFailed,
		"chunks", report.ChunksIndexed,
	)
	return report, nil
}
