package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks docuchat-ai/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DocumentStore defines the interface for document ledger operations.
type DocumentStore interface {
	// GetByName gets a document record by filename.
	// Returns nil and ErrNotFound if not found.
	GetByName(ctx context.Context, name string) (*DocumentRecord, error)
	// Upsert inserts a new document record or updates an existing one.
	Upsert(ctx context.Context, doc *DocumentRecord) error
	// ListAll returns all document records ordered by name.
	ListAll(ctx context.Context) ([]*DocumentRecord, error)
	// DeleteAll drops every ledger entry, forcing full re-ingestion.
	DeleteAll(ctx context.Context) error
}

// DocumentRepo provides methods for document ledger operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// GetByName gets a document record by filename.
// Returns nil and ErrNotFound if not found.
func (r *DocumentRepo) GetByName(ctx context.Context, name string) (*DocumentRecord, error) {
	var doc DocumentRecord
	var indexedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT name, hash, chunk_count, indexed_at FROM documents WHERE name = ?",
		name,
	).Scan(&doc.Name, &doc.Hash, &doc.ChunkCount, &indexedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	doc.IndexedAt, err = parseTimestamp(indexedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse indexed_at timestamp: %w", err)
	}

	return &doc, nil
}

// Upsert inserts a new document record or updates an existing one.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *DocumentRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (name, hash, chunk_count, indexed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			hash = excluded.hash,
			chunk_count = excluded.chunk_count,
			indexed_at = excluded.indexed_at`,
		doc.Name, doc.Hash, doc.ChunkCount, doc.IndexedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// ListAll returns all document records ordered by name.
func (r *DocumentRepo) ListAll(ctx context.Context) ([]*DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, hash, chunk_count, indexed_at FROM documents ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*DocumentRecord
	for rows.Next() {
		var doc DocumentRecord
		var indexedAtStr string
		if err := rows.Scan(&doc.Name, &doc.Hash, &doc.ChunkCount, &indexedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.IndexedAt, err = parseTimestamp(indexedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse indexed_at timestamp: %w", err)
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

// DeleteAll drops every ledger entry.
func (r *DocumentRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

// parseTimestamp handles the formats SQLite may hand back for DATETIME.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
