package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestDocumentRepo_GetByName_NotFound(t *testing.T) {
	repo := NewDocumentRepo(setupTestDB(t))

	_, err := repo.GetByName(context.Background(), "desconocido.pdf")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByName() error = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepo_UpsertAndGet(t *testing.T) {
	repo := NewDocumentRepo(setupTestDB(t))
	ctx := context.Background()

	indexedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	record := &DocumentRecord{
		Name:       "contrato.pdf",
		Hash:       "abc123",
		ChunkCount: 7,
		IndexedAt:  indexedAt,
	}

	if err := repo.Upsert(ctx, record); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.GetByName(ctx, "contrato.pdf")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.Hash != "abc123" || got.ChunkCount != 7 {
		t.Errorf("GetByName() = %+v", got)
	}
	if !got.IndexedAt.Equal(indexedAt) {
		t.Errorf("GetByName() indexed_at = %v, want %v", got.IndexedAt, indexedAt)
	}
}

func TestDocumentRepo_Upsert_UpdatesExisting(t *testing.T) {
	repo := NewDocumentRepo(setupTestDB(t))
	ctx := context.Background()

	first := &DocumentRecord{Name: "contrato.pdf", Hash: "v1", ChunkCount: 3, IndexedAt: time.Now().UTC()}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	second := &DocumentRecord{Name: "contrato.pdf", Hash: "v2", ChunkCount: 5, IndexedAt: time.Now().UTC()}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.GetByName(ctx, "contrato.pdf")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.Hash != "v2" || got.ChunkCount != 5 {
		t.Errorf("GetByName() after update = %+v", got)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll() = %d records, want 1", len(all))
	}
}

func TestDocumentRepo_ListAll_Ordered(t *testing.T) {
	repo := NewDocumentRepo(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"zeta.pdf", "alfa.pdf", "media.pdf"} {
		if err := repo.Upsert(ctx, &DocumentRecord{Name: name, Hash: "h", ChunkCount: 1, IndexedAt: time.Now().UTC()}); err != nil {
			t.Fatalf("Upsert(%s) error = %v", name, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll() = %d records, want 3", len(all))
	}
	if all[0].Name != "alfa.pdf" || all[2].Name != "zeta.pdf" {
		t.Errorf("ListAll() order = %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}
}

func TestDocumentRepo_DeleteAll(t *testing.T) {
	repo := NewDocumentRepo(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, &DocumentRecord{Name: "a.pdf", Hash: "h", ChunkCount: 1, IndexedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("ListAll() after DeleteAll = %d records, want 0", len(all))
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		value string
	}{
		{"2026-08-30T12:00:00Z"},
		{"2026-08-30 12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseTimestamp(tt.value)
			if err != nil {
				t.Fatalf("parseTimestamp(%q) error = %v", tt.value, err)
			}
			if got.Year() != 2026 || got.Hour() != 12 {
				t.Errorf("parseTimestamp(%q) = %v", tt.value, got)
			}
		})
	}
}
