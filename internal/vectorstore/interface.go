package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks docuchat-ai/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// CollectionStats describes the current state of a collection.
type CollectionStats struct {
	PointsCount int
	VectorSize  int
	Status      string
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// EnsureCollection creates the collection if absent. An existing
	// collection is reused as-is; a dimension mismatch against existing
	// data surfaces as a service error at write or query time.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns the k nearest points by cosine similarity,
	// ordered by descending score.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// DeleteBySource removes every point whose source metadata matches.
	DeleteBySource(ctx context.Context, collection string, source string) error

	// Stats returns point count, vector size and status of the collection.
	Stats(ctx context.Context, collection string) (CollectionStats, error)

	// Clear removes all points but keeps the collection.
	Clear(ctx context.Context, collection string) error

	// DeleteCollection drops the collection entirely.
	DeleteCollection(ctx context.Context, collection string) error
}
