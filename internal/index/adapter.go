package index

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks docuchat-ai/internal/index Embedder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"docuchat-ai/internal/contextutil"
	"docuchat-ai/internal/ingest"
	"docuchat-ai/internal/vectorstore"
)

// DefaultK is the retrieval depth used when the caller does not override
// it. Keeps the assembled prompt within a comfortable context size.
const DefaultK = 4

// ErrEmbeddingFailed marks faults of the embedding collaborator so callers
// can tell them apart from faults of the index itself.
var ErrEmbeddingFailed = errors.New("embedding failed")

// Embedder turns texts into fixed-dimensional vectors.
// Defined here from the consumer's perspective; the OpenAI embeddings
// client implements it.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ScoredChunk is one retrieval hit: the stored chunk plus its similarity
// score. Ephemeral, constructed per query.
type ScoredChunk struct {
	Source      string
	ChunkID     int
	TotalChunks int
	Text        string
	Score       float32
}

// Stats is the read-only view of the index used for readiness checks.
type Stats struct {
	TotalVectors int    `json:"total_vectors"`
	Dimension    int    `json:"dimension"`
	Status       string `json:"status"`
}

// Adapter binds the embedding collaborator to the similarity index. It is
// the write path for chunk batches and the read path for nearest-neighbor
// queries.
type Adapter struct {
	embedder   Embedder
	store      vectorstore.VectorStore
	collection string
	dimension  int
}

// NewAdapter creates an Adapter over the given collection.
func NewAdapter(embedder Embedder, store vectorstore.VectorStore, collection string, dimension int) *Adapter {
	return &Adapter{
		embedder:   embedder,
		store:      store,
		collection: collection,
		dimension:  dimension,
	}
}

// EnsureCollection makes sure the backing collection exists with the
// configured dimension and cosine metric. Idempotent.
func (a *Adapter) EnsureCollection(ctx context.Context) error {
	return a.store.EnsureCollection(ctx, a.collection, a.dimension)
}

// UpsertChunks embeds every chunk text and writes vector plus metadata
// into the index. At-least-once: when an error is returned some chunks
// may already have been written.
func (a *Adapter) UpsertChunks(ctx context.Context, chunks []ingest.Chunk) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := a.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("%w: expected %d embeddings, got %d", ErrEmbeddingFailed, len(chunks), len(embeddings))
	}

	points := make([]vectorstore.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = vectorstore.Point{
			ID:  uuid.New().String(),
			Vec: embeddings[i],
			Meta: map[string]any{
				"source":       chunk.Source,
				"chunk_id":     chunk.ChunkID,
				"total_chunks": chunk.TotalChunks,
				"text":         chunk.Text,
			},
		}
	}

	if err := a.store.Upsert(ctx, a.collection, points); err != nil {
		return fmt.Errorf("failed to upsert chunk vectors: %w", err)
	}

	logger.DebugContext(ctx, "chunks indexed", "collection", a.collection, "count", len(chunks))
	return nil
}

// DeleteSource removes all indexed chunks belonging to one document.
func (a *Adapter) DeleteSource(ctx context.Context, source string) error {
	return a.store.DeleteBySource(ctx, a.collection, source)
}

// Query embeds the query text and returns the k nearest chunks ordered by
// descending similarity. k <= 0 selects DefaultK.
func (a *Adapter) Query(ctx context.Context, text string, k int) ([]ScoredChunk, error) {
	if k <= 0 {
		k = DefaultK
	}

	embeddings, err := a.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("%w: no embedding returned for query", ErrEmbeddingFailed)
	}

	results, err := a.store.Search(ctx, a.collection, embeddings[0], k)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	chunks := make([]ScoredChunk, 0, len(results))
	for _, result := range results {
		source, _ := result.Meta["source"].(string)
		text, _ := result.Meta["text"].(string)
		chunks = append(chunks, ScoredChunk{
			Source:      source,
			ChunkID:     metaInt(result.Meta["chunk_id"]),
			TotalChunks: metaInt(result.Meta["total_chunks"]),
			Text:        text,
			Score:       result.Score,
		})
	}
	return chunks, nil
}

// Stats returns point count and dimension of the collection. Callers use
// it for readiness checks and must treat an error as "degraded", never as
// a reason to fail a request.
func (a *Adapter) Stats(ctx context.Context) (Stats, error) {
	stats, err := a.store.Stats(ctx, a.collection)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalVectors: stats.PointsCount,
		Dimension:    stats.VectorSize,
		Status:       stats.Status,
	}, nil
}

// Clear removes all vectors from the collection. Administrative, not on
// the query or ingest hot path.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.store.Clear(ctx, a.collection)
}

// DeleteCollection drops the whole collection. Administrative.
func (a *Adapter) DeleteCollection(ctx context.Context) error {
	return a.store.DeleteCollection(ctx, a.collection)
}

// metaInt converts the numeric types a payload round-trip may produce.
func metaInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
