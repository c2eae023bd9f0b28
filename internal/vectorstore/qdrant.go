package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"docuchat-ai/internal/contextutil"
)

const (
	// readinessAttempts bounds the status polling after collection creation.
	readinessAttempts = 20
	readinessInterval = 500 * time.Millisecond
)

// QdrantStore implements VectorStore using Qdrant.
type QdrantStore struct {
	client *qdrant.Client
}

// NewQdrantStore creates a new Qdrant vector store client.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) is derived from the HTTP port.
func NewQdrantStore(urlStr, apiKey string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	// Extract port from URL, default to 6333 for HTTP
	port := 6334 // Default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client: client,
	}, nil
}

// EnsureCollection creates the collection with cosine distance if it does
// not exist yet and waits until its status reports green. An existing
// collection is reused as-is.
func (s *QdrantStore) EnsureCollection(ctx context.Context, collection string, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if exists {
		logger.InfoContext(ctx, "collection already exists", "collection", collection)
		return nil
	}

	logger.InfoContext(ctx, "creating collection", "collection", collection, "vector_size", vectorSize)
	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(vectorSize),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	for attempt := 0; attempt < readinessAttempts; attempt++ {
		info, err := s.client.GetCollectionInfo(ctx, collection)
		if err == nil && info.Status == qdrant.CollectionStatus_Green {
			logger.InfoContext(ctx, "collection ready", "collection", collection, "vector_size", vectorSize)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readinessInterval):
		}
	}

	return fmt.Errorf("collection %s did not become ready after %d attempts", collection, readinessAttempts)
}

// Upsert inserts or updates points in the collection.
func (s *QdrantStore) Upsert(ctx context.Context, collection string, points []Point) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, point := range points {
		qdrantPoint := &qdrant.PointStruct{
			Id:      qdrant.NewID(point.ID),
			Vectors: qdrant.NewVectors(point.Vec...),
		}

		if len(point.Meta) > 0 {
			qdrantPoint.Payload = qdrant.NewValueMap(point.Meta)
		}

		qdrantPoints = append(qdrantPoints, qdrantPoint)
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         qdrantPoints,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert points", "collection", collection, "count", len(points), "error", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	logger.InfoContext(ctx, "upserted points", "collection", collection, "count", len(points))
	return nil
}

// Search returns the k nearest points by cosine similarity.
func (s *QdrantStore) Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	limit := uint64(k)
	scoredPoints, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(query...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to search points", "collection", collection, "k", k, "error", err)
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	results := make([]SearchResult, 0, len(scoredPoints))
	for _, result := range scoredPoints {
		pointID := ""
		if result.Id != nil {
			pointID = result.Id.GetUuid()
		}

		meta := make(map[string]any)
		if result.Payload != nil {
			meta = convertPayloadToMap(result.Payload)
		}

		results = append(results, SearchResult{
			PointID: pointID,
			Score:   result.Score,
			Meta:    meta,
		})
	}

	logger.InfoContext(ctx, "search completed", "collection", collection, "k", k, "results", len(results))
	return results, nil
}

// DeleteBySource removes every point whose source payload field matches.
func (s *QdrantStore) DeleteBySource(ctx context.Context, collection string, source string) error {
	logger := contextutil.LoggerFromContext(ctx)

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("source", source),
			},
		}),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete points by source", "collection", collection, "source", source, "error", err)
		return fmt.Errorf("failed to delete points by source: %w", err)
	}

	logger.InfoContext(ctx, "deleted points by source", "collection", collection, "source", source)
	return nil
}

// Stats returns point count, vector size and status of the collection.
func (s *QdrantStore) Stats(ctx context.Context, collection string) (CollectionStats, error) {
	info, err := s.client.GetCollectionInfo(ctx, collection)
	if err != nil {
		return CollectionStats{}, fmt.Errorf("failed to get collection info: %w", err)
	}

	var stats CollectionStats

	if config := info.Config; config != nil && config.Params != nil {
		if vectorsConfig := config.Params.GetVectorsConfig(); vectorsConfig != nil {
			if params := vectorsConfig.GetParams(); params != nil {
				stats.VectorSize = int(params.Size)
			}
		}
	}

	if info.PointsCount != nil {
		stats.PointsCount = int(*info.PointsCount)
	}

	stats.Status = "unknown"
	if info.Status != 0 {
		stats.Status = info.Status.String()
	}

	return stats, nil
}

// Clear removes all points but keeps the collection.
func (s *QdrantStore) Clear(ctx context.Context, collection string) error {
	logger := contextutil.LoggerFromContext(ctx)

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points:         qdrant.NewPointsSelectorFilter(&qdrant.Filter{}),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to clear collection", "collection", collection, "error", err)
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	logger.InfoContext(ctx, "collection cleared", "collection", collection)
	return nil
}

// DeleteCollection drops the collection entirely.
func (s *QdrantStore) DeleteCollection(ctx context.Context, collection string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.client.DeleteCollection(ctx, collection); err != nil {
		logger.ErrorContext(ctx, "failed to delete collection", "collection", collection, "error", err)
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	logger.InfoContext(ctx, "collection deleted", "collection", collection)
	return nil
}

// convertPayloadToMap converts Qdrant payload to map[string]any.
func convertPayloadToMap(payload map[string]*qdrant.Value) map[string]any {
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		result[k] = convertValue(v)
	}
	return result
}

// convertValue converts a Qdrant Value to Go any type.
func convertValue(v *qdrant.Value) any {
	switch val := v.Kind.(type) {
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_ListValue:
		list := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			list[i] = convertValue(item)
		}
		return list
	case *qdrant.Value_StructValue:
		return convertPayloadToMap(val.StructValue.Fields)
	default:
		return nil
	}
}
