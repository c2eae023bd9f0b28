package ingest

// Chunk is a bounded text segment extracted from one source document.
// It is the unit of embedding and retrieval.
type Chunk struct {
	Source      string // Owning document filename (not the full path)
	ChunkID     int    // Position within the document's chunk sequence (starts at 0)
	TotalChunks int    // Chunk count of the owning document
	Text        string // Segment text, non-empty after trimming
}

// Report summarizes one ingestion run.
type Report struct {
	DocumentsFound   int      `json:"documents_found"`
	DocumentsIndexed int      `json:"documents_indexed"`
	DocumentsSkipped int      `json:"documents_skipped"`
	DocumentsFailed  int      `json:"documents_failed"`
	ChunksIndexed    int      `json:"chunks_indexed"`
	Warnings         []string `json:"warnings,omitempty"`
}
