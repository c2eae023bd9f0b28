package storage

import "time"

// DocumentRecord is the ledger entry for one ingested source document.
// The hash lets a re-ingestion run skip documents whose content has not
// changed since they were last embedded.
type DocumentRecord struct {
	Name       string    // Filename within the documents folder
	Hash       string    // SHA256 hex string of the raw file content
	ChunkCount int       // Number of chunks produced at the last ingestion
	IndexedAt  time.Time // When the document was last indexed
}
