package rag

import (
	"docuchat-ai/internal/index"
)

const previewRunes = 150

// SourceCitation points at a specific chunk of a source document that was
// supplied to the model as context.
type SourceCitation struct {
	Filename string `json:"filename"`
	ChunkID  int    `json:"chunk_id"`
	Preview  string `json:"preview"`
}

// Answer carries the generated reply together with the deduplicated
// citations of the context it was grounded on.
type Answer struct {
	Text    string           `json:"answer"`
	Sources []SourceCitation `json:"sources"`
}

func newCitation(chunk index.ScoredChunk) SourceCitation {
	preview := chunk.Text
	if runes := []rune(preview); len(runes) > previewRunes {
		preview = string(runes[:previewRunes]) + "..."
	}

	return SourceCitation{
		Filename: chunk.Source,
		ChunkID:  chunk.ChunkID,
		Preview:  preview,
	}
}
