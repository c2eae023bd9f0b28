package rag

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when Answer is called before Setup has
	// bound the engine to its collaborators.
	ErrNotConfigured = errors.New("answering engine not configured")
	// ErrRetrievalFailed is returned when embedding the question or
	// searching the similarity index fails.
	ErrRetrievalFailed = errors.New("retrieval failed")
	// ErrGenerationFailed is returned when the language model call fails.
	ErrGenerationFailed = errors.New("answer generation failed")
)

// wrapFault ties a collaborator fault to its sentinel so callers can match
// with errors.Is while keeping the human-readable cause.
func wrapFault(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
