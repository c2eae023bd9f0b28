package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"docuchat-ai/internal/contextutil"
	"docuchat-ai/internal/index"
	"docuchat-ai/internal/rag"
)

// AskHandler handles HTTP requests for document questions.
type AskHandler struct {
	engine rag.Engine
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(engine rag.Engine) *AskHandler {
	return &AskHandler{engine: engine}
}

// AskRequest represents the HTTP request payload for document questions.
//
// swagger:model AskRequest
type AskRequest struct {
	Question string `json:"question"`
}

// SourceResponse represents a cited source chunk in the HTTP response.
//
// swagger:model SourceResponse
type SourceResponse struct {
	// Name of the source document file
	Filename string `json:"filename"`

	// Index of the chunk within the document
	ChunkID int `json:"chunk_id"`

	// Leading text of the cited chunk
	Preview string `json:"preview"`
}

// AskResponse represents the HTTP response payload for document questions.
//
// swagger:model AskResponse
type AskResponse struct {
	// The generated answer grounded on the indexed documents
	Answer string `json:"answer"`

	// Deduplicated citations of the chunks used as context
	Sources []SourceResponse `json:"sources"`
}

// ServeHTTP handles HTTP requests for document questions.
//
// swagger:route POST /api/v1/ask askQuestion
//
// # Ask a question about the indexed documents
//
// Retrieves the most similar chunks, asks the language model for a grounded
// answer, and returns it with the source citations.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Successful response with answer and sources
//	  schema:
//	    "$ref": "#/definitions/AskResponse"
//	'400':
//	  description: Bad request (invalid body)
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'502':
//	  description: Language model or embedding service error
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'503':
//	  description: Search index unavailable or engine not configured
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  description: Internal server error
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.engine.Answer(ctx, req.Question)
	if err != nil {
		h.handleEngineError(w, r, err)
		return
	}

	sources := make([]SourceResponse, len(answer.Sources))
	for i, src := range answer.Sources {
		sources[i] = SourceResponse{
			Filename: src.Filename,
			ChunkID:  src.ChunkID,
			Preview:  src.Preview,
		}
	}

	writeJSON(w, http.StatusOK, AskResponse{Answer: answer.Text, Sources: sources})
}

// handleEngineError maps answering engine errors to HTTP status codes.
func (h *AskHandler) handleEngineError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "answering engine error", "error", err)

	switch {
	case errors.Is(err, rag.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Answering engine not configured")
	case errors.Is(err, rag.ErrGenerationFailed):
		writeError(w, http.StatusBadGateway, "Language model error")
	case errors.Is(err, rag.ErrRetrievalFailed):
		// Embedding faults are an external service problem, index faults
		// mean the search backend is down.
		if errors.Is(err, index.ErrEmbeddingFailed) {
			writeError(w, http.StatusBadGateway, "Embedding service error")
			return
		}
		writeError(w, http.StatusServiceUnavailable, "Search index unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to answer question")
	}
}
