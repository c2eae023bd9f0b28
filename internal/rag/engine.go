package rag

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"docuchat-ai/internal/contextutil"
	"docuchat-ai/internal/index"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retriever.go -package=mocks docuchat-ai/internal/rag Retriever
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completion_client.go -package=mocks docuchat-ai/internal/rag CompletionClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks docuchat-ai/internal/rag Engine

// Retriever finds the chunks most similar to a question.
type Retriever interface {
	Query(ctx context.Context, text string, k int) ([]index.ScoredChunk, error)
}

// CompletionClient generates a reply from a system and user prompt.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Engine answers questions grounded on indexed documents. It must be bound
// to its collaborators with Setup before answering.
type Engine interface {
	Setup(retriever Retriever, completions CompletionClient)
	Answer(ctx context.Context, question string) (Answer, error)
	Converse(ctx context.Context, conv Conversation, question string) (Conversation, Answer, error)
}

type engine struct {
	mu          sync.RWMutex
	retriever   Retriever
	completions CompletionClient
	topK        int
}

// NewEngine creates an unconfigured engine retrieving index.DefaultK chunks
// per question.
func NewEngine() Engine {
	return &engine{topK: index.DefaultK}
}

// Setup binds the engine to its collaborators. Calling it again rebinds.
func (e *engine) Setup(retriever Retriever, completions CompletionClient) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.retriever = retriever
	e.completions = completions
}

// Answer retrieves context for the question, asks the model for a grounded
// reply, and returns it with one citation per distinct source chunk.
func (e *engine) Answer(ctx context.Context, question string) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	e.mu.RLock()
	retriever, completions := e.retriever, e.completions
	e.mu.RUnlock()

	if retriever == nil || completions == nil {
		return Answer{}, ErrNotConfigured
	}

	if strings.TrimSpace(question) == "" {
		return Answer{Text: blankQuestionReply, Sources: []SourceCitation{}}, nil
	}

	chunks, err := retriever.Query(ctx, question, e.topK)
	if err != nil {
		return Answer{}, wrapFault(ErrRetrievalFailed, err)
	}

	logger.Debug("retrieved context", "question_len", len(question), "chunks", len(chunks))

	text, err := completions.Complete(ctx, systemPrompt, buildPrompt(question, chunks))
	if err != nil {
		return Answer{}, wrapFault(ErrGenerationFailed, err)
	}

	return Answer{Text: text, Sources: dedupeCitations(chunks)}, nil
}

// Converse answers the question and returns the conversation extended with
// the user turn and the assistant reply. On error the input conversation is
// returned unchanged.
func (e *engine) Converse(ctx context.Context, conv Conversation, question string) (Conversation, Answer, error) {
	answer, err := e.Answer(ctx, question)
	if err != nil {
		return conv, Answer{}, err
	}

	return conv.WithUser(question).WithAssistant(answer.Text, answer.Sources), answer, nil
}

// dedupeCitations keeps the first citation per (filename, chunk id) pair in
// retrieval order.
func dedupeCitations(chunks []index.ScoredChunk) []SourceCitation {
	seen := make(map[string]bool, len(chunks))
	sources := make([]SourceCitation, 0, len(chunks))

	for _, chunk := range chunks {
		key := fmt.Sprintf("%s-%d", chunk.Source, chunk.ChunkID)
		if seen[key] {
			continue
		}

		seen[key] = true
		sources = append(sources, newCitation(chunk))
	}

	return sources
}
