package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"docuchat-ai/internal/index"
	"docuchat-ai/internal/rag"
	ragmocks "docuchat-ai/internal/rag/mocks"
)

func TestAskHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		method        string
		body          interface{}
		mockSetup     func(*ragmocks.MockEngine)
		wantStatus    int
		checkResponse func(*httptest.ResponseRecorder) bool
	}{
		{
			name:   "successful question",
			method: http.MethodPost,
			body:   AskRequest{Question: "¿Cuál es el plazo?"},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().
					Answer(gomock.Any(), "¿Cuál es el plazo?").
					Return(rag.Answer{
						Text: "30 días",
						Sources: []rag.SourceCitation{
							{Filename: "contrato.pdf", ChunkID: 2, Preview: "El plazo"},
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp AskResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.Answer == "30 días" &&
					len(resp.Sources) == 1 &&
					resp.Sources[0].Filename == "contrato.pdf" &&
					resp.Sources[0].ChunkID == 2
			},
		},
		{
			name:   "blank question gets canned reply",
			method: http.MethodPost,
			body:   AskRequest{Question: ""},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().
					Answer(gomock.Any(), "").
					Return(rag.Answer{Text: "Por favor, haz una pregunta específica sobre tus documentos.", Sources: []rag.SourceCitation{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			mockSetup:  func(m *ragmocks.MockEngine) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "invalid json",
			mockSetup:  func(m *ragmocks.MockEngine) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "engine not configured",
			method: http.MethodPost,
			body:   AskRequest{Question: "hola"},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().Answer(gomock.Any(), "hola").Return(rag.Answer{}, rag.ErrNotConfigured)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "generation failure",
			method: http.MethodPost,
			body:   AskRequest{Question: "hola"},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().Answer(gomock.Any(), "hola").
					Return(rag.Answer{}, fmt.Errorf("%w: rate limited", rag.ErrGenerationFailed))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "embedding failure during retrieval",
			method: http.MethodPost,
			body:   AskRequest{Question: "hola"},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().Answer(gomock.Any(), "hola").
					Return(rag.Answer{}, fmt.Errorf("%w: %w", rag.ErrRetrievalFailed, index.ErrEmbeddingFailed))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "search index unavailable",
			method: http.MethodPost,
			body:   AskRequest{Question: "hola"},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().Answer(gomock.Any(), "hola").
					Return(rag.Answer{}, fmt.Errorf("%w: qdrant search: connection refused", rag.ErrRetrievalFailed))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "unexpected error",
			method: http.MethodPost,
			body:   AskRequest{Question: "hola"},
			mockSetup: func(m *ragmocks.MockEngine) {
				m.EXPECT().Answer(gomock.Any(), "hola").Return(rag.Answer{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEngine := ragmocks.NewMockEngine(ctrl)
			tt.mockSetup(mockEngine)

			handler := NewAskHandler(mockEngine)

			var bodyBytes []byte
			switch body := tt.body.(type) {
			case nil:
			case string:
				bodyBytes = []byte(body)
			default:
				bodyBytes, _ = json.Marshal(body)
			}

			req := httptest.NewRequest(tt.method, "/api/v1/ask", bytes.NewBuffer(bodyBytes))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.checkResponse != nil && !tt.checkResponse(w) {
				t.Error("ServeHTTP() response validation failed")
			}
		})
	}
}
