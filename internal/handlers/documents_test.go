package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"docuchat-ai/internal/storage"
	storagemocks "docuchat-ai/internal/storage/mocks"
)

func TestDocumentsHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	indexedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		method     string
		mockSetup  func(*storagemocks.MockDocumentStore)
		wantStatus int
		wantDocs   []DocumentResponse
	}{
		{
			name:   "lists ledger entries",
			method: http.MethodGet,
			mockSetup: func(m *storagemocks.MockDocumentStore) {
				m.EXPECT().ListAll(gomock.Any()).Return([]*storage.DocumentRecord{
					{Name: "contrato.pdf", Hash: "abc", ChunkCount: 3, IndexedAt: indexedAt},
					{Name: "manual.pdf", Hash: "def", ChunkCount: 7, IndexedAt: indexedAt},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantDocs: []DocumentResponse{
				{Filename: "contrato.pdf", ChunkCount: 3, IndexedAt: indexedAt},
				{Filename: "manual.pdf", ChunkCount: 7, IndexedAt: indexedAt},
			},
		},
		{
			name:   "empty ledger",
			method: http.MethodGet,
			mockSetup: func(m *storagemocks.MockDocumentStore) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantDocs:   []DocumentResponse{},
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			mockSetup:  func(m *storagemocks.MockDocumentStore) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "ledger unavailable",
			method: http.MethodGet,
			mockSetup: func(m *storagemocks.MockDocumentStore) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database is locked"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDocs := storagemocks.NewMockDocumentStore(ctrl)
			tt.mockSetup(mockDocs)

			handler := NewDocumentsHandler(mockDocs)

			req := httptest.NewRequest(tt.method, "/api/v1/documents", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantDocs != nil {
				var got []DocumentResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("ServeHTTP() invalid JSON: %v", err)
				}
				if len(got) != len(tt.wantDocs) {
					t.Fatalf("ServeHTTP() documents = %d, want %d", len(got), len(tt.wantDocs))
				}
				for i, doc := range got {
					if doc.Filename != tt.wantDocs[i].Filename || doc.ChunkCount != tt.wantDocs[i].ChunkCount {
						t.Errorf("ServeHTTP() document %d = %+v, want %+v", i, doc, tt.wantDocs[i])
					}
					if !doc.IndexedAt.Equal(tt.wantDocs[i].IndexedAt) {
						t.Errorf("ServeHTTP() document %d indexed_at = %v, want %v", i, doc.IndexedAt, tt.wantDocs[i].IndexedAt)
					}
				}
			}
		})
	}
}
