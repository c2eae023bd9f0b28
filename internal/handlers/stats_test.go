package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"docuchat-ai/internal/handlers/mocks"
	"docuchat-ai/internal/index"
)

func TestStatsHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		method     string
		mockSetup  func(*mocks.MockIndexAdmin)
		wantStatus int
		wantStats  *index.Stats
	}{
		{
			name:   "successful stats",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockIndexAdmin) {
				m.EXPECT().Stats(gomock.Any()).
					Return(index.Stats{TotalVectors: 42, Dimension: 1536, Status: "green"}, nil)
			},
			wantStatus: http.StatusOK,
			wantStats:  &index.Stats{TotalVectors: 42, Dimension: 1536, Status: "green"},
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			mockSetup:  func(m *mocks.MockIndexAdmin) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "index unavailable",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockIndexAdmin) {
				m.EXPECT().Stats(gomock.Any()).Return(index.Stats{}, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdmin := mocks.NewMockIndexAdmin(ctrl)
			tt.mockSetup(mockAdmin)

			handler := NewStatsHandler(mockAdmin)

			req := httptest.NewRequest(tt.method, "/api/v1/stats", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantStats != nil {
				var got index.Stats
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("ServeHTTP() invalid JSON: %v", err)
				}
				if got != *tt.wantStats {
					t.Errorf("ServeHTTP() stats = %+v, want %+v", got, *tt.wantStats)
				}
			}
		})
	}
}
