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

func TestHealthHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		method     string
		mockSetup  func(*mocks.MockIndexAdmin)
		wantStatus int
		wantHealth string
	}{
		{
			name:   "healthy",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockIndexAdmin) {
				m.EXPECT().Stats(gomock.Any()).Return(index.Stats{Status: "green"}, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
		},
		{
			name:   "index down",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockIndexAdmin) {
				m.EXPECT().Stats(gomock.Any()).Return(index.Stats{}, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			mockSetup:  func(m *mocks.MockIndexAdmin) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdmin := mocks.NewMockIndexAdmin(ctrl)
			tt.mockSetup(mockAdmin)

			handler := NewHealthHandler(mockAdmin)

			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantHealth != "" {
				var resp HealthResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("ServeHTTP() invalid JSON: %v", err)
				}
				if resp.Status != tt.wantHealth {
					t.Errorf("ServeHTTP() health = %q, want %q", resp.Status, tt.wantHealth)
				}
			}
		})
	}
}
