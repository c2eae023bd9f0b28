package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"docuchat-ai/internal/contextutil"
)

func TestLoggerMiddleware(t *testing.T) {
	var sawLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextutil.LoggerFromContext(r.Context())
		sawLogger = logger != nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()

	LoggerMiddleware(next).ServeHTTP(w, req)

	if !sawLogger {
		t.Error("LoggerMiddleware() did not put a logger in the request context")
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "request with origin",
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "request without origin",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:       "preflight short-circuits",
			method:     http.MethodOptions,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusNoContent,
			wantOrigin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/ask", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			CORS(next).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("CORS() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("CORS() allow-origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}
