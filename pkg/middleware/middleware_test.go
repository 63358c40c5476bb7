package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{
			name:       "origem liberada",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://localhost:3000",
			method:     http.MethodGet,
			wantOrigin: "http://localhost:3000",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "origem desconhecida",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://evil.example.com",
			method:     http.MethodGet,
			wantOrigin: "",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "curinga",
			allowed:    []string{"*"},
			origin:     "http://qualquer.example.com",
			method:     http.MethodGet,
			wantOrigin: "http://qualquer.example.com",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "preflight",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://localhost:3000",
			method:     http.MethodOptions,
			wantOrigin: "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/leads", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingResponseWriter_HijackUnsupported(t *testing.T) {
	lrw := newLoggingResponseWriter(httptest.NewRecorder())

	_, _, err := lrw.Hijack()
	assert.Error(t, err)
	assert.False(t, lrw.hijacked)
}
