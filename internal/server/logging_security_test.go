package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureLogs points the default slog logger at a buffer for the test's
// duration and hands the buffer back.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	// Header logging only happens at debug level.
	buf := captureLogs(t, slog.LevelDebug)
	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/session", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Request headers") {
		t.Fatalf("Log output missing headers log: %s", logOutput)
	}

	for _, secret := range []string{"secret-key-123", "Bearer mytoken"} {
		if strings.Contains(logOutput, secret) {
			t.Errorf("SECURITY FAIL: log output leaks %q: %s", secret, logOutput)
		}
	}
	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("Log output missing non-sensitive header: %s", logOutput)
	}
}

func TestLoggingMiddleware_SkipsHealthEndpoints(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	handler := loggingMiddleware(okHandler())

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		buf.Reset()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, rec.Code)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: expected no log output, got %s", path, buf.String())
		}
	}
}

func TestLoggingMiddleware_RecordsStatusCode(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/nope", nil))

	if logOutput := buf.String(); !strings.Contains(logOutput, "status=404") {
		t.Errorf("expected completion log with status=404, got %s", logOutput)
	}
}
