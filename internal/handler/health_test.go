package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubHealthChecker implements HealthChecker with a canned result
type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "session ready",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"ok"`},
		},
		{
			name:       "session not ready",
			checkErr:   assert.AnError,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"status":"unavailable"`, `"message":"session service not ready"`},
		},
		{
			name:       "check timeout",
			checkErr:   context.DeadlineExceeded,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"status":"unavailable"`},
		},
		{
			name:       "no tickets loaded",
			checkErr:   errors.New("no games available"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler := HandleReadyz(&stubHealthChecker{err: tt.checkErr})
			handler.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}
