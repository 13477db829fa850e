package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senacheck/internal/domain"
	"senacheck/internal/handler"
)

// stubSessionService is a hand-rolled session.Service implementation with
// canned responses and call recording.
type stubSessionService struct {
	view      domain.SessionView
	toggleErr error
	games     []domain.Game
	healthErr error

	toggledNumber int
	cleared       bool
	filterSet     *bool
}

func (s *stubSessionService) View(ctx context.Context) domain.SessionView {
	return s.view
}

func (s *stubSessionService) Toggle(ctx context.Context, number int) (domain.SessionView, error) {
	s.toggledNumber = number
	if s.toggleErr != nil {
		return domain.SessionView{}, s.toggleErr
	}
	view := s.view
	view.Selection = append(append([]int{}, view.Selection...), number)
	return view, nil
}

func (s *stubSessionService) Clear(ctx context.Context) domain.SessionView {
	s.cleared = true
	view := s.view
	view.Selection = nil
	return view
}

func (s *stubSessionService) SetFilter(ctx context.Context, enabled bool) domain.SessionView {
	s.filterSet = &enabled
	view := s.view
	view.FilterHitsOnly = enabled
	return view
}

func (s *stubSessionService) Games(ctx context.Context) []domain.Game {
	return s.games
}

func (s *stubSessionService) CheckHealth(ctx context.Context) error {
	return s.healthErr
}

func baseView() domain.SessionView {
	return domain.SessionView{
		Selection:  []int{5, 12},
		TotalGames: 3,
		ShownGames: 3,
		PrizeCounts: map[domain.PrizeTier]int{
			domain.TierQuadra: 0,
			domain.TierQuina:  0,
			domain.TierSena:   0,
		},
	}
}

func TestSessionHandler_GetSession(t *testing.T) {
	handler.InitValidator()

	t.Run("returns current view", func(t *testing.T) {
		stub := &stubSessionService{view: baseView()}
		h := handler.NewSessionHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		w := httptest.NewRecorder()

		h.GetSession(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var view domain.SessionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, []int{5, 12}, view.Selection)
		assert.Equal(t, 3, view.TotalGames)
	})

	t.Run("rejects POST", func(t *testing.T) {
		h := handler.NewSessionHandler(&stubSessionService{})

		req := httptest.NewRequest(http.MethodPost, "/session", nil)
		w := httptest.NewRecorder()

		h.GetSession(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestSessionHandler_ToggleNumber(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		toggleErr      error
		expectedStatus int
		expectedError  string
		expectedToggle int
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 42},
			expectedStatus: http.StatusOK,
			expectedToggle: 42,
		},
		{
			name:           "Boundary Low",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 1},
			expectedStatus: http.StatusOK,
			expectedToggle: 1,
		},
		{
			name:           "Boundary High",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 60},
			expectedStatus: http.StatusOK,
			expectedToggle: 60,
		},
		{
			name:           "Validation Error (Zero)",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 0},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "Validation Error (Above Range)",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 61},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "must be at most 60",
		},
		{
			name:           "Service Range Error",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 7},
			toggleErr:      fmt.Errorf("%w: %d", domain.ErrNumberOutOfRange, 7),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "between 1 and 60",
		},
		{
			name:           "Internal Server Error",
			method:         http.MethodPost,
			requestBody:    handler.ToggleNumberRequest{Number: 7},
			toggleErr:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "assert.AnError",
		},
		{
			name:           "Invalid Body (Malformed JSON)",
			method:         http.MethodPost,
			requestBody:    "invalid-json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "Invalid Method",
			method:         http.MethodGet,
			requestBody:    handler.ToggleNumberRequest{Number: 7},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSessionService{view: baseView(), toggleErr: tt.toggleErr}
			h := handler.NewSessionHandler(stub)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(tt.method, "/selection/toggle", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.ToggleNumber(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}

			if tt.expectedToggle != 0 {
				assert.Equal(t, tt.expectedToggle, stub.toggledNumber,
					"Service should receive the validated number")
			}
		})
	}
}

func TestSessionHandler_ClearSelection(t *testing.T) {
	handler.InitValidator()

	t.Run("clears and returns view", func(t *testing.T) {
		stub := &stubSessionService{view: baseView()}
		h := handler.NewSessionHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/selection/clear", nil)
		w := httptest.NewRecorder()

		h.ClearSelection(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, stub.cleared)

		var view domain.SessionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Empty(t, view.Selection)
	})

	t.Run("rejects GET", func(t *testing.T) {
		h := handler.NewSessionHandler(&stubSessionService{})

		req := httptest.NewRequest(http.MethodGet, "/selection/clear", nil)
		w := httptest.NewRecorder()

		h.ClearSelection(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestSessionHandler_SetFilter(t *testing.T) {
	handler.InitValidator()

	t.Run("enables the filter", func(t *testing.T) {
		stub := &stubSessionService{view: baseView()}
		h := handler.NewSessionHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/filter", strings.NewReader(`{"enabled":true}`))
		w := httptest.NewRecorder()

		h.SetFilter(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.filterSet)
		assert.True(t, *stub.filterSet)

		var view domain.SessionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.True(t, view.FilterHitsOnly)
	})

	t.Run("disables the filter", func(t *testing.T) {
		stub := &stubSessionService{view: baseView()}
		h := handler.NewSessionHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/filter", strings.NewReader(`{"enabled":false}`))
		w := httptest.NewRecorder()

		h.SetFilter(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.filterSet)
		assert.False(t, *stub.filterSet, "Explicit false must reach the service")
	})

	t.Run("rejects missing enabled field", func(t *testing.T) {
		stub := &stubSessionService{view: baseView()}
		h := handler.NewSessionHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/filter", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		h.SetFilter(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, stub.filterSet, "Service must not be called for invalid requests")
		assert.Contains(t, strings.ToLower(w.Body.String()), "enabled")
	})

	t.Run("rejects GET", func(t *testing.T) {
		h := handler.NewSessionHandler(&stubSessionService{})

		req := httptest.NewRequest(http.MethodGet, "/filter", nil)
		w := httptest.NewRecorder()

		h.SetFilter(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestSessionHandler_GetGames(t *testing.T) {
	handler.InitValidator()

	t.Run("lists games in load order", func(t *testing.T) {
		stub := &stubSessionService{
			games: []domain.Game{
				{ID: "aposta-semanal", SourceID: "aposta-semanal", Numbers: []int{5, 12, 23, 34, 45, 56}},
				{ID: "bolao-1", SourceID: "bolao", Numbers: []int{4, 18, 22, 37, 49, 60}},
			},
		}
		h := handler.NewSessionHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		w := httptest.NewRecorder()

		h.GetGames(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.GamesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)
		require.Len(t, resp.Games, 2)
		assert.Equal(t, "aposta-semanal", resp.Games[0].ID)
		assert.Equal(t, "bolao-1", resp.Games[1].ID)
	})

	t.Run("rejects POST", func(t *testing.T) {
		h := handler.NewSessionHandler(&stubSessionService{})

		req := httptest.NewRequest(http.MethodPost, "/games", nil)
		w := httptest.NewRecorder()

		h.GetGames(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
