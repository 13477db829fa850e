package handler

import (
	"net/http"

	"senacheck/internal/domain"
	"senacheck/internal/logger"
)

// GamesResponse lists the loaded games in load order
type GamesResponse struct {
	Total int           `json:"total"`
	Games []domain.Game `json:"games"`
}

// GetGames handles the games listing endpoint
// @Summary List loaded games
// @Description Returns every game expanded from the tickets file, in file order
// @Tags games
// @Produce json
// @Success 200 {object} GamesResponse "Loaded games"
// @Router /games [get]
func (h *SessionHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodGet {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	games := h.sessionSvc.Games(r.Context())

	respondJSON(w, http.StatusOK, GamesResponse{
		Total: len(games),
		Games: games,
	})
}
