package sse

import "senacheck/internal/domain"

// SessionUpdatePayload is the SSE payload for session state changes.
// It carries the full settled view so clients re-render from scratch
// instead of patching local state.
type SessionUpdatePayload struct {
	Action string             `json:"action"`
	View   domain.SessionView `json:"view"`
}

// CelebrationPayload is the SSE payload for prize celebrations
type CelebrationPayload struct {
	Tier           int      `json:"tier"`
	TierName       string   `json:"tier_name"`
	WinningGameIDs []string `json:"winning_game_ids"`
}
