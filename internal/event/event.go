package event

import (
	"encoding/json"
	"time"

	"senacheck/internal/domain"
)

// Type names an event on the bus, e.g. "session.updated".
type Type string

// Metadata carries optional envelope extras alongside a payload.
type Metadata interface{}

// Event is the versioned envelope every publisher emits.
type Event struct {
	Version  string      `json:"version"` // schema version, see EventSchemaVersion
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

const (
	// SessionUpdated fires after every completed session action with the
	// fresh view attached
	SessionUpdated Type = "session.updated"

	// CelebrationFired fires when the best tier strictly improves
	CelebrationFired Type = "celebration.fired"

	// SelectionRejected fires when a toggle is refused, currently only
	// because the selection is already full
	SelectionRejected Type = "selection.rejected"

	// TicketsLoaded fires once at startup after the tickets file is
	// normalized into games
	TicketsLoaded Type = "tickets.loaded"
)

// Session update actions carried by SessionUpdatedPayloadV1.Action
const (
	ActionToggle = "toggle"
	ActionClear  = "clear"
	ActionFilter = "filter"
)

// Rejection reasons carried by SelectionRejectedPayloadV1.Reason
const (
	ReasonSelectionFull = "selection_full"
)

// SessionUpdatedPayloadV1 is the typed payload for session update events
type SessionUpdatedPayloadV1 struct {
	Action    string             `json:"action"` // "toggle", "clear" or "filter"
	View      domain.SessionView `json:"view"`
	Timestamp int64              `json:"timestamp"`
}

// CelebrationPayloadV1 is the typed payload for celebration events
type CelebrationPayloadV1 struct {
	Tier           domain.PrizeTier `json:"tier"`
	TierName       string           `json:"tier_name"`
	WinningGameIDs []string         `json:"winning_game_ids"`
	Timestamp      int64            `json:"timestamp"`
}

// SelectionRejectedPayloadV1 is the typed payload for rejected toggles
type SelectionRejectedPayloadV1 struct {
	Number    int    `json:"number"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// TicketsLoadedPayloadV1 is the typed payload for the startup load event
type TicketsLoadedPayloadV1 struct {
	GameCount  int    `json:"game_count"`
	SourcePath string `json:"source_path"`
	Timestamp  int64  `json:"timestamp"`
}

// newEvent stamps the schema version on a payload.
func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewSessionUpdatedEvent creates a session update event carrying the fresh view
func NewSessionUpdatedEvent(action string, view domain.SessionView) Event {
	return newEvent(SessionUpdated, SessionUpdatedPayloadV1{
		Action:    action,
		View:      view,
		Timestamp: time.Now().Unix(),
	})
}

// NewCelebrationEvent creates a celebration event for a newly reached tier
func NewCelebrationEvent(tier domain.PrizeTier, winningGameIDs []string) Event {
	return newEvent(CelebrationFired, CelebrationPayloadV1{
		Tier:           tier,
		TierName:       tier.Name(),
		WinningGameIDs: winningGameIDs,
		Timestamp:      time.Now().Unix(),
	})
}

// NewSelectionRejectedEvent creates an event for a refused toggle
func NewSelectionRejectedEvent(number int, reason string) Event {
	return newEvent(SelectionRejected, SelectionRejectedPayloadV1{
		Number:    number,
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	})
}

// NewTicketsLoadedEvent creates the startup event for a completed ticket load
func NewTicketsLoadedEvent(gameCount int, sourcePath string) Event {
	return newEvent(TicketsLoaded, TicketsLoadedPayloadV1{
		GameCount:  gameCount,
		SourcePath: sourcePath,
		Timestamp:  time.Now().Unix(),
	})
}

// DecodePayload recovers a typed payload from an event. In-process
// publishes carry the struct as-is, so a type assertion suffices;
// anything that went through serialization falls back to a JSON
// round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
