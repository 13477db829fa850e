package sse

import (
	"context"
	"log/slog"

	"senacheck/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the event types clients care about.
// Rejected toggles and the startup load event stay off the stream; they
// are observability signals, not UI state.
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SessionUpdated, s.handleSessionUpdated)
	s.bus.Subscribe(event.CelebrationFired, s.handleCelebration)

	slog.Info("SSE subscriber registered for event types",
		"types", []string{
			string(event.SessionUpdated),
			string(event.CelebrationFired),
		})
}

// handleSessionUpdated forwards settled session views to SSE clients
func (s *Subscriber) handleSessionUpdated(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SessionUpdatedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", string(evt.Type), "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSessionUpdated, SessionUpdatePayload{
		Action: payload.Action,
		View:   payload.View,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSessionUpdated,
		"action", payload.Action,
		"best_tier", payload.View.BestTierName)

	return nil
}

// handleCelebration forwards prize celebrations to SSE clients
func (s *Subscriber) handleCelebration(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CelebrationPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", string(evt.Type), "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeCelebration, CelebrationPayload{
		Tier:           int(payload.Tier),
		TierName:       payload.TierName,
		WinningGameIDs: payload.WinningGameIDs,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeCelebration,
		"tier", payload.TierName,
		"winners", len(payload.WinningGameIDs))

	return nil
}
