package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senacheck/internal/domain"
	"senacheck/internal/event"
)

func TestSubscriber_ForwardsSessionUpdates(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	view := domain.SessionView{
		Selection:  []int{3, 14},
		TotalGames: 4,
		BestTier:   domain.TierNone,
	}
	err := bus.Publish(context.Background(), event.NewSessionUpdatedEvent(event.ActionToggle, view))
	require.NoError(t, err)

	evt := receiveEvent(t, client)
	assert.Equal(t, EventTypeSessionUpdated, evt.Type)

	payload, ok := evt.Payload.(SessionUpdatePayload)
	require.True(t, ok, "expected SessionUpdatePayload, got %T", evt.Payload)
	assert.Equal(t, event.ActionToggle, payload.Action)
	assert.Equal(t, []int{3, 14}, payload.View.Selection)
	assert.Equal(t, 4, payload.View.TotalGames)
}

func TestSubscriber_ForwardsCelebrations(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	err := bus.Publish(context.Background(), event.NewCelebrationEvent(domain.TierSena, []string{"A"}))
	require.NoError(t, err)

	evt := receiveEvent(t, client)
	assert.Equal(t, EventTypeCelebration, evt.Type)

	payload, ok := evt.Payload.(CelebrationPayload)
	require.True(t, ok, "expected CelebrationPayload, got %T", evt.Payload)
	assert.Equal(t, int(domain.TierSena), payload.Tier)
	assert.Equal(t, "Sena", payload.TierName)
	assert.Equal(t, []string{"A"}, payload.WinningGameIDs)
}

func TestSubscriber_IgnoresMalformedPayload(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	// A payload that cannot decode into the typed struct is dropped
	// without failing the publish.
	err := bus.Publish(context.Background(), event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SessionUpdated,
		Payload: 42,
	})
	require.NoError(t, err)

	select {
	case evt := <-client.EventChannel:
		t.Fatalf("expected no broadcast for malformed payload, got %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}
