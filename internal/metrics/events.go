package metrics

import (
	"context"

	"senacheck/internal/event"
	"senacheck/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SessionUpdated,
		event.SelectionRejected,
		event.CelebrationFired,
		event.TicketsLoaded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads
// are logged and skipped rather than failing the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SessionUpdated:
		payload, err := event.DecodePayload[event.SessionUpdatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		SelectionActions.WithLabelValues(payload.Action).Inc()

	case event.SelectionRejected:
		payload, err := event.DecodePayload[event.SelectionRejectedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		SelectionRejections.WithLabelValues(payload.Reason).Inc()

	case event.CelebrationFired:
		payload, err := event.DecodePayload[event.CelebrationPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		Celebrations.WithLabelValues(payload.TierName).Inc()

	case event.TicketsLoaded:
		payload, err := event.DecodePayload[event.TicketsLoadedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		GamesLoaded.Set(float64(payload.GameCount))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
