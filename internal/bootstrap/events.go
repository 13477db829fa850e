package bootstrap

import (
	"fmt"
	"log/slog"

	"senacheck/internal/event"
	"senacheck/internal/metrics"
	"senacheck/internal/sse"
)

// InitializeEventSystem creates the in-process event bus.
// Dispatch is synchronous; whatever a publisher triggers has happened by the
// time Publish returns.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
}

// RegisterEventHandlers sets up all event subscribers.
// This includes:
// - Metrics collector (event-driven Prometheus counters and gauges)
// - SSE forwarder (pushes session updates and celebrations to browsers)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	// Register Metrics Collector
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	// Subscribe SSE forwarder
	forwarder := sse.NewSubscriber(deps.Hub, deps.EventBus)
	forwarder.Subscribe()
	slog.Info(LogMsgSSEForwarderSubscribed)

	return nil
}
