package event

import (
	"context"
	"fmt"
	"sync"
)

// Handler consumes one event. Publish runs handlers synchronously, so
// they must not block.
type Handler func(ctx context.Context, event Event) error

// Bus is the publish side seen by services and the subscribe side seen
// by forwarders and collectors.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus dispatches events to in-process subscribers.
type MemoryBus struct {
	mu   sync.RWMutex
	subs map[Type][]Handler
}

// NewMemoryBus creates an empty bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[Type][]Handler)}
}

// Subscribe appends handler to the subscriber list for eventType.
// Handlers run in subscription order.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	b.subs[eventType] = append(b.subs[eventType], handler)
	b.mu.Unlock()
}

// Publish delivers evt to every subscriber of its type. A failing
// handler never stops the others; failures are aggregated into the
// returned error.
func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.subs[evt.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handle := range handlers {
		if err := handle(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), evt.Type, errs)
}
