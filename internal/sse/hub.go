package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"senacheck/internal/metrics"
)

// Event is a single server-sent event as delivered to the browser.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one open event-stream connection.
type Client struct {
	ID           string
	EventChannel chan Event

	// filter holds the event types this client asked for; empty means
	// every type.
	filter map[string]struct{}
}

func (c *Client) wants(eventType string) bool {
	if len(c.filter) == 0 {
		return true
	}
	_, ok := c.filter[eventType]
	return ok
}

// Hub fans events out to connected clients. A single goroutine owns the
// client registry; Register, Unregister and Broadcast hand it work over
// channels, so fan-out never races connection setup or teardown.
type Hub struct {
	attach    chan *Client
	detach    chan string
	events    chan Event
	shutdown  chan struct{}
	loopDone  sync.WaitGroup
	connected atomic.Int64
}

// NewHub creates a hub. Start must be called before clients register.
func NewHub() *Hub {
	return &Hub{
		attach:   make(chan *Client, ClientChannelBuffer),
		detach:   make(chan string, ClientChannelBuffer),
		events:   make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start launches the fan-out loop.
func (h *Hub) Start() {
	h.loopDone.Add(1)
	go h.loop()
}

// Stop ends the fan-out loop and closes every client channel, which in
// turn unblocks the per-connection write loops.
func (h *Hub) Stop() {
	close(h.shutdown)
	h.loopDone.Wait()
}

func (h *Hub) loop() {
	defer h.loopDone.Done()

	clients := make(map[string]*Client)

	defer func() {
		for _, client := range clients {
			close(client.EventChannel)
		}
		// Clients that raced Stop and are still waiting in the attach
		// buffer get closed too, so their handlers exit.
		for {
			select {
			case client := <-h.attach:
				close(client.EventChannel)
			default:
				h.setConnected(0)
				return
			}
		}
	}()

	for {
		select {
		case client := <-h.attach:
			clients[client.ID] = client
			h.setConnected(len(clients))

		case id := <-h.detach:
			client, ok := clients[id]
			if !ok {
				continue
			}
			close(client.EventChannel)
			delete(clients, id)
			h.setConnected(len(clients))

		case evt := <-h.events:
			for _, client := range clients {
				if !client.wants(evt.Type) {
					continue
				}
				select {
				case client.EventChannel <- evt:
				default:
					// Slow consumer; drop rather than stall the loop.
					// The next session update supersedes this one.
				}
			}

		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) setConnected(n int) {
	h.connected.Store(int64(n))
	metrics.SSEClientsConnected.Set(float64(n))
}

// Register opens a new client, optionally restricted to the given event
// types. The client is attached asynchronously; events broadcast before
// the loop picks it up are not delivered to it.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			client.filter[t] = struct{}{}
		}
	}

	select {
	case h.attach <- client:
	case <-h.shutdown:
		// Hub already stopping; hand back a closed channel so the
		// caller's read loop exits immediately.
		close(client.EventChannel)
	}
	return client
}

// Unregister detaches a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	select {
	case h.detach <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client. It never
// blocks the caller: when the queue is full the event is dropped, since
// a newer view makes the lost one stale anyway.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.events <- evt:
	default:
	}
}

// ClientCount returns the number of attached clients.
func (h *Hub) ClientCount() int {
	return int(h.connected.Load())
}

// FormatSSEMessage renders an event in wire format: id and event lines,
// a data line carrying the JSON-encoded event, and a blank terminator.
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "id: %s\n", event.ID)
	fmt.Fprintf(&buf, "event: %s\n", event.Type)
	fmt.Fprintf(&buf, "data: %s\n\n", data)
	return buf.Bytes(), nil
}
