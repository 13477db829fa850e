package sse

import (
	"net/http"
	"strings"
	"time"

	"senacheck/internal/logger"
)

// Handler streams session events to the browser. Clients may narrow the
// stream with ?types=session.updated,celebration.fired; without the
// parameter they receive every type.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		filters := parseTypeFilters(r.URL.Query().Get("types"))
		client := hub.Register(filters)

		log := logger.FromContext(r.Context())
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", filters,
			"total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		// Greet the client so the UI can flip its connection indicator
		// without waiting for a session action.
		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   filters,
			},
		}
		if !writeEvent(w, flusher, hello) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case evt, open := <-client.EventChannel:
				if !open {
					// Hub shut down.
					return
				}
				if !writeEvent(w, flusher, evt) {
					return
				}

			case <-keepalive.C:
				ping := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if !writeEvent(w, flusher, ping) {
					return
				}
			}
		}
	}
}

// writeEvent sends one event and reports whether the connection is
// still usable.
func writeEvent(w http.ResponseWriter, flusher http.Flusher, evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		// None of the payload types can fail to marshal; log and move on.
		logger.Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

func parseTypeFilters(param string) []string {
	if param == "" {
		return nil
	}
	var filters []string
	for _, part := range strings.Split(param, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			filters = append(filters, trimmed)
		}
	}
	return filters
}
