// Package server provides the HTTP server and routing for the planner.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"

	"github.com/aristath/fundplan/internal/events"
)

const eventWriteTimeout = 10 * time.Second

// EventsHandler streams bus events to websocket clients.
type EventsHandler struct {
	bus *events.Bus
	log zerolog.Logger
}

// NewEventsHandler creates a new events websocket handler
func NewEventsHandler(bus *events.Bus, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{
		bus: bus,
		log: log.With().Str("component", "events_ws").Logger(),
	}
}

// ServeHTTP handles GET /api/events requests and upgrades them to a
// websocket. An optional types query parameter (comma separated) limits the
// stream to those event types.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	typesFilter := r.URL.Query().Get("types")

	var allowedTypes map[events.EventType]bool
	if typesFilter != "" {
		allowedTypes = make(map[events.EventType]bool)
		for _, t := range strings.Split(typesFilter, ",") {
			allowedTypes[events.EventType(strings.TrimSpace(t))] = true
		}
	}

	h.log.Info().
		Str("types_filter", typesFilter).
		Msg("Client connected to event stream")

	// Buffer to prevent blocking the emitting goroutine
	eventChan := make(chan *events.Event, 100)

	eventHandler := func(event *events.Event) {
		if allowedTypes != nil && !allowedTypes[event.Type] {
			return
		}

		// Non-blocking send (drop if channel full)
		select {
		case eventChan <- event:
		default:
			h.log.Warn().
				Str("event_type", string(event.Type)).
				Msg("Event channel full, dropping event")
		}
	}

	eventTypes := []events.EventType{
		events.PlanCreated,
		events.PlanDeleted,
		events.PlanExpired,
		events.PlanShared,
		events.PlanImported,
		events.RebalanceAnalyzed,
		events.ToolLaunched,
		events.SystemStatusChanged,
		events.ErrorOccurred,
	}

	var unsubscribes []func()
	if allowedTypes == nil {
		for _, eventType := range eventTypes {
			unsubscribes = append(unsubscribes, h.bus.Subscribe(eventType, eventHandler))
		}
	} else {
		for eventType := range allowedTypes {
			unsubscribes = append(unsubscribes, h.bus.Subscribe(eventType, eventHandler))
		}
	}
	defer func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}()

	// Reads are discarded; CloseRead cancels the context when the client
	// goes away
	ctx := conn.CloseRead(r.Context())
	done := ctx.Done()

	if err := h.send(ctx, conn, map[string]interface{}{
		"type":    "connected",
		"message": "Connected to event stream",
	}); err != nil {
		return
	}

	// Heartbeat ticker to keep connection alive
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-done:
			h.log.Info().Msg("Client disconnected from event stream")
			conn.Close(websocket.StatusNormalClosure, "")
			return

		case event := <-eventChan:
			h.log.Debug().
				Str("event_type", string(event.Type)).
				Msg("Sending event to client")

			payload := map[string]interface{}{
				"type":      string(event.Type),
				"module":    event.Module,
				"timestamp": event.Timestamp.Format(time.RFC3339),
				"data":      event.Data,
			}
			if err := h.send(ctx, conn, payload); err != nil {
				h.log.Debug().Err(err).Msg("Failed to write event, closing stream")
				return
			}

		case <-heartbeat.C:
			payload := map[string]interface{}{
				"type":      "heartbeat",
				"timestamp": time.Now().Format(time.RFC3339),
			}
			if err := h.send(ctx, conn, payload); err != nil {
				return
			}
		}
	}
}

func (h *EventsHandler) send(ctx context.Context, conn *websocket.Conn, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to marshal event")
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
	defer cancel()

	return conn.Write(writeCtx, websocket.MessageText, data)
}
