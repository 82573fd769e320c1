package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"gamebox/internal/arcade"
	"gamebox/internal/stats"
)

// clientMessage is what the browser sends over the feed.
type clientMessage struct {
	Type   string `json:"type"`
	GameID string `json:"gameId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Handler manages WebSocket dependencies
type Handler struct {
	Hub      *Hub
	Manager  *arcade.Manager
	Recorder *stats.Recorder
	Upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler with dependencies
func NewHandler(hub *Hub, m *arcade.Manager, rec *stats.Recorder, allowedOrigins []string) *Handler {
	return &Handler{
		Hub:      hub,
		Manager:  m,
		Recorder: rec,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// originChecker accepts any origin when none are configured.
func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		for _, o := range allowed {
			if origin == o {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	c := &client{conn: conn}
	done := make(chan struct{})

	defer func() {
		close(done)
		h.Hub.drop(c)
	}()

	// Read deadline detects stale connections; pongs push it forward
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = c.send(errorMessage{Type: "error", Message: "invalid message"})
			continue
		}

		h.processMessage(c, msg)
	}
}

// processMessage routes specific intents
func (h *Handler) processMessage(c *client, msg clientMessage) {
	if msg.Type == "join" {
		s, ok := h.Manager.Get(msg.GameID)
		if !ok {
			_ = c.send(errorMessage{Type: "error", Message: "game not found"})
			return
		}
		h.Hub.subscribe(c, s.ID)
		_ = c.send(stateMessage{Type: "state", GameID: s.ID, Kind: string(s.Kind), State: s.HandleState()})
		_ = c.send(statsMessage{Type: "stats", Stats: h.Recorder.Snapshot()})
		return
	}

	gameID, joined := h.Hub.joinedSession(c)
	if !joined {
		_ = c.send(errorMessage{Type: "error", Message: "join a game first"})
		return
	}
	s, ok := h.Manager.Get(gameID)
	if !ok {
		_ = c.send(errorMessage{Type: "error", Message: "game not found"})
		return
	}

	switch msg.Type {
	case "move":
		st, err := s.HandleMove(h.Recorder, msg.Row, msg.Col)
		if err != nil {
			_ = c.send(errorMessage{Type: "error", Message: err.Error()})
			return
		}
		h.broadcast(s, st)

	case "ai_move":
		st, err := s.HandleAIMove(h.Recorder)
		if err != nil {
			_ = c.send(errorMessage{Type: "error", Message: err.Error()})
			return
		}
		h.broadcast(s, st)

	case "reset":
		h.broadcast(s, s.HandleReset(h.Recorder))

	default:
		_ = c.send(errorMessage{Type: "error", Message: "unknown message type"})
	}
}

// broadcast pushes the applied state to the session's watchers and the
// refreshed stats to everyone.
func (h *Handler) broadcast(s *arcade.Session, payload any) {
	h.Hub.PushState(s.ID, s.Kind, payload)
	h.Hub.PushStats(h.Recorder.Snapshot())
}
