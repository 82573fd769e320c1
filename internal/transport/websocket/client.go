package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"gamebox/internal/arcade"
	"gamebox/internal/stats"
)

// client is one upgraded connection.
type client struct {
	conn *websocket.Conn

	// writeMu ensures only one goroutine writes to this socket at a time.
	// conn.WriteJSON is not thread-safe.
	writeMu sync.Mutex
}

func (c *client) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

type stateMessage struct {
	Type   string `json:"type"`
	GameID string `json:"gameId"`
	Kind   string `json:"kind"`
	State  any    `json:"state"`
}

type statsMessage struct {
	Type  string         `json:"type"`
	Stats stats.Snapshot `json:"stats"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Hub tracks which connection watches which session thread-safely.
type Hub struct {
	watchers map[string]map[*client]struct{}
	joined   map[*client]string

	mu sync.RWMutex // Protects the maps themselves
}

func NewHub() *Hub {
	return &Hub{
		watchers: make(map[string]map[*client]struct{}),
		joined:   make(map[*client]string),
	}
}

// subscribe points the client at gameID, leaving any previous session.
func (h *Hub) subscribe(c *client, gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(c)
	if h.watchers[gameID] == nil {
		h.watchers[gameID] = make(map[*client]struct{})
	}
	h.watchers[gameID][c] = struct{}{}
	h.joined[c] = gameID
}

// detach removes the client from both maps. Callers hold h.mu.
func (h *Hub) detach(c *client) {
	if old, ok := h.joined[c]; ok {
		delete(h.watchers[old], c)
		if len(h.watchers[old]) == 0 {
			delete(h.watchers, old)
		}
		delete(h.joined, c)
	}
}

// drop deregisters the client and closes its socket.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	h.detach(c)
	h.mu.Unlock()
	c.conn.Close()
}

func (h *Hub) joinedSession(c *client) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	id, ok := h.joined[c]
	return id, ok
}

// PushState fans a session snapshot out to its watchers.
func (h *Hub) PushState(gameID string, kind arcade.Kind, payload any) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.watchers[gameID]))
	for c := range h.watchers[gameID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	msg := stateMessage{Type: "state", GameID: gameID, Kind: string(kind), State: payload}
	for _, c := range targets {
		// goroutine per socket so one slow client doesn't stall the rest
		go func(c *client) {
			if err := c.send(msg); err != nil {
				h.drop(c)
			}
		}(c)
	}
}

// PushStats fans the stats snapshot out to every joined connection.
func (h *Hub) PushStats(snap stats.Snapshot) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.joined))
	for c := range h.joined {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	msg := statsMessage{Type: "stats", Stats: snap}
	for _, c := range targets {
		go func(c *client) {
			if err := c.send(msg); err != nil {
				h.drop(c)
			}
		}(c)
	}
}

// CloseSessions drops every watcher of the given sessions. The cleanup
// worker calls this after a sweep.
func (h *Hub) CloseSessions(ids []string) {
	h.mu.Lock()
	var victims []*client
	for _, id := range ids {
		for c := range h.watchers[id] {
			victims = append(victims, c)
			delete(h.joined, c)
		}
		delete(h.watchers, id)
	}
	h.mu.Unlock()

	for _, c := range victims {
		_ = c.send(errorMessage{Type: "expired", Message: "session expired"})
		c.conn.Close()
	}
	if len(victims) > 0 {
		log.Info().Int("connections", len(victims)).Msg("closed connections for expired sessions")
	}
}

// Len reports the number of joined connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.joined)
}
