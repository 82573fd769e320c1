package arcade

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gamebox/internal/coinflip"
	"gamebox/internal/connect"
	"gamebox/internal/shutbox"
)

// Manager owns every live session, keyed by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) CreateConnect(g *connect.Game) *Session {
	return m.add(&Session{Kind: KindConnect, Connect: g})
}

func (m *Manager) CreateCoinflip(g *coinflip.Game) *Session {
	return m.add(&Session{Kind: KindCoinflip, Coinflip: g})
}

func (m *Manager) CreateShutbox(g *shutbox.Game) *Session {
	return m.add(&Session{Kind: KindShutbox, Shutbox: g})
}

func (m *Manager) add(s *Session) *Session {
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now()
	s.lastSeen = s.CreatedAt

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	log.Info().Str("gameId", s.ID).Str("kind", string(s.Kind)).Msg("session created")
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns the IDs
// it removed.
func (m *Manager) Sweep(maxIdle time.Duration) []string {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := []string{}
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}
