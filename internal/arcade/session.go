package arcade

import (
	"sync"
	"time"

	"gamebox/internal/coinflip"
	"gamebox/internal/connect"
	"gamebox/internal/shutbox"
)

type Kind string

const (
	KindConnect  Kind = "connect"
	KindCoinflip Kind = "coinflip"
	KindShutbox  Kind = "shutbox"
)

// Session wraps one live game instance. Callers hold the session lock for
// the whole intent (validate, apply, snapshot) so a human move and a bot
// computation can never interleave.
type Session struct {
	sync.Mutex

	ID        string
	Kind      Kind
	CreatedAt time.Time

	Connect  *connect.Game
	Coinflip *coinflip.Game
	Shutbox  *shutbox.Game

	seenMu   sync.Mutex
	lastSeen time.Time
}

// StatePayload returns the wire snapshot for whichever game the session
// wraps. Callers must hold the session lock.
func (s *Session) StatePayload() any {
	switch s.Kind {
	case KindConnect:
		return s.Connect.State()
	case KindCoinflip:
		return s.Coinflip.Snapshot()
	case KindShutbox:
		return s.Shutbox.Snapshot()
	}
	return nil
}

// Touch marks the session as recently used. Safe without the session lock.
func (s *Session) Touch() {
	s.seenMu.Lock()
	s.lastSeen = time.Now()
	s.seenMu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	return s.lastSeen
}
