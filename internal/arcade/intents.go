package arcade

import (
	"gamebox/internal/bot"
	"gamebox/internal/coinflip"
	"gamebox/internal/connect"
	"gamebox/internal/shutbox"
	"gamebox/internal/stats"
)

// basic error for intents aimed at the wrong game
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrKindMismatch = Error("intent does not match the session's game")
)

// HandleState returns the current wire snapshot.
func (s *Session) HandleState() any {
	s.Lock()
	defer s.Unlock()

	s.Touch()
	return s.StatePayload()
}

// HandleMove applies a human placement to a connect session.
func (s *Session) HandleMove(rec *stats.Recorder, row, col int) (connect.State, error) {
	s.Lock()
	defer s.Unlock()

	if s.Kind != KindConnect {
		return connect.State{}, ErrKindMismatch
	}
	if err := s.Connect.MakeMove(row, col); err != nil {
		return connect.State{}, err
	}
	s.Touch()
	rec.ConnectMove()

	st := s.Connect.State()
	recordConnectOutcome(rec, st)
	return st, nil
}

// HandleAIMove lets the current player's strategy pick and apply a move.
func (s *Session) HandleAIMove(rec *stats.Recorder) (connect.State, error) {
	s.Lock()
	defer s.Unlock()

	if s.Kind != KindConnect {
		return connect.State{}, ErrKindMismatch
	}
	g := s.Connect
	if g.GameOver() {
		return connect.State{}, connect.ErrGameOver
	}
	if !g.CurrentPlayer().IsAI() {
		return connect.State{}, connect.ErrNotAITurn
	}
	mv, ok := bot.Move(g)
	if !ok {
		return connect.State{}, connect.ErrNoLegalMove
	}
	if err := g.MakeMove(mv.Row, mv.Col); err != nil {
		return connect.State{}, err
	}
	s.Touch()
	rec.ConnectMove()

	st := g.State()
	recordConnectOutcome(rec, st)
	return st, nil
}

// HandleTarget resolves where a piece aimed at (row, col) would rest and
// whether that placement is currently legal.
func (s *Session) HandleTarget(row, col int) (connect.Coord, bool, error) {
	s.Lock()
	defer s.Unlock()

	if s.Kind != KindConnect {
		return connect.Coord{}, false, ErrKindMismatch
	}
	if !s.Connect.Board().InBounds(row, col) {
		return connect.Coord{}, false, connect.ErrOutOfBounds
	}
	s.Touch()
	tr, tc := s.Connect.GravityTarget(row, col)
	return connect.Coord{Row: tr, Col: tc}, s.Connect.IsLegalMove(row, col), nil
}

// HandleReset starts a fresh round on whichever game the session wraps.
func (s *Session) HandleReset(rec *stats.Recorder) any {
	s.Lock()
	defer s.Unlock()

	switch s.Kind {
	case KindConnect:
		s.Connect.Reset()
		rec.ConnectStarted()
	case KindCoinflip:
		s.Coinflip.Reset()
	case KindShutbox:
		s.Shutbox.Reset()
		rec.ShutboxStarted()
	}
	s.Touch()
	return s.StatePayload()
}

// HandleFlip tosses the coin on a coinflip session.
func (s *Session) HandleFlip(rec *stats.Recorder) (coinflip.Snapshot, error) {
	s.Lock()
	defer s.Unlock()

	if s.Kind != KindCoinflip {
		return coinflip.Snapshot{}, ErrKindMismatch
	}
	side := s.Coinflip.Flip()
	s.Touch()
	rec.CoinFlipped(side == coinflip.Heads)
	return s.Coinflip.Snapshot(), nil
}

// HandleRoll rolls the dice on a shut-the-box session.
func (s *Session) HandleRoll(rec *stats.Recorder) (shutbox.Snapshot, error) {
	s.Lock()
	defer s.Unlock()

	if s.Kind != KindShutbox {
		return shutbox.Snapshot{}, ErrKindMismatch
	}
	if _, err := s.Shutbox.Roll(); err != nil {
		return shutbox.Snapshot{}, err
	}
	s.Touch()
	if s.Shutbox.Over() {
		rec.ShutboxFinished(s.Shutbox.Score())
	}
	return s.Shutbox.Snapshot(), nil
}

// HandleShut shuts a set of tiles on a shut-the-box session.
func (s *Session) HandleShut(rec *stats.Recorder, tiles []int) (shutbox.Snapshot, error) {
	s.Lock()
	defer s.Unlock()

	if s.Kind != KindShutbox {
		return shutbox.Snapshot{}, ErrKindMismatch
	}
	if err := s.Shutbox.Shut(tiles); err != nil {
		return shutbox.Snapshot{}, err
	}
	s.Touch()
	if s.Shutbox.Over() {
		rec.ShutboxFinished(s.Shutbox.Score())
	}
	return s.Shutbox.Snapshot(), nil
}

func recordConnectOutcome(rec *stats.Recorder, st connect.State) {
	switch st.Status {
	case connect.StatusWon:
		rec.ConnectFinished(st.Winner)
	case connect.StatusDraw:
		rec.ConnectFinished("")
	}
}
