package arcade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamebox/internal/coinflip"
	"gamebox/internal/connect"
	"gamebox/internal/shutbox"
	"gamebox/internal/stats"
)

func TestHandleMoveAppliesAndRecords(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateConnect(newConnectGame(t))

	st, err := s.HandleMove(rec, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TurnCount)
	assert.Equal(t, connect.PlayerID(0), st.Board[0][0])
	assert.Equal(t, 1, rec.Snapshot().Connect.Moves)
}

func TestHandleMoveWinRecordsOutcome(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateConnect(newConnectGame(t))

	for _, mv := range []connect.Coord{
		{Row: 0, Col: 0}, {Row: 1, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 1},
	} {
		_, err := s.HandleMove(rec, mv.Row, mv.Col)
		require.NoError(t, err)
	}
	st, err := s.HandleMove(rec, 0, 2)
	require.NoError(t, err)
	require.Equal(t, connect.StatusWon, st.Status)

	snap := rec.Snapshot().Connect
	assert.Equal(t, 5, snap.Moves)
	assert.Equal(t, 1, snap.Finished)
	assert.Equal(t, 1, snap.Wins["Player 1"])
}

func TestHandleMoveRejectsWrongKind(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateCoinflip(coinflip.New())

	_, err := s.HandleMove(rec, 0, 0)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Zero(t, rec.Snapshot().Connect.Moves)
}

func TestHandleAIMoveRejectsHumanTurn(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateConnect(newConnectGame(t))

	_, err := s.HandleAIMove(rec)
	assert.ErrorIs(t, err, connect.ErrNotAITurn)
}

func TestHandleAIMovePlaysForBot(t *testing.T) {
	g, err := connect.New(connect.Config{
		Width: 3, Height: 3, WinLength: 3,
		Players: []connect.PlayerConfig{
			{Type: connect.AI, Strategy: "random"},
			{Type: connect.Human},
		},
	})
	require.NoError(t, err)

	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateConnect(g)

	st, err := s.HandleAIMove(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TurnCount)
	assert.Equal(t, connect.PlayerID(1), st.CurrentPlayer)
	assert.Equal(t, 1, rec.Snapshot().Connect.Moves)
}

func TestHandleFlipCounts(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateCoinflip(coinflip.New())

	snap, err := s.HandleFlip(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Flips)

	coins := rec.Snapshot().Coinflip
	assert.Equal(t, 1, coins.Flips)
	assert.Equal(t, 1, coins.Heads+coins.Tails)
}

func TestHandleShutBeforeRoll(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateShutbox(shutbox.New())

	_, err := s.HandleShut(rec, []int{1, 2})
	assert.ErrorIs(t, err, shutbox.ErrNoRoll)
}

func TestHandleRollThenShut(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateShutbox(shutbox.New())

	snap, err := s.HandleRoll(rec)
	require.NoError(t, err)
	require.NotZero(t, snap.Roll)
	require.NotEmpty(t, snap.Combos)

	snap, err = s.HandleShut(rec, snap.Combos[0])
	require.NoError(t, err)
	assert.Zero(t, snap.Roll)
	assert.Less(t, snap.Score, 45)
}

func TestHandleResetStartsFreshRound(t *testing.T) {
	m := NewManager()
	rec := stats.NewRecorder()
	s := m.CreateConnect(newConnectGame(t))

	_, err := s.HandleMove(rec, 0, 0)
	require.NoError(t, err)

	payload := s.HandleReset(rec)
	st, ok := payload.(connect.State)
	require.True(t, ok)
	assert.Zero(t, st.TurnCount)
	assert.Equal(t, connect.StatusActive, st.Status)
	assert.Equal(t, 1, rec.Snapshot().Connect.Started)
}
