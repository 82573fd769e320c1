package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderAggregates(t *testing.T) {
	r := NewRecorder()

	r.ConnectStarted()
	r.ConnectMove()
	r.ConnectMove()
	r.ConnectFinished("Team 1")
	r.ConnectStarted()
	r.ConnectFinished("")

	r.CoinFlipped(true)
	r.CoinFlipped(false)
	r.CoinFlipped(true)

	r.ShutboxStarted()
	r.ShutboxFinished(12)
	r.ShutboxStarted()
	r.ShutboxFinished(0)

	snap := r.Snapshot()
	assert.Equal(t, 2, snap.Connect.Started)
	assert.Equal(t, 2, snap.Connect.Finished)
	assert.Equal(t, 1, snap.Connect.Draws)
	assert.Equal(t, 2, snap.Connect.Moves)
	assert.Equal(t, map[string]int{"Team 1": 1}, snap.Connect.Wins)

	assert.Equal(t, 3, snap.Coinflip.Flips)
	assert.Equal(t, 2, snap.Coinflip.Heads)
	assert.Equal(t, 1, snap.Coinflip.Tails)

	assert.Equal(t, 2, snap.Shutbox.Rounds)
	assert.Equal(t, 2, snap.Shutbox.Finished)
	assert.Equal(t, 12, snap.Shutbox.TotalScore)
	assert.Equal(t, 1, snap.Shutbox.Perfect)
}

func TestSnapshotIsDetached(t *testing.T) {
	r := NewRecorder()
	r.ConnectFinished("Ann")

	snap := r.Snapshot()
	snap.Connect.Wins["Ann"] = 99

	assert.Equal(t, 1, r.Snapshot().Connect.Wins["Ann"])
}

func TestRecorderIsConcurrencySafe(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.ConnectMove()
				r.CoinFlipped(j%2 == 0)
				_ = r.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, 800, snap.Connect.Moves)
	assert.Equal(t, 800, snap.Coinflip.Flips)
}
