// Package stats aggregates game outcomes for the live charts. Everything
// is in-memory and dies with the process.
package stats

import "sync"

type ConnectStats struct {
	Started  int            `json:"started"`
	Finished int            `json:"finished"`
	Draws    int            `json:"draws"`
	Moves    int            `json:"moves"`
	Wins     map[string]int `json:"wins"`
}

type CoinflipStats struct {
	Flips int `json:"flips"`
	Heads int `json:"heads"`
	Tails int `json:"tails"`
}

type ShutboxStats struct {
	Rounds     int `json:"rounds"`
	Finished   int `json:"finished"`
	TotalScore int `json:"totalScore"`
	Perfect    int `json:"perfect"`
}

// Snapshot is a detached copy safe to serialize concurrently.
type Snapshot struct {
	Connect  ConnectStats  `json:"connect"`
	Coinflip CoinflipStats `json:"coinflip"`
	Shutbox  ShutboxStats  `json:"shutbox"`
}

// Recorder is safe for concurrent use.
type Recorder struct {
	mu       sync.RWMutex
	connect  ConnectStats
	coinflip CoinflipStats
	shutbox  ShutboxStats
}

func NewRecorder() *Recorder {
	return &Recorder{connect: ConnectStats{Wins: map[string]int{}}}
}

func (r *Recorder) ConnectStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connect.Started++
}

func (r *Recorder) ConnectMove() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connect.Moves++
}

// ConnectFinished records a finished game; an empty winner is a draw.
func (r *Recorder) ConnectFinished(winner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connect.Finished++
	if winner == "" {
		r.connect.Draws++
		return
	}
	r.connect.Wins[winner]++
}

func (r *Recorder) CoinFlipped(heads bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coinflip.Flips++
	if heads {
		r.coinflip.Heads++
	} else {
		r.coinflip.Tails++
	}
}

func (r *Recorder) ShutboxStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutbox.Rounds++
}

// ShutboxFinished records a completed round and its final score.
func (r *Recorder) ShutboxFinished(score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutbox.Finished++
	r.shutbox.TotalScore += score
	if score == 0 {
		r.shutbox.Perfect++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Connect:  r.connect,
		Coinflip: r.coinflip,
		Shutbox:  r.shutbox,
	}
	snap.Connect.Wins = make(map[string]int, len(r.connect.Wins))
	for label, n := range r.connect.Wins {
		snap.Connect.Wins[label] = n
	}
	return snap
}
