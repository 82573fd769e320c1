// Package coinflip is the engine behind the coin flip page: fair flips,
// running totals, and streak tracking for the live chart.
package coinflip

import "math/rand"

type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

// recentLimit bounds the rolling history handed to the chart.
const recentLimit = 100

type Game struct {
	heads int
	tails int

	streak     int
	streakSide Side
	longest    map[Side]int

	recent []Side
}

func New() *Game {
	return &Game{longest: map[Side]int{}}
}

// Flip tosses the coin, updates totals and streaks, and returns the side.
func (g *Game) Flip() Side {
	side := Heads
	if rand.Intn(2) == 1 {
		side = Tails
	}
	g.record(side)
	return side
}

func (g *Game) record(side Side) {
	if side == Heads {
		g.heads++
	} else {
		g.tails++
	}

	if side == g.streakSide {
		g.streak++
	} else {
		g.streakSide = side
		g.streak = 1
	}
	if g.streak > g.longest[side] {
		g.longest[side] = g.streak
	}

	g.recent = append(g.recent, side)
	if len(g.recent) > recentLimit {
		g.recent = g.recent[len(g.recent)-recentLimit:]
	}
}

// Reset clears all history.
func (g *Game) Reset() {
	g.heads = 0
	g.tails = 0
	g.streak = 0
	g.streakSide = ""
	g.longest = map[Side]int{}
	g.recent = nil
}

// Snapshot is a read-only view for rendering.
type Snapshot struct {
	Flips        int     `json:"flips"`
	Heads        int     `json:"heads"`
	Tails        int     `json:"tails"`
	HeadsRatio   float64 `json:"headsRatio"`
	Streak       int     `json:"streak"`
	StreakSide   Side    `json:"streakSide,omitempty"`
	LongestHeads int     `json:"longestHeads"`
	LongestTails int     `json:"longestTails"`
	Recent       []Side  `json:"recent"`
}

func (g *Game) Snapshot() Snapshot {
	flips := g.heads + g.tails
	snap := Snapshot{
		Flips:        flips,
		Heads:        g.heads,
		Tails:        g.tails,
		Streak:       g.streak,
		StreakSide:   g.streakSide,
		LongestHeads: g.longest[Heads],
		LongestTails: g.longest[Tails],
		Recent:       append([]Side{}, g.recent...),
	}
	if flips > 0 {
		snap.HeadsRatio = float64(g.heads) / float64(flips)
	}
	return snap
}
