package bot

import (
	"gamebox/internal/connect"
)

// Strategy computes a move for player. Implementations are pure reads of
// the game except for the sanctioned win probe, and must only be called
// while at least one legal move exists.
type Strategy func(g *connect.Game, player connect.PlayerID) (connect.Coord, bool)

var strategies = map[string]Strategy{
	"random":          Random,
	"defensive":       Defensive,
	"offensive":       Offensive,
	"smart":           Smart,
	"offensive-smart": OffensiveSmart,
	"defensive-smart": DefensiveSmart,
}

// Select returns the strategy registered under id. Unknown or empty ids
// fall back to Smart.
func Select(id string) Strategy {
	if s, ok := strategies[id]; ok {
		return s
	}
	return Smart
}

// Strategies lists the registered ids.
func Strategies() []string {
	ids := make([]string, 0, len(strategies))
	for id := range strategies {
		ids = append(ids, id)
	}
	return ids
}

// Move computes the current player's move using their configured
// strategy. It fails when the current player is not an AI or no legal
// move remains.
func Move(g *connect.Game) (connect.Coord, bool) {
	p := g.CurrentPlayer()
	if !p.IsAI() {
		return connect.Coord{}, false
	}
	return Select(p.Strategy)(g, p.Index)
}
