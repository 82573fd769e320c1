package bot

import (
	"math/rand"

	"gamebox/internal/connect"
)

// Defensive crowds the strongest opponent: every candidate is rated by
// the longest opponent run already on the board next to it, over all
// opponents. When no candidate touches an opponent run it moves randomly.
func Defensive(g *connect.Game, player connect.PlayerID) (connect.Coord, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return connect.Coord{}, false
	}

	opponents := g.Opponents(player)
	best := moves[0]
	bestRun := 0
	for _, mv := range moves {
		for _, opp := range opponents {
			if n := longestAdjacentRun(g, opp.Index, mv); n > bestRun {
				bestRun = n
				best = mv
			}
		}
	}
	if bestRun == 0 {
		return moves[rand.Intn(len(moves))], true
	}
	return best, true
}
