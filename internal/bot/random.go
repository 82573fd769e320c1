package bot

import (
	"math/rand"

	"gamebox/internal/connect"
)

// Random picks uniformly among the legal moves.
func Random(g *connect.Game, player connect.PlayerID) (connect.Coord, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return connect.Coord{}, false
	}
	return moves[rand.Intn(len(moves))], true
}
