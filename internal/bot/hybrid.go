package bot

import (
	"gamebox/internal/connect"
)

// OffensiveSmart wins or blocks first, then falls back to Offensive's
// line-building evaluation.
func OffensiveSmart(g *connect.Game, player connect.PlayerID) (connect.Coord, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return connect.Coord{}, false
	}

	if mv, ok := winningMove(g, player, moves); ok {
		return mv, true
	}
	if mv, ok := blockingMove(g, player, moves); ok {
		return mv, true
	}
	return Offensive(g, player)
}

// DefensiveSmart wins when it can, then falls back to Defensive's
// crowding evaluation without a separate block pre-check.
func DefensiveSmart(g *connect.Game, player connect.PlayerID) (connect.Coord, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return connect.Coord{}, false
	}

	if mv, ok := winningMove(g, player, moves); ok {
		return mv, true
	}
	return Defensive(g, player)
}
