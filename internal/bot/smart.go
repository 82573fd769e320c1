package bot

import (
	"math"

	"gamebox/internal/connect"
)

// Smart wins when it can, blocks an opponent about to win, and otherwise
// plays toward the center, rewarding cells that touch its own pieces.
func Smart(g *connect.Game, player connect.PlayerID) (connect.Coord, bool) {
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

	best := moves[0]
	bestScore := math.MinInt
	for _, mv := range moves {
		if s := smartScore(g, player, mv); s > bestScore {
			bestScore = s
			best = mv
		}
	}
	return best, true
}

// smartScore is the centrality of the cell plus five per surrounding cell
// already holding the mover's own piece.
func smartScore(g *connect.Game, player connect.PlayerID, mv connect.Coord) int {
	b := g.Board()
	score := 10 - abs(mv.Col-b.Cols()/2) - abs(mv.Row-b.Rows()/2)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.At(mv.Row+dr, mv.Col+dc) == player {
				score += 5
			}
		}
	}
	return score
}
