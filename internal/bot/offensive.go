package bot

import (
	"gamebox/internal/connect"
)

// scoreWin is the outright score for a placement that completes a run.
const scoreWin = 1000

// Offensive extends its own strongest line. Each candidate is rated by
// its best axis and the highest-rated candidate is taken, first found on
// ties.
func Offensive(g *connect.Game, player connect.PlayerID) (connect.Coord, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return connect.Coord{}, false
	}

	best := moves[0]
	bestScore := 0
	for _, mv := range moves {
		if s := offensiveScore(g, player, mv); s > bestScore {
			bestScore = s
			best = mv
		}
	}
	return best, true
}

// offensiveScore rates a placement by its best axis: completing a run
// scores 1000 outright; an axis whose reachable span can still fit a full
// run scores the run it would make times ten plus the spaces left in the
// span; a placement with no viable axis scores 1.
func offensiveScore(g *connect.Game, player connect.PlayerID, mv connect.Coord) int {
	winLen := g.WinLength()
	score := 1
	for _, d := range axes {
		run := 1 +
			runFrom(g, player, mv.Row+d[0], mv.Col+d[1], d[0], d[1]) +
			runFrom(g, player, mv.Row-d[0], mv.Col-d[1], -d[0], -d[1])
		if run >= winLen {
			return scoreWin
		}
		span := reachableSpan(g, player, mv, d)
		if span < winLen {
			continue
		}
		if s := run*10 + (span - run); s > score {
			score = s
		}
	}
	return score
}
