package bot

import (
	"gamebox/internal/connect"
)

// axes match the win detector's four scan directions.
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// runFrom counts contiguous pieces on side's side starting at (row, col)
// and stepping by (dr, dc).
func runFrom(g *connect.Game, side connect.PlayerID, row, col, dr, dc int) int {
	b := g.Board()
	n := 0
	for b.InBounds(row, col) && g.SameSide(side, row, col) {
		n++
		row += dr
		col += dc
	}
	return n
}

// longestAdjacentRun is the longest run of side's pieces starting next to
// cell and pointing away from it, over all eight directed neighbors.
func longestAdjacentRun(g *connect.Game, side connect.PlayerID, cell connect.Coord) int {
	longest := 0
	for _, d := range axes {
		for _, sign := range [2]int{1, -1} {
			dr, dc := sign*d[0], sign*d[1]
			if n := runFrom(g, side, cell.Row+dr, cell.Col+dc, dr, dc); n > longest {
				longest = n
			}
		}
	}
	return longest
}

// reachableSpan is the length of the contiguous stretch through cell
// along axis d whose cells are empty or already on side's side, both
// signed directions included.
func reachableSpan(g *connect.Game, side connect.PlayerID, cell connect.Coord, d [2]int) int {
	b := g.Board()
	span := 1
	for _, sign := range [2]int{1, -1} {
		r, c := cell.Row+sign*d[0], cell.Col+sign*d[1]
		for b.InBounds(r, c) && (b.At(r, c) == connect.EmptyCell || g.SameSide(side, r, c)) {
			span++
			r += sign * d[0]
			c += sign * d[1]
		}
	}
	return span
}

// winningMove returns the first move that completes a run for side.
func winningMove(g *connect.Game, side connect.PlayerID, moves []connect.Coord) (connect.Coord, bool) {
	for _, mv := range moves {
		if g.WouldWin(mv.Row, mv.Col, side) {
			return mv, true
		}
	}
	return connect.Coord{}, false
}

// blockingMove returns the first move some opponent could win with on
// their next turn.
func blockingMove(g *connect.Game, player connect.PlayerID, moves []connect.Coord) (connect.Coord, bool) {
	for _, opp := range g.Opponents(player) {
		if mv, ok := winningMove(g, opp.Index, moves); ok {
			return mv, true
		}
	}
	return connect.Coord{}, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
