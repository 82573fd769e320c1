package connect

// winDirections in scan order: horizontal, vertical, diagonal down-right,
// diagonal down-left.
var winDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// WinResult describes the first qualifying run found on the board.
type WinResult struct {
	Player PlayerID `json:"player"`
	Label  string   `json:"label"`
	Cells  []Coord  `json:"cells"`
}

// FindWin scans row-major over occupied cells and extends a run from each
// in the four axis directions. A neighboring cell continues the run if it
// holds the same player or, when team play is on, a teammate. The first
// run of length >= winLength wins; scan order resolves ties. The winner
// is reported under the origin player's label.
func FindWin(b *Board, players []Player, teamPlay bool, winLength int) *WinResult {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			origin := b.cells[r][c]
			if origin == EmptyCell {
				continue
			}
			for _, d := range winDirections {
				run := runCells(b, players, teamPlay, r, c, d[0], d[1])
				if len(run) >= winLength {
					return &WinResult{
						Player: origin,
						Label:  players[origin].Label(),
						Cells:  run,
					}
				}
			}
		}
	}
	return nil
}

// runCells collects the contiguous run owned by the piece at (row, col)
// stepping by (dr, dc), origin included. It stops at the first empty,
// out-of-bounds, or non-matching cell.
func runCells(b *Board, players []Player, teamPlay bool, row, col, dr, dc int) []Coord {
	origin := players[b.cells[row][col]]
	cells := []Coord{{Row: row, Col: col}}
	r, c := row+dr, col+dc
	for b.InBounds(r, c) {
		p := b.cells[r][c]
		if p == EmptyCell {
			break
		}
		if p != origin.Index && !(teamPlay && Teammates(origin, players[p])) {
			break
		}
		cells = append(cells, Coord{Row: r, Col: c})
		r += dr
		c += dc
	}
	return cells
}
