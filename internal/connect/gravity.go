package connect

// GravityTarget returns the furthest empty cell reachable from (row, col)
// along dir without passing an occupied cell or leaving the grid. Callers
// query empty cells or the pre-move position of a settling piece.
func (b *Board) GravityTarget(row, col int, dir Direction) (int, int) {
	dr, dc := dir.Delta()
	r, c := row, col
	for b.InBounds(r+dr, c+dc) && b.cells[r+dr][c+dc] == EmptyCell {
		r += dr
		c += dc
	}
	return r, c
}

// IsSettled reports whether an empty (row, col) is a legal placement
// target under dir: it rests on the boundary edge or on another piece.
func (b *Board) IsSettled(row, col int, dir Direction) bool {
	if !b.InBounds(row, col) || b.cells[row][col] != EmptyCell {
		return false
	}
	r, c := b.GravityTarget(row, col, dir)
	return r == row && c == col
}

// ApplyGravity resettles every piece to its gravity target. A single pass
// suffices when cells are processed furthest along the direction first,
// so a piece never lands on a cell a later piece vacates. Idempotent.
func (b *Board) ApplyGravity(dir Direction) {
	switch dir {
	case Down:
		for r := b.rows - 1; r >= 0; r-- {
			for c := 0; c < b.cols; c++ {
				b.settle(r, c, dir)
			}
		}
	case Up:
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				b.settle(r, c, dir)
			}
		}
	case Right:
		for c := b.cols - 1; c >= 0; c-- {
			for r := 0; r < b.rows; r++ {
				b.settle(r, c, dir)
			}
		}
	case Left:
		for c := 0; c < b.cols; c++ {
			for r := 0; r < b.rows; r++ {
				b.settle(r, c, dir)
			}
		}
	}
}

func (b *Board) settle(row, col int, dir Direction) {
	p := b.cells[row][col]
	if p == EmptyCell {
		return
	}
	r, c := b.GravityTarget(row, col, dir)
	if r != row || c != col {
		b.cells[r][c] = p
		b.cells[row][col] = EmptyCell
	}
}
