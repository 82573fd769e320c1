package connect

// Board is a rows x cols grid of player pieces. It is mutated only by the
// game's move application and by gravity resettlement.
type Board struct {
	rows  int
	cols  int
	cells [][]PlayerID
}

func NewBoard(rows, cols int) *Board {
	cells := make([][]PlayerID, rows)
	for r := range cells {
		cells[r] = make([]PlayerID, cols)
		for c := range cells[r] {
			cells[r][c] = EmptyCell
		}
	}
	return &Board{rows: rows, cols: cols, cells: cells}
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the piece at (row, col), or EmptyCell when the coordinates
// lie outside the grid. Scanning code can probe neighbors without its own
// bounds checks.
func (b *Board) At(row, col int) PlayerID {
	if !b.InBounds(row, col) {
		return EmptyCell
	}
	return b.cells[row][col]
}

func (b *Board) set(row, col int, p PlayerID) {
	b.cells[row][col] = p
}

func (b *Board) IsFull() bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] == EmptyCell {
				return false
			}
		}
	}
	return true
}

func (b *Board) clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = EmptyCell
		}
	}
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]PlayerID, b.rows)
	for r := range b.cells {
		cells[r] = make([]PlayerID, b.cols)
		copy(cells[r], b.cells[r])
	}
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Cells returns a deep copy of the grid for snapshots.
func (b *Board) Cells() [][]PlayerID {
	return b.Clone().cells
}
