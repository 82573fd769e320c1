package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravityTargetFallsToBoundary(t *testing.T) {
	b := NewBoard(4, 3)

	tests := []struct {
		name string
		dir  Direction
		row  int
		col  int
		wantRow, wantCol int
	}{
		{"down to bottom row", Down, 0, 1, 3, 1},
		{"up to top row", Up, 3, 1, 0, 1},
		{"left to first column", Left, 2, 2, 2, 0},
		{"right to last column", Right, 2, 0, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := b.GravityTarget(tt.row, tt.col, tt.dir)
			assert.Equal(t, tt.wantRow, r)
			assert.Equal(t, tt.wantCol, c)
		})
	}
}

func TestGravityTargetStopsOnPiece(t *testing.T) {
	b := NewBoard(4, 3)
	b.set(3, 1, 0)

	r, c := b.GravityTarget(0, 1, Down)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)

	b.set(2, 1, 1)
	r, c = b.GravityTarget(0, 1, Down)
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
}

func TestIsSettled(t *testing.T) {
	b := NewBoard(3, 3)

	assert.True(t, b.IsSettled(2, 0, Down), "boundary cell rests on the edge")
	assert.False(t, b.IsSettled(1, 0, Down), "floating cell has no support")

	b.set(2, 0, 0)
	assert.True(t, b.IsSettled(1, 0, Down), "cell above a piece is supported")
	assert.False(t, b.IsSettled(2, 0, Down), "occupied cell is never a target")
}

func TestApplyGravityMovesPiecesToRest(t *testing.T) {
	b := NewBoard(3, 3)
	b.set(0, 0, 0)
	b.set(1, 2, 1)

	b.ApplyGravity(Down)

	assert.Equal(t, PlayerID(0), b.At(2, 0))
	assert.Equal(t, PlayerID(1), b.At(2, 2))
	assert.Equal(t, EmptyCell, b.At(0, 0))
	assert.Equal(t, EmptyCell, b.At(1, 2))
}

func TestApplyGravityKeepsStackOrder(t *testing.T) {
	b := NewBoard(4, 2)
	b.set(0, 1, 0)
	b.set(2, 1, 1)

	b.ApplyGravity(Down)

	assert.Equal(t, PlayerID(1), b.At(3, 1), "nearer piece lands first")
	assert.Equal(t, PlayerID(0), b.At(2, 1), "farther piece stacks on top")
}

func TestApplyGravitySidewaysAndUp(t *testing.T) {
	b := NewBoard(2, 4)
	b.set(0, 0, 0)
	b.set(0, 2, 1)

	b.ApplyGravity(Right)
	assert.Equal(t, PlayerID(1), b.At(0, 3))
	assert.Equal(t, PlayerID(0), b.At(0, 2))

	b.ApplyGravity(Left)
	assert.Equal(t, PlayerID(0), b.At(0, 0))
	assert.Equal(t, PlayerID(1), b.At(0, 1))

	b.set(1, 3, 2)
	b.ApplyGravity(Up)
	assert.Equal(t, PlayerID(2), b.At(0, 3))
}

func TestApplyGravityIdempotent(t *testing.T) {
	for _, dir := range []Direction{Down, Up, Left, Right} {
		t.Run(string(dir), func(t *testing.T) {
			b := NewBoard(4, 4)
			b.set(0, 0, 0)
			b.set(1, 1, 1)
			b.set(2, 1, 0)
			b.set(3, 3, 1)
			b.set(0, 2, 0)

			b.ApplyGravity(dir)
			once := b.Cells()
			b.ApplyGravity(dir)

			assert.Equal(t, once, b.Cells())
		})
	}
}
