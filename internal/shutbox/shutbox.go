// Package shutbox is the engine behind the shut-the-box page. Tiles 1-9
// start open; each roll must be played by shutting open tiles that sum to
// it, and the round ends when no combination can.
package shutbox

import "math/rand"

const TileCount = 9

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrRoundOver   Error = "round is over"
	ErrRollPending Error = "pending roll must be played first"
	ErrNoRoll      Error = "roll the dice first"
	ErrBadTiles    Error = "tiles must be distinct open tiles summing to the roll"
)

type Game struct {
	open [TileCount + 1]bool // 1-indexed
	dice []int
	roll int // pending total, 0 once played
	over bool
}

func New() *Game {
	g := &Game{}
	for tile := 1; tile <= TileCount; tile++ {
		g.open[tile] = true
	}
	return g
}

// oneDie reports whether the single-die rule applies: every open tile can
// be shut by one die.
func (g *Game) oneDie() bool {
	for tile := 7; tile <= TileCount; tile++ {
		if g.open[tile] {
			return false
		}
	}
	return true
}

// Roll throws the dice and fixes the total to be played. When no open
// tiles can match it the round ends immediately.
func (g *Game) Roll() (int, error) {
	if g.over {
		return 0, ErrRoundOver
	}
	if g.roll != 0 {
		return 0, ErrRollPending
	}

	g.dice = []int{1 + rand.Intn(6)}
	if !g.oneDie() {
		g.dice = append(g.dice, 1+rand.Intn(6))
	}
	total := 0
	for _, d := range g.dice {
		total += d
	}
	g.roll = total

	if len(g.Combos()) == 0 {
		g.over = true
	}
	return total, nil
}

// Shut closes a set of distinct open tiles summing to the pending roll.
// Shutting the last tile ends the round with the perfect score.
func (g *Game) Shut(tiles []int) error {
	if g.over {
		return ErrRoundOver
	}
	if g.roll == 0 {
		return ErrNoRoll
	}

	sum := 0
	seen := map[int]bool{}
	for _, tile := range tiles {
		if tile < 1 || tile > TileCount || !g.open[tile] || seen[tile] {
			return ErrBadTiles
		}
		seen[tile] = true
		sum += tile
	}
	if sum != g.roll {
		return ErrBadTiles
	}

	for _, tile := range tiles {
		g.open[tile] = false
	}
	g.roll = 0
	g.dice = nil

	if g.Score() == 0 {
		g.over = true
	}
	return nil
}

// Combos enumerates the open-tile subsets that match the pending roll.
func (g *Game) Combos() [][]int {
	if g.roll == 0 {
		return nil
	}
	open := g.OpenTiles()
	var combos [][]int
	for mask := 1; mask < 1<<len(open); mask++ {
		sum := 0
		var tiles []int
		for i, tile := range open {
			if mask&(1<<i) != 0 {
				sum += tile
				tiles = append(tiles, tile)
			}
		}
		if sum == g.roll {
			combos = append(combos, tiles)
		}
	}
	return combos
}

func (g *Game) OpenTiles() []int {
	tiles := []int{}
	for tile := 1; tile <= TileCount; tile++ {
		if g.open[tile] {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// Score is the sum of the open tiles: the provisional score while the
// round runs, the final one once it is over. Zero means the box is shut.
func (g *Game) Score() int {
	sum := 0
	for tile := 1; tile <= TileCount; tile++ {
		if g.open[tile] {
			sum += tile
		}
	}
	return sum
}

func (g *Game) Over() bool {
	return g.over
}

// Reset reopens every tile for a fresh round.
func (g *Game) Reset() {
	for tile := 1; tile <= TileCount; tile++ {
		g.open[tile] = true
	}
	g.dice = nil
	g.roll = 0
	g.over = false
}

// Snapshot is a read-only view for rendering.
type Snapshot struct {
	Open   []int   `json:"open"`
	Dice   []int   `json:"dice,omitempty"`
	Roll   int     `json:"roll"`
	Combos [][]int `json:"combos,omitempty"`
	Over   bool    `json:"over"`
	Score  int     `json:"score"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Open:   g.OpenTiles(),
		Dice:   append([]int{}, g.dice...),
		Roll:   g.roll,
		Combos: g.Combos(),
		Over:   g.over,
		Score:  g.Score(),
	}
}
