package connect

import "math/rand"

// Config describes a new game. Width and Height size the board, Rotation
// is optional, and Players seats at least two humans or AIs.
type Config struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	WinLength int            `json:"winLength"`
	Gravity   bool           `json:"gravity"`
	Rotation  *Rotation      `json:"rotation,omitempty"`
	TeamPlay  bool           `json:"teamPlay"`
	Players   []PlayerConfig `json:"players"`
}

// Game owns the board, the turn order, and the gravity schedule. All
// mutation goes through MakeMove and Reset.
type Game struct {
	board     *Board
	players   []Player
	winLength int
	gravity   bool
	rotation  *Rotation
	teamPlay  bool

	current   PlayerID
	direction Direction
	status    GameStatus
	winner    *WinResult
	turnCount int
}

func New(cfg Config) (*Game, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, ErrBadDimensions
	}
	if cfg.WinLength < 2 {
		return nil, ErrBadWinLength
	}
	if cfg.Rotation != nil && cfg.Rotation.Mode != RotateNone && cfg.Rotation.Turns < 1 {
		return nil, ErrBadRotation
	}

	players, err := buildRoster(cfg.Players)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:     NewBoard(cfg.Height, cfg.Width),
		players:   players,
		winLength: cfg.WinLength,
		gravity:   cfg.Gravity,
		rotation:  cfg.Rotation,
		teamPlay:  cfg.TeamPlay,
		current:   0,
		direction: Down,
		status:    StatusActive,
	}, nil
}

// MakeMove places the current player's piece at (row, col). The move is
// rejected without side effects when the game is over, the cell is out of
// bounds or occupied, or gravity would not rest a piece there.
func (g *Game) MakeMove(row, col int) error {
	if g.status != StatusActive {
		return ErrGameOver
	}
	if !g.board.InBounds(row, col) {
		return ErrOutOfBounds
	}
	if g.board.cells[row][col] != EmptyCell {
		return ErrCellOccupied
	}
	if g.gravity && !g.board.IsSettled(row, col, g.direction) {
		return ErrNotSettled
	}

	g.board.set(row, col, g.current)
	g.turnCount++

	if win := FindWin(g.board, g.players, g.teamPlay, g.winLength); win != nil {
		g.status = StatusWon
		g.winner = win
		return nil
	}
	if g.board.IsFull() {
		g.status = StatusDraw
		return nil
	}

	g.current = (g.current + 1) % PlayerID(len(g.players))
	if g.gravity && g.rotationDue() {
		g.rotate()
	}

	// a board with empty cells but no resting target is a stalemate draw
	if len(g.LegalMoves()) == 0 {
		g.status = StatusDraw
	}
	return nil
}

func (g *Game) rotationDue() bool {
	return g.rotation != nil && g.rotation.Mode != RotateNone && g.turnCount%g.rotation.Turns == 0
}

// rotate advances the active direction per the configured mode and
// resettles every piece under the new pull.
func (g *Game) rotate() {
	switch g.rotation.Mode {
	case RotateClockwise:
		g.direction = rotationOrder[(rotationIndex(g.direction)+1)%4]
	case RotateCounterclockwise:
		g.direction = rotationOrder[(rotationIndex(g.direction)+3)%4]
	case RotateRandom:
		g.direction = rotationOrder[rand.Intn(len(rotationOrder))]
	default:
		return
	}
	g.board.ApplyGravity(g.direction)
}

func rotationIndex(d Direction) int {
	for i, dir := range rotationOrder {
		if dir == d {
			return i
		}
	}
	return 0
}

// IsLegalMove reports whether (row, col) accepts a piece right now.
func (g *Game) IsLegalMove(row, col int) bool {
	if !g.board.InBounds(row, col) || g.board.cells[row][col] != EmptyCell {
		return false
	}
	if !g.gravity {
		return true
	}
	return g.board.IsSettled(row, col, g.direction)
}

// LegalMoves enumerates placement targets row-major.
func (g *Game) LegalMoves() []Coord {
	moves := []Coord{}
	for r := 0; r < g.board.rows; r++ {
		for c := 0; c < g.board.cols; c++ {
			if g.IsLegalMove(r, c) {
				moves = append(moves, Coord{Row: r, Col: c})
			}
		}
	}
	return moves
}

// GravityTarget resolves where a piece entering at (row, col) would rest
// under the active direction. Without gravity the cell itself is returned.
func (g *Game) GravityTarget(row, col int) (int, int) {
	if !g.gravity {
		return row, col
	}
	return g.board.GravityTarget(row, col, g.direction)
}

// WouldWin reports whether placing player's piece at (row, col) completes
// a run. The placement is reverted before returning; this is the only
// sanctioned mutate-then-undo probe.
func (g *Game) WouldWin(row, col int, player PlayerID) bool {
	if !g.board.InBounds(row, col) || g.board.cells[row][col] != EmptyCell {
		return false
	}
	g.board.set(row, col, player)
	win := FindWin(g.board, g.players, g.teamPlay, g.winLength)
	g.board.set(row, col, EmptyCell)
	return win != nil
}

// SameSide reports whether the piece at (row, col) counts toward runs
// owned by player: the player's own piece or, under team play, a
// teammate's.
func (g *Game) SameSide(player PlayerID, row, col int) bool {
	p := g.board.At(row, col)
	if p == EmptyCell {
		return false
	}
	if p == player {
		return true
	}
	return g.teamPlay && Teammates(g.players[p], g.players[player])
}

// Opponents returns the players who can win against player.
func (g *Game) Opponents(player PlayerID) []Player {
	me := g.players[player]
	opps := []Player{}
	for _, p := range g.players {
		if isOpponent(me, p) {
			opps = append(opps, p)
		}
	}
	return opps
}

// Reset clears the board and restarts the turn order, preserving the
// player and rule configuration.
func (g *Game) Reset() {
	g.board.clear()
	g.current = 0
	g.direction = Down
	g.status = StatusActive
	g.winner = nil
	g.turnCount = 0
}

func (g *Game) Board() *Board { return g.board }

// Players returns the roster. It is immutable after creation.
func (g *Game) Players() []Player { return g.players }

func (g *Game) CurrentPlayer() Player { return g.players[g.current] }

func (g *Game) CurrentIndex() PlayerID { return g.current }

func (g *Game) Status() GameStatus { return g.status }

func (g *Game) GameOver() bool { return g.status != StatusActive }

// Winner returns the winning run, or nil while the game is live or drawn.
func (g *Game) Winner() *WinResult { return g.winner }

func (g *Game) TurnCount() int { return g.turnCount }

func (g *Game) Direction() Direction { return g.direction }

func (g *Game) WinLength() int { return g.winLength }

func (g *Game) TeamPlay() bool { return g.teamPlay }

func (g *Game) GravityEnabled() bool { return g.gravity }

// State is a read-only snapshot for rendering.
type State struct {
	Board         [][]PlayerID `json:"board"`
	Players       []Player     `json:"players"`
	CurrentPlayer PlayerID     `json:"currentPlayer"`
	Direction     Direction    `json:"direction"`
	Gravity       bool         `json:"gravity"`
	TeamPlay      bool         `json:"teamPlay"`
	WinLength     int          `json:"winLength"`
	Status        GameStatus   `json:"status"`
	GameOver      bool         `json:"gameOver"`
	Winner        string       `json:"winner,omitempty"`
	WinningCells  []Coord      `json:"winningCells,omitempty"`
	TurnCount     int          `json:"turnCount"`
}

func (g *Game) State() State {
	st := State{
		Board:         g.board.Cells(),
		Players:       g.players,
		CurrentPlayer: g.current,
		Direction:     g.direction,
		Gravity:       g.gravity,
		TeamPlay:      g.teamPlay,
		WinLength:     g.winLength,
		Status:        g.status,
		GameOver:      g.status != StatusActive,
		TurnCount:     g.turnCount,
	}
	if g.winner != nil {
		st.Winner = g.winner.Label
		st.WinningCells = g.winner.Cells
	}
	return st
}
