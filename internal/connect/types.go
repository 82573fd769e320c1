package connect

// PlayerID indexes into a game's player roster.
type PlayerID int

// EmptyCell marks an unoccupied board cell.
const EmptyCell PlayerID = -1

// Coord addresses a board cell. Row 0 is the top row.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is the side of the board pieces fall toward.
type Direction string

const (
	Down  Direction = "down"
	Up    Direction = "up"
	Left  Direction = "left"
	Right Direction = "right"
)

// Delta returns the row/col step a falling piece takes.
func (d Direction) Delta() (int, int) {
	switch d {
	case Down:
		return 1, 0
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// RotationMode describes how the gravity direction changes over time.
type RotationMode string

const (
	RotateNone             RotationMode = "none"
	RotateClockwise        RotationMode = "clockwise"
	RotateCounterclockwise RotationMode = "counterclockwise"
	RotateRandom           RotationMode = "random"
)

// Rotation schedules a gravity direction change every Turns completed moves.
type Rotation struct {
	Mode  RotationMode `json:"mode"`
	Turns int          `json:"turns"`
}

// rotationOrder is the clockwise cycle; counterclockwise walks it backward.
var rotationOrder = [4]Direction{Down, Right, Up, Left}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrGameOver      Error = "game is over"
	ErrOutOfBounds   Error = "cell is out of bounds"
	ErrCellOccupied  Error = "cell is occupied"
	ErrNotSettled    Error = "cell is not the gravity target"
	ErrTooFewPlayers Error = "at least two players required"
	ErrBadDimensions Error = "board dimensions must be positive"
	ErrBadWinLength  Error = "win length must be at least two"
	ErrBadRotation   Error = "rotation turns must be positive"
	ErrBadTeam       Error = "team numbers must not be negative"
	ErrNotAITurn     Error = "current player is not an AI"
	ErrNoLegalMove   Error = "no legal move available"
)
