package domain

// PlayerID identifies one of the two competitors in a game. The engine treats it as an
// opaque token; display attributes such as name and color live with the caller.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4

	// boards smaller than ToWin in either direction can never be won
	MinDimension = ToWin
	MaxDimension = 32
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic errors that can occur, none of them change the game state
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn     Error = "invalid column"
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game is over"
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrInvalidPlayers    Error = "invalid players"
)

// Position is a single cell on the board, row 0 being the top row.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}
