package domain

// Game is a single Connect Four match between two players. It is not safe for
// concurrent use; callers sharing a Game must serialize every call around one lock.
type Game struct {
	board         *Board
	players       [2]PlayerID
	currentPlayer PlayerID
	status        GameStatus
	winner        PlayerID
	winningLine   []Position
	moveCount     int
}

// Move describes an accepted drop and the state it left the game in.
type Move struct {
	Row         int        `json:"row"`
	Column      int        `json:"column"`
	Player      PlayerID   `json:"player"`
	Status      GameStatus `json:"status"`
	Winner      PlayerID   `json:"winner,omitempty"`
	NextPlayer  PlayerID   `json:"nextPlayer"`
	WinningLine []Position `json:"winningLine,omitempty"`
}

func NewGame(p1, p2 PlayerID, height, width int) (*Game, error) {
	if p1 == Empty || p2 == Empty || p1 == p2 {
		return nil, ErrInvalidPlayers
	}

	board, err := NewBoard(height, width)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:         board,
		players:       [2]PlayerID{p1, p2},
		currentPlayer: p1,
		status:        StatusActive,
		winner:        Empty,
	}, nil
}

// NewDefaultGame starts a 6x7 game between Player1 and Player2.
func NewDefaultGame() *Game {
	g, _ := NewGame(Player1, Player2, DefaultRows, DefaultColumns)
	return g
}

// DropPiece drops the current player's piece into column. Rejected moves return
// ErrGameOver, ErrInvalidColumn or ErrColumnFull and leave the game untouched.
func (g *Game) DropPiece(column int) (Move, error) {
	if g.status != StatusActive {
		return Move{}, ErrGameOver
	}

	player := g.currentPlayer
	row, err := g.board.DropDisk(column, player)
	if err != nil {
		return Move{}, err
	}

	g.moveCount++

	move := Move{Row: row, Column: column, Player: player}

	if line := WinningLine(g.board, row, column, player); line != nil {
		g.status = StatusWon
		g.winner = player
		g.winningLine = line
	} else if g.board.IsFull() {
		g.status = StatusDraw
	} else {
		g.currentPlayer = g.Opponent(player)
	}

	move.Status = g.status
	move.Winner = g.winner
	move.NextPlayer = g.currentPlayer
	move.WinningLine = g.WinningLine()
	return move, nil
}

// Opponent returns the other registered player.
func (g *Game) Opponent(player PlayerID) PlayerID {
	if player == g.players[0] {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) IsFinished() bool {
	return g.status == StatusWon || g.status == StatusDraw
}

// Board returns a copy, mutating it has no effect on the game.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

func (g *Game) CurrentPlayer() PlayerID { return g.currentPlayer }
func (g *Game) Status() GameStatus      { return g.status }
func (g *Game) Winner() PlayerID        { return g.winner }
func (g *Game) MoveCount() int          { return g.moveCount }
func (g *Game) Players() [2]PlayerID    { return g.players }
func (g *Game) Height() int             { return g.board.Height }
func (g *Game) Width() int              { return g.board.Width }

func (g *Game) ValidColumns() []int {
	if g.IsFinished() {
		return []int{}
	}
	return g.board.ValidColumns()
}

func (g *Game) WinningLine() []Position {
	if g.winningLine == nil {
		return nil
	}
	line := make([]Position, len(g.winningLine))
	copy(line, g.winningLine)
	return line
}
