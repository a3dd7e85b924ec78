package game

import (
	"time"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
)

const (
	ErrGameNotFound   domain.Error = "game not found"
	ErrGameInProgress domain.Error = "game is still in progress"
)

// PlayerProfile carries what the page shows for a player, the engine only sees the PlayerID.
type PlayerProfile struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type CreateRequest struct {
	Player1 PlayerProfile
	Player2 PlayerProfile
	Rows    int
	Columns int
	Device  string
}

// GameState is a point-in-time snapshot of a session, safe to hand to other goroutines.
type GameState struct {
	GameID        string            `json:"gameId"`
	Rows          int               `json:"rows"`
	Columns       int               `json:"columns"`
	Board         [][]int           `json:"board"`
	Players       []PlayerView      `json:"players"`
	CurrentPlayer domain.PlayerID   `json:"currentPlayer"`
	Status        domain.GameStatus `json:"status"`
	Winner        domain.PlayerID   `json:"winner,omitempty"`
	WinningLine   []domain.Position `json:"winningLine,omitempty"`
	MoveCount     int               `json:"moveCount"`
	ValidColumns  []int             `json:"validColumns"`
	CreatedAt     time.Time         `json:"createdAt"`
	FinishedAt    *time.Time        `json:"finishedAt,omitempty"`
}

type PlayerView struct {
	ID domain.PlayerID `json:"id"`
	PlayerProfile
}

// LiveGame is the summary used by the game listing.
type LiveGame struct {
	GameID    string    `json:"gameId"`
	Player1   string    `json:"player1"`
	Player2   string    `json:"player2"`
	MoveCount int       `json:"moveCount"`
	Viewers   int       `json:"viewers"`
	StartedAt time.Time `json:"startedAt"`
}

type EventType string

const (
	EventPieceDropped EventType = "piece_dropped"
	EventGameOver     EventType = "game_over"
	EventRematch      EventType = "rematch"
	EventGameClosed   EventType = "game_closed"
)

// Event is what listeners get notified with after a session changes.
type Event struct {
	Type      EventType
	GameID    string
	Move      *domain.Move
	State     GameState
	NewGameID string
	Reason    string
}

// Listener is called with the session lock held, it must not call back into the session.
type Listener func(Event)
