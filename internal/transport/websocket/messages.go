package websocket

import (
	"errors"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
)

// message types sent by the page
const (
	TypeDropPiece = "drop_piece"
	TypeSync      = "sync"
	TypeRematch   = "rematch"
)

// message types sent to the page
const (
	TypeGameState    = "game_state"
	TypePieceDropped = "piece_dropped"
	TypeGameOver     = "game_over"
	TypeRematchReady = "rematch"
	TypeGameClosed   = "game_closed"
	TypeError        = "error"
)

type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type      string          `json:"type"`
	GameID    string          `json:"gameId,omitempty"`
	Message   string          `json:"message,omitempty"`
	Code      string          `json:"code,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Move      *domain.Move    `json:"move,omitempty"`
	State     *game.GameState `json:"state,omitempty"`
	NewGameID string          `json:"newGameId,omitempty"`
	Token     string          `json:"token,omitempty"`
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: TypeError, Code: errorCode(err), Message: err.Error()}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return "invalid_column"
	case errors.Is(err, domain.ErrColumnFull):
		return "column_full"
	case errors.Is(err, domain.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrGameNotFound):
		return "game_not_found"
	case errors.Is(err, game.ErrGameInProgress):
		return "game_in_progress"
	default:
		return "bad_request"
	}
}
