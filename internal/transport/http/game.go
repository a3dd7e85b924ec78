package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	"github.com/iamasit07/connect4-hotseat/pkg/auth"
	"github.com/iamasit07/connect4-hotseat/pkg/httputil"
	"github.com/iamasit07/connect4-hotseat/pkg/useragent"
)

type GameHandler struct {
	SessionManager *game.SessionManager
	Tokens         *auth.TokenManager
	TokenTTL       time.Duration
	Production     bool
}

func NewGameHandler(sm *game.SessionManager, tokens *auth.TokenManager, tokenTTL time.Duration, production bool) *GameHandler {
	return &GameHandler{
		SessionManager: sm,
		Tokens:         tokens,
		TokenTTL:       tokenTTL,
		Production:     production,
	}
}

type createGameRequest struct {
	Player1 game.PlayerProfile `json:"player1"`
	Player2 game.PlayerProfile `json:"player2"`
	Rows    int                `json:"rows"`
	Columns int                `json:"columns"`
}

type gameCreatedResponse struct {
	GameID string         `json:"gameId"`
	Token  string         `json:"token"`
	State  game.GameState `json:"state"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type moveResponse struct {
	Move  domain.Move    `json:"move"`
	State game.GameState `json:"state"`
}

// CreateGame starts a new hot-seat game and hands back its token
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	// an empty body is fine, every field has a default
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	session, err := h.SessionManager.CreateSession(game.CreateRequest{
		Player1: req.Player1,
		Player2: req.Player2,
		Rows:    req.Rows,
		Columns: req.Columns,
		Device:  useragent.Describe(c.Request.UserAgent()),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.issueToken(c, http.StatusCreated, session)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, err := h.SessionManager.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// DropPiece plays one move for whoever's turn it is
func (h *GameHandler) DropPiece(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	move, state, err := h.SessionManager.DropPiece(c.Param("id"), *req.Column)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, moveResponse{Move: move, State: state})
}

func (h *GameHandler) Rematch(c *gin.Context) {
	session, err := h.SessionManager.Rematch(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	h.issueToken(c, http.StatusCreated, session)
}

func (h *GameHandler) AbandonGame(c *gin.Context) {
	if err := h.SessionManager.RemoveSession(c.Param("id"), "abandoned"); err != nil {
		writeError(c, err)
		return
	}

	httputil.ClearGameCookie(c.Writer)
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) issueToken(c *gin.Context, status int, session *game.GameSession) {
	token, err := h.Tokens.GenerateGameToken(session.GameID)
	if err != nil {
		log.Printf("[HTTP] Failed to sign token for game %s: %v", session.GameID, err)
		h.SessionManager.RemoveSession(session.GameID, "token_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	httputil.SetGameCookie(c.Writer, token, h.TokenTTL, h.Production)
	c.JSON(status, gameCreatedResponse{
		GameID: session.GameID,
		Token:  token,
		State:  session.State(),
	})
}

// writeError maps engine and session errors to status codes
func writeError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn),
		errors.Is(err, domain.ErrInvalidDimensions),
		errors.Is(err, domain.ErrInvalidPlayers):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnFull),
		errors.Is(err, domain.ErrGameOver),
		errors.Is(err, game.ErrGameInProgress):
		return http.StatusConflict
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
