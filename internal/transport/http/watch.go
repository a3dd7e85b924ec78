package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type liveGameResponse struct {
	GameID    string `json:"gameId"`
	Player1   string `json:"player1"`
	Player2   string `json:"player2"`
	Viewers   int    `json:"viewers"`
	MoveCount int    `json:"moveCount"`
	StartedAt string `json:"startedAt"`
}

// ListGames returns every game still in progress, oldest first
func (h *GameHandler) ListGames(c *gin.Context) {
	activeGames := h.SessionManager.GetActiveGames()

	response := make([]liveGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		response = append(response, liveGameResponse{
			GameID:    g.GameID,
			Player1:   g.Player1,
			Player2:   g.Player2,
			Viewers:   g.Viewers,
			MoveCount: g.MoveCount,
			StartedAt: g.StartedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}
