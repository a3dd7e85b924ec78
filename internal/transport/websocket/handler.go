package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	"github.com/iamasit07/connect4-hotseat/pkg/auth"
	"github.com/iamasit07/connect4-hotseat/pkg/httputil"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Tokens         *auth.TokenManager
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, tokens *auth.TokenManager, allowedOrigins []string) *Handler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}

	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Tokens:         tokens,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := origins[origin]; ok {
					return true
				}
				return httputil.IsSameOrigin(r, origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket checks the game and its token, then upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	gameID := c.Query("gameId")

	tokenString, err := httputil.GetTokenFromRequest(c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if _, err := h.Tokens.ValidateForGame(tokenString, gameID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	session, err := h.SessionManager.GetSession(gameID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(newClient(gameID, conn), session)
}

// handleConnection manages the lifecycle of a single page connection
func (h *Handler) handleConnection(client *Client, session *game.GameSession) {
	conn := client.conn
	h.ConnManager.AddClient(client)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go client.writePump()

	unsubscribe := session.Subscribe(h.listener(client))

	defer func() {
		unsubscribe()
		h.ConnManager.RemoveClient(client)
		log.Printf("[WS] Connection closed for game %s", client.GameID)
	}()

	state := session.State()
	if err := client.Send(ServerMessage{Type: TypeGameState, GameID: client.GameID, State: &state}); err != nil {
		log.Printf("[WS] Failed to send initial state for game %s: %v", client.GameID, err)
		return
	}

	log.Printf("[WS] Connection opened for game %s", client.GameID)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Page for game %s disconnected unexpectedly: %v", client.GameID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			client.Send(ServerMessage{Type: TypeError, Code: "bad_request", Message: "invalid message format"})
			continue
		}

		h.processMessage(client, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(client *Client, msg ClientMessage) {
	switch msg.Type {
	case TypeDropPiece:
		if msg.Column == nil {
			client.Send(ServerMessage{Type: TypeError, Code: "bad_request", Message: "column is required"})
			return
		}
		// on success the session listener broadcasts the move to every page, this one included
		if _, _, err := h.SessionManager.DropPiece(client.GameID, *msg.Column); err != nil {
			client.Send(errorMessage(err))
		}

	case TypeSync:
		session, err := h.SessionManager.GetSession(client.GameID)
		if err != nil {
			client.Send(errorMessage(err))
			return
		}
		state := session.State()
		client.Send(ServerMessage{Type: TypeGameState, GameID: client.GameID, State: &state})

	case TypeRematch:
		if _, err := h.SessionManager.Rematch(client.GameID); err != nil {
			client.Send(errorMessage(err))
		}

	default:
		client.Send(ServerMessage{Type: TypeError, Code: "bad_request", Message: "unknown message type: " + msg.Type})
	}
}

// listener turns session events into messages for one client. It runs with the
// session lock held, so it only queues them.
func (h *Handler) listener(client *Client) game.Listener {
	return func(e game.Event) {
		state := e.State
		switch e.Type {
		case game.EventPieceDropped:
			client.Send(ServerMessage{Type: TypePieceDropped, GameID: e.GameID, Move: e.Move, State: &state})

		case game.EventGameOver:
			client.Send(ServerMessage{Type: TypeGameOver, GameID: e.GameID, Move: e.Move, State: &state, Reason: e.Reason})

		case game.EventRematch:
			token, err := h.Tokens.GenerateGameToken(e.NewGameID)
			if err != nil {
				log.Printf("[WS] Failed to sign rematch token for game %s: %v", e.NewGameID, err)
				client.Send(ServerMessage{Type: TypeError, Code: "internal", Message: "failed to start rematch"})
				return
			}
			client.Send(ServerMessage{Type: TypeRematchReady, GameID: e.GameID, NewGameID: e.NewGameID, Token: token})

		case game.EventGameClosed:
			client.Send(ServerMessage{Type: TypeGameClosed, GameID: e.GameID, Reason: e.Reason})
			client.Close(e.Reason)
		}
	}
}
