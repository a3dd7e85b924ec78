package websocket

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 32
)

// ErrSlowClient is returned when a page stops reading and its queue fills up
var ErrSlowClient = errors.New("client send queue is full")

// Client is one open page. Messages are queued on send and written by
// writePump, the only goroutine that writes to conn.
type Client struct {
	GameID string

	conn        *websocket.Conn
	send        chan ServerMessage
	done        chan struct{}
	closeOnce   sync.Once
	closeReason string
}

func newClient(gameID string, conn *websocket.Conn) *Client {
	return &Client{
		GameID: gameID,
		conn:   conn,
		send:   make(chan ServerMessage, sendBuffer),
		done:   make(chan struct{}),
	}
}

// Send queues msg without blocking. A closed client drops it, a full queue
// closes the client.
func (c *Client) Send(msg ServerMessage) error {
	select {
	case <-c.done:
		return nil
	default:
	}

	select {
	case c.send <- msg:
		return nil
	default:
		log.Printf("[WS] Send queue full for game %s, dropping connection", c.GameID)
		c.Close("too slow")
		return ErrSlowClient
	}
}

// Close asks writePump to flush what is queued, send a close frame with reason
// and close the socket.
func (c *Client) Close(reason string) {
	c.closeOnce.Do(func() {
		c.closeReason = reason
		close(c.done)
	})
}

// writePump writes queued messages and pings until the client is closed.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				log.Printf("[WS] Write error for game %s: %v", c.GameID, err)
				c.Close("")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close("")
				return
			}

		case <-c.done:
			c.flush()
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, c.closeReason)
			c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		}
	}
}

// flush writes whatever was queued before the client was closed
func (c *Client) flush() {
	for {
		select {
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *Client) write(msg ServerMessage) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

// ConnectionManager keeps track of every open client so they can be closed on shutdown
type ConnectionManager struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{clients: make(map[*Client]struct{})}
}

func (cm *ConnectionManager) AddClient(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.clients[c] = struct{}{}
}

func (cm *ConnectionManager) RemoveClient(c *Client) {
	cm.mu.Lock()
	delete(cm.clients, c)
	cm.mu.Unlock()

	c.Close("")
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// CloseAll disconnects every client, used on shutdown
func (cm *ConnectionManager) CloseAll(reason string) {
	cm.mu.Lock()
	clients := cm.clients
	cm.clients = make(map[*Client]struct{})
	cm.mu.Unlock()

	for c := range clients {
		c.Close(reason)
	}
}
