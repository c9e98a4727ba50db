// Package client is a websocket client for the Golden Flower server, used
// by the terminal UI. It sends typed commands and dispatches inbound events
// to registered handlers.
package client

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/hayeslin-project/goldenflower/internal/server"
)

// EventHandler handles one inbound message. Handlers run on the read loop
// and must not block.
type EventHandler func(*server.Message)

// Client is a websocket connection to the game server.
type Client struct {
	serverURL string
	conn      *websocket.Conn
	logger    *log.Logger
	mu        sync.RWMutex
	handlers  map[server.MessageType][]EventHandler
	connected bool
	stop      chan struct{}
}

// New creates a client for the given server URL.
func New(serverURL string, logger *log.Logger) *Client {
	return &Client{
		serverURL: serverURL,
		logger:    logger.WithPrefix("client"),
		handlers:  make(map[server.MessageType][]EventHandler),
		stop:      make(chan struct{}),
	}
}

// Connect dials the server and starts the read loop.
func (c *Client) Connect() error {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		u.Scheme = "ws"
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/ws"
	}

	c.logger.Debug("connecting", "url", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	return nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false
	close(c.stop)

	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// IsConnected reports whether the connection is up.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// On registers a handler for a message type.
func (c *Client) On(mt server.MessageType, handler EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[mt] = append(c.handlers[mt], handler)
}

func (c *Client) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.stop:
			return
		default:
		}

		var msg server.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("websocket error", "error", err)
			}
			return
		}

		c.mu.RLock()
		handlers := c.handlers[msg.Type]
		c.mu.RUnlock()
		for _, h := range handlers {
			h(&msg)
		}
	}
}

func (c *Client) send(mt server.MessageType, data interface{}) error {
	msg, err := server.NewMessage(mt, data)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.connected || c.conn == nil {
		return fmt.Errorf("not connected")
	}
	return c.conn.WriteJSON(msg)
}

// Join registers the player with the server.
func (c *Client) Join(name string) error {
	return c.send(server.MessageTypeJoin, server.JoinData{Name: name})
}

// CreateRoom creates a room and seats the player in it.
func (c *Client) CreateRoom(name string) error {
	return c.send(server.MessageTypeCreateRoom, server.CreateRoomData{RoomName: name})
}

// JoinRoom joins an existing room.
func (c *Client) JoinRoom(roomID string) error {
	return c.send(server.MessageTypeJoinRoom, server.JoinRoomData{RoomID: roomID})
}

// LeaveRoom leaves the current room.
func (c *Client) LeaveRoom() error {
	return c.send(server.MessageTypeLeaveRoom, nil)
}

// SetReady toggles readiness.
func (c *Client) SetReady(ready bool) error {
	return c.send(server.MessageTypeReady, server.ReadyData{Ready: ready})
}

// StartGame starts the round (creator only).
func (c *Client) StartGame() error {
	return c.send(server.MessageTypeStartGame, nil)
}

// Act sends a per-turn action.
func (c *Client) Act(action string, amount int) error {
	return c.send(server.MessageTypeAction, server.ActionData{Action: action, Amount: amount})
}

// ResetGame returns a finished room to waiting (creator only).
func (c *Client) ResetGame() error {
	return c.send(server.MessageTypeResetGame, nil)
}

// ListRooms requests the lobby listing.
func (c *Client) ListRooms() error {
	return c.send(server.MessageTypeListRooms, nil)
}
