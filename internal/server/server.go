// Package server is the websocket transport for the Golden Flower game. It
// accepts connections, decodes inbound commands, routes them by player
// identity into the room engine and delivers the resulting events.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/hayeslin-project/goldenflower/internal/playerid"
	"github.com/hayeslin-project/goldenflower/internal/room"
)

// Server owns the connection registry and the room registry binding.
type Server struct {
	upgrader   websocket.Upgrader
	registry   *room.Registry
	ids        *playerid.Generator
	mu         sync.RWMutex
	conns      map[*Connection]struct{}
	players    map[string]*Connection
	register   chan *Connection
	unregister chan *Connection
	logger     *log.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	httpServer *http.Server
}

// NewServer creates a websocket server bound to the given room registry.
func NewServer(registry *room.Registry, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		upgrader: websocket.Upgrader{
			// Clients are terminal apps on the local network; accept any origin.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		registry:   registry,
		ids:        playerid.NewGenerator(nil),
		conns:      make(map[*Connection]struct{}),
		players:    make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		logger:     logger.WithPrefix("server"),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start runs the server on addr, blocking until the listener stops.
func (s *Server) Start(addr string) error {
	go s.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	s.logger.Info("starting websocket server", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener and closes every connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// run handles connection lifecycle.
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.conns[conn] = struct{}{}
			total := len(s.conns)
			s.mu.Unlock()
			s.logger.Info("client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			_, known := s.conns[conn]
			if known {
				delete(s.conns, conn)
				if id := conn.PlayerID(); id != "" {
					delete(s.players, id)
				}
			}
			total := len(s.conns)
			s.mu.Unlock()

			if known {
				// An abrupt disconnect is treated identically to leave_room.
				s.handleDisconnect(conn)
				_ = conn.Close()
				s.logger.Info("client disconnected", "player", conn.PlayerName(), "total", total)
			}

		case <-s.ctx.Done():
			return
		}
	}
}

// handleWebSocket handles websocket upgrade requests.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s, s.logger)
	s.register <- client
	client.Start()

	go func() {
		<-client.ctx.Done()
		s.unregister <- client
	}()
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

// sendToPlayer delivers a message to one player's connection.
func (s *Server) sendToPlayer(playerID string, msg *Message) {
	s.mu.RLock()
	conn, ok := s.players[playerID]
	s.mu.RUnlock()
	if !ok {
		return
	}
	if err := conn.SendMessage(msg); err != nil {
		s.logger.Error("failed to send message", "player", playerID, "error", err)
	}
}

// broadcastToRoom delivers a message to every seated player, optionally
// excluding one.
func (s *Server) broadcastToRoom(st room.State, msg *Message, excludeID string) {
	for _, p := range st.Players {
		if p.ID == excludeID {
			continue
		}
		s.sendToPlayer(p.ID, msg)
	}
}

// broadcastRoomList pushes the lobby listing to every connected client.
func (s *Server) broadcastRoomList() {
	msg, err := NewMessage(MessageTypeRoomList, RoomListData{Rooms: s.registry.List()})
	if err != nil {
		s.logger.Error("failed to create room list message", "error", err)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for conn := range s.conns {
		if conn.PlayerID() == "" {
			continue
		}
		_ = conn.SendMessage(msg)
	}
}

// bindPlayer records the player to connection mapping after a join.
func (s *Server) bindPlayer(id string, conn *Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[id] = conn
}
