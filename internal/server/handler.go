package server

import (
	"encoding/json"
	"fmt"

	"github.com/hayeslin-project/goldenflower/internal/room"
)

// dispatch routes one inbound command. The MessageType enum is closed; every
// arm decodes its own payload shape and unknown types are rejected to the
// sender without touching room state.
func (s *Server) dispatch(c *Connection, msg *Message) {
	s.logger.Debug("received message", "type", msg.Type, "player", c.PlayerID())

	if msg.Type != MessageTypeJoin && c.PlayerID() == "" {
		c.sendError("not_joined", "Send join first")
		return
	}

	switch msg.Type {
	case MessageTypeJoin:
		var data JoinData
		if !decode(c, msg, &data) {
			return
		}
		s.handleJoin(c, data)

	case MessageTypeCreateRoom:
		var data CreateRoomData
		if !decode(c, msg, &data) {
			return
		}
		s.handleCreateRoom(c, data)

	case MessageTypeJoinRoom:
		var data JoinRoomData
		if !decode(c, msg, &data) {
			return
		}
		s.handleJoinRoom(c, data)

	case MessageTypeLeaveRoom:
		s.handleLeaveRoom(c, true)

	case MessageTypeReady:
		var data ReadyData
		if !decode(c, msg, &data) {
			return
		}
		s.handleReady(c, data)

	case MessageTypeStartGame:
		s.handleStartGame(c)

	case MessageTypeAction:
		var data ActionData
		if !decode(c, msg, &data) {
			return
		}
		s.handleAction(c, data)

	case MessageTypeResetGame:
		s.handleResetGame(c)

	case MessageTypeListRooms:
		s.handleListRooms(c)

	default:
		c.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// decode unmarshals a payload, reporting malformed data to the sender.
func decode(c *Connection, msg *Message, v interface{}) bool {
	if len(msg.Data) == 0 {
		return true
	}
	if err := json.Unmarshal(msg.Data, v); err != nil {
		c.sendError("invalid_message", "Failed to parse "+msg.Type.String()+" data")
		return false
	}
	return true
}

// reportError sends the mapped error code to the sender, logging internal
// faults server-side.
func (s *Server) reportError(c *Connection, err error) {
	if isInternal(err) {
		s.logger.Error("internal error", "player", c.PlayerID(), "error", err)
		c.sendError("internal_error", "Server error")
		return
	}
	c.sendError(errorCode(err), err.Error())
}

func (s *Server) handleJoin(c *Connection, data JoinData) {
	if c.PlayerID() != "" {
		c.sendError("already_joined", "Already joined")
		return
	}

	id := s.ids.Generate()
	name := data.Name
	if name == "" {
		name = "player-" + id[len(id)-4:]
	}
	c.SetPlayer(id, name)
	s.bindPlayer(id, c)

	s.logger.Info("player joined", "player", name, "id", id)

	s.reply(c, MessageTypeJoined, JoinedData{PlayerID: id, PlayerName: name})
	s.reply(c, MessageTypeRoomList, RoomListData{Rooms: s.registry.List()})
}

func (s *Server) handleCreateRoom(c *Connection, data CreateRoomData) {
	if _, ok := s.registry.FindByPlayer(c.PlayerID()); ok {
		c.sendError("already_in_room", "Leave your current room first")
		return
	}

	name := data.RoomName
	if name == "" {
		name = fmt.Sprintf("%s's room", c.PlayerName())
	}

	rm, err := s.registry.Create(name, c.PlayerID(), c.PlayerName())
	if err != nil {
		s.reportError(c, err)
		return
	}

	s.reply(c, MessageTypeRoomCreated, RoomCreatedData{Room: rm.Snapshot()})
	s.broadcastRoomList()
}

func (s *Server) handleJoinRoom(c *Connection, data JoinRoomData) {
	if _, ok := s.registry.FindByPlayer(c.PlayerID()); ok {
		c.sendError("already_in_room", "Leave your current room first")
		return
	}

	rm, ok := s.registry.Get(data.RoomID)
	if !ok {
		s.reportError(c, room.ErrRoomNotFound)
		return
	}

	player, err := rm.AddPlayer(c.PlayerID(), c.PlayerName())
	if err != nil {
		s.reportError(c, err)
		return
	}

	st := rm.Snapshot()
	s.reply(c, MessageTypeRoomJoined, RoomJoinedData{Room: st})

	if msg, err := NewMessage(MessageTypePlayerJoined, PlayerJoinedData{Player: player, Room: st}); err == nil {
		s.broadcastToRoom(st, msg, c.PlayerID())
	}
	s.broadcastRoomList()
}

// handleLeaveRoom removes the player from their room. notify controls the
// room_left reply; disconnects skip it.
func (s *Server) handleLeaveRoom(c *Connection, notify bool) {
	rm, ok := s.registry.FindByPlayer(c.PlayerID())
	if !ok {
		if notify {
			s.reportError(c, room.ErrNotInRoom)
		}
		return
	}

	removed, show := rm.RemovePlayer(c.PlayerID())
	if !removed {
		return
	}

	st := rm.Snapshot()

	if show != nil {
		if msg, err := NewMessage(MessageTypeGameOver, GameOverData{
			Winner:     show.WinnerID,
			WinnerName: show.WinnerName,
			Pot:        show.Pot,
			Results:    show.Results,
			Room:       st,
		}); err == nil {
			s.broadcastToRoom(st, msg, "")
		}
	}

	if msg, err := NewMessage(MessageTypePlayerLeft, PlayerLeftData{PlayerID: c.PlayerID(), Room: st}); err == nil {
		s.broadcastToRoom(st, msg, "")
	}

	if rm.PlayerCount() == 0 {
		s.registry.Delete(rm.ID())
	}

	if notify {
		s.reply(c, MessageTypeRoomLeft, nil)
	}
	s.broadcastRoomList()
}

// handleDisconnect is the abrupt-close path: identical to leave_room except
// no reply is sent.
func (s *Server) handleDisconnect(c *Connection) {
	if c.PlayerID() == "" {
		return
	}
	s.handleLeaveRoom(c, false)
}

func (s *Server) handleReady(c *Connection, data ReadyData) {
	rm, ok := s.registry.FindByPlayer(c.PlayerID())
	if !ok {
		s.reportError(c, room.ErrNotInRoom)
		return
	}

	rm.SetReady(c.PlayerID(), data.Ready)

	st := rm.Snapshot()
	if msg, err := NewMessage(MessageTypePlayerReady, PlayerReadyData{
		PlayerID: c.PlayerID(),
		Ready:    data.Ready,
		Room:     st,
	}); err == nil {
		s.broadcastToRoom(st, msg, "")
	}
}

func (s *Server) handleStartGame(c *Connection) {
	rm, ok := s.registry.FindByPlayer(c.PlayerID())
	if !ok {
		s.reportError(c, room.ErrNotInRoom)
		return
	}
	if rm.CreatorID() != c.PlayerID() {
		s.reportError(c, room.ErrNotCreator)
		return
	}

	result, err := rm.Start()
	if err != nil {
		s.reportError(c, err)
		return
	}

	st := rm.Snapshot()
	// Each player's hand is delivered privately to its owner only.
	for id, cards := range result.Hands {
		msg, err := NewMessage(MessageTypeGameStarted, GameStartedData{
			Cards:       cards,
			Pot:         result.Pot,
			CurrentBet:  result.CurrentBet,
			CurrentTurn: result.CurrentTurn,
			Room:        st,
		})
		if err != nil {
			s.logger.Error("failed to create game started message", "error", err)
			continue
		}
		s.sendToPlayer(id, msg)
	}
	s.broadcastRoomList()
}

func (s *Server) handleAction(c *Connection, data ActionData) {
	rm, ok := s.registry.FindByPlayer(c.PlayerID())
	if !ok {
		s.reportError(c, room.ErrNotInRoom)
		return
	}

	action, err := room.ParseAction(data.Action)
	if err != nil {
		s.reportError(c, err)
		return
	}

	result, err := rm.Act(c.PlayerID(), action, data.Amount)
	if err != nil {
		s.reportError(c, err)
		return
	}

	st := rm.Snapshot()

	if result.Showdown != nil {
		if msg, err := NewMessage(MessageTypeGameOver, GameOverData{
			Winner:     result.Showdown.WinnerID,
			WinnerName: result.Showdown.WinnerName,
			Pot:        result.Showdown.Pot,
			Results:    result.Showdown.Results,
			Room:       st,
		}); err == nil {
			s.broadcastToRoom(st, msg, "")
		}
		s.broadcastRoomList()
		return
	}

	if msg, err := NewMessage(MessageTypeActionResult, ActionResultData{
		PlayerID:   c.PlayerID(),
		Action:     result.Action.String(),
		Message:    result.Message,
		Pot:        result.Pot,
		CurrentBet: result.CurrentBet,
		NextPlayer: result.NextTurn,
		Winner:     result.CompareWinner,
		Loser:      result.CompareLoser,
		Room:       st,
	}); err == nil {
		s.broadcastToRoom(st, msg, "")
	}
}

func (s *Server) handleResetGame(c *Connection) {
	rm, ok := s.registry.FindByPlayer(c.PlayerID())
	if !ok {
		s.reportError(c, room.ErrNotInRoom)
		return
	}
	if rm.CreatorID() != c.PlayerID() {
		s.reportError(c, room.ErrNotCreator)
		return
	}

	if err := rm.Reset(); err != nil {
		s.reportError(c, err)
		return
	}

	st := rm.Snapshot()
	if msg, err := NewMessage(MessageTypeGameReset, GameResetData{Room: st}); err == nil {
		s.broadcastToRoom(st, msg, "")
	}
	s.broadcastRoomList()
}

func (s *Server) handleListRooms(c *Connection) {
	s.reply(c, MessageTypeRoomList, RoomListData{Rooms: s.registry.List()})
}

// reply sends a typed message to one connection.
func (s *Server) reply(c *Connection, mt MessageType, data interface{}) {
	msg, err := NewMessage(mt, data)
	if err != nil {
		s.logger.Error("failed to create message", "type", mt, "error", err)
		return
	}
	_ = c.SendMessage(msg)
}
