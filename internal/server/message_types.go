package server

// MessageType represents a websocket message type with type safety.
type MessageType string

// Wire protocol message types.
const (
	// Client to server
	MessageTypeJoin       MessageType = "join"
	MessageTypeCreateRoom MessageType = "create_room"
	MessageTypeJoinRoom   MessageType = "join_room"
	MessageTypeLeaveRoom  MessageType = "leave_room"
	MessageTypeReady      MessageType = "ready"
	MessageTypeStartGame  MessageType = "start_game"
	MessageTypeAction     MessageType = "action"
	MessageTypeResetGame  MessageType = "reset_game"
	MessageTypeListRooms  MessageType = "list_rooms"

	// Server to client
	MessageTypeJoined       MessageType = "joined"
	MessageTypeRoomList     MessageType = "room_list"
	MessageTypeRoomCreated  MessageType = "room_created"
	MessageTypeRoomJoined   MessageType = "room_joined"
	MessageTypePlayerJoined MessageType = "player_joined"
	MessageTypePlayerLeft   MessageType = "player_left"
	MessageTypePlayerReady  MessageType = "player_ready"
	MessageTypeRoomLeft     MessageType = "room_left"
	MessageTypeGameStarted  MessageType = "game_started"
	MessageTypeActionResult MessageType = "action_result"
	MessageTypeGameOver     MessageType = "game_over"
	MessageTypeGameReset    MessageType = "game_reset"
	MessageTypeError        MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
