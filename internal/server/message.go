package server

import (
	"encoding/json"
	"time"

	"github.com/hayeslin-project/goldenflower/internal/deck"
	"github.com/hayeslin-project/goldenflower/internal/room"
)

// Message is the websocket envelope. Payloads are kept as raw JSON so each
// handler decodes only the shape it expects.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates an envelope with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	var raw json.RawMessage
	if data != nil {
		bs, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = bs
	}
	return &Message{
		Type:      messageType,
		Data:      raw,
		Timestamp: time.Now(),
	}, nil
}

// Client -> Server payloads

type JoinData struct {
	Name string `json:"name"`
}

type CreateRoomData struct {
	RoomName string `json:"roomName"`
}

type JoinRoomData struct {
	RoomID string `json:"roomId"`
}

type ReadyData struct {
	Ready bool `json:"ready"`
}

type ActionData struct {
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// Server -> Client payloads

type JoinedData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type RoomListData struct {
	Rooms []room.Info `json:"rooms"`
}

type RoomCreatedData struct {
	Room room.State `json:"room"`
}

type RoomJoinedData struct {
	Room room.State `json:"room"`
}

type PlayerJoinedData struct {
	Player room.PlayerState `json:"player"`
	Room   room.State       `json:"room"`
}

type PlayerLeftData struct {
	PlayerID string     `json:"playerId"`
	Room     room.State `json:"room"`
}

type PlayerReadyData struct {
	PlayerID string     `json:"playerId"`
	Ready    bool       `json:"ready"`
	Room     room.State `json:"room"`
}

type GameStartedData struct {
	Cards       []deck.Card `json:"cards"`
	Pot         int         `json:"pot"`
	CurrentBet  int         `json:"currentBet"`
	CurrentTurn string      `json:"currentPlayer"`
	Room        room.State  `json:"room"`
}

type ActionResultData struct {
	PlayerID   string     `json:"playerId"`
	Action     string     `json:"action"`
	Message    string     `json:"message"`
	Pot        int        `json:"pot"`
	CurrentBet int        `json:"currentBet"`
	NextPlayer string     `json:"nextPlayer"`
	Winner     string     `json:"winner,omitempty"`
	Loser      string     `json:"loser,omitempty"`
	Room       room.State `json:"room"`
}

type GameOverData struct {
	Winner     string              `json:"winner"`
	WinnerName string              `json:"winnerName"`
	Pot        int                 `json:"pot"`
	Results    []room.PlayerResult `json:"results"`
	Room       room.State          `json:"room"`
}

type GameResetData struct {
	Room room.State `json:"room"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
