package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayeslin-project/goldenflower/internal/room"
)

func TestNewMessageEnvelopesPayload(t *testing.T) {
	msg, err := NewMessage(MessageTypeJoined, JoinedData{PlayerID: "p1", PlayerName: "Alice"})
	require.NoError(t, err)

	assert.Equal(t, MessageTypeJoined, msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	var data JoinedData
	require.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, "p1", data.PlayerID)
	assert.Equal(t, "Alice", data.PlayerName)
}

func TestNewMessageNilPayload(t *testing.T) {
	msg, err := NewMessage(MessageTypeRoomLeft, nil)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeRoomLeft, msg.Type)
}

func TestErrorCodeMapping(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{room.ErrRoomFull, "room_full"},
		{room.ErrNotYourTurn, "not_your_turn"},
		{room.ErrInsufficientChips, "insufficient_chips"},
		{room.ErrRoomNotFound, "room_not_found"},
		{room.ErrNotCreator, "not_creator"},
		{room.ErrUnknownAction, "invalid_action"},
		{fmt.Errorf("wrapped: %w", room.ErrAlreadyFolded), "already_folded"},
		{errors.New("disk on fire"), "internal_error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, errorCode(tt.err), "for error %v", tt.err)
	}

	assert.True(t, isInternal(errors.New("unmapped")))
	assert.False(t, isInternal(room.ErrRoomFull))
}
