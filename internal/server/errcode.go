package server

import (
	"errors"

	"github.com/hayeslin-project/goldenflower/internal/deck"
	"github.com/hayeslin-project/goldenflower/internal/room"
)

// errorCode maps engine errors onto wire error codes. Anything unrecognised
// is an internal fault: reported generically and logged server-side.
func errorCode(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomFull):
		return "room_full"
	case errors.Is(err, room.ErrGameInProgress):
		return "game_in_progress"
	case errors.Is(err, room.ErrCannotStart):
		return "cannot_start"
	case errors.Is(err, room.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, room.ErrAlreadyFolded):
		return "already_folded"
	case errors.Is(err, room.ErrInsufficientChips):
		return "insufficient_chips"
	case errors.Is(err, room.ErrNoOpponent):
		return "no_opponent"
	case errors.Is(err, room.ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, room.ErrNotInRoom):
		return "not_in_room"
	case errors.Is(err, room.ErrNotCreator):
		return "not_creator"
	case errors.Is(err, room.ErrWrongStatus):
		return "wrong_status"
	case errors.Is(err, room.ErrUnknownAction):
		return "invalid_action"
	case errors.Is(err, deck.ErrInsufficientCards):
		return "insufficient_cards"
	default:
		return "internal_error"
	}
}

// isInternal reports whether the error has no mapped wire code.
func isInternal(err error) bool {
	return errorCode(err) == "internal_error"
}
