package room

import "errors"

// Sentinel errors returned by room and registry operations. Every rejected
// operation leaves room state exactly as it was before the call.
var (
	ErrRoomFull          = errors.New("room is full")
	ErrGameInProgress    = errors.New("game already in progress")
	ErrCannotStart       = errors.New("cannot start game")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrAlreadyFolded     = errors.New("you have already folded")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrNoOpponent        = errors.New("no opponent to compare against")
	ErrRoomNotFound      = errors.New("room not found")
	ErrNotInRoom         = errors.New("player not in room")
	ErrNotCreator        = errors.New("only the room creator can do that")
	ErrWrongStatus       = errors.New("operation not valid in current room status")
	ErrUnknownAction     = errors.New("unknown action")
)
