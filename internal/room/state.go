package room

import (
	"github.com/hayeslin-project/goldenflower/internal/deck"
	"github.com/hayeslin-project/goldenflower/internal/hand"
)

// PlayerState is the public view of a player. Hands are exposed as a card
// count only; the owner receives their own cards out-of-band.
type PlayerState struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Chips     int    `json:"chips"`
	Bet       int    `json:"bet"`
	HasSeen   bool   `json:"hasSeen"`
	Folded    bool   `json:"folded"`
	Ready     bool   `json:"ready"`
	CardCount int    `json:"cardCount"`
}

// State is the read-only room snapshot handed to the transport layer after
// every successful operation.
type State struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	CreatorID   string        `json:"creator"`
	Status      string        `json:"status"`
	Pot         int           `json:"pot"`
	CurrentBet  int           `json:"currentBet"`
	CurrentTurn string        `json:"currentTurn,omitempty"`
	MaxPlayers  int           `json:"maxPlayers"`
	Players     []PlayerState `json:"players"`
}

// Info is the lobby listing entry for a room.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PlayerCount int    `json:"playerCount"`
	MaxPlayers  int    `json:"maxPlayers"`
	Status      string `json:"status"`
}

// StartResult reports the initial round state after a successful Start.
// Hands are keyed by player id so the transport can deliver each one
// privately.
type StartResult struct {
	Pot         int
	CurrentBet  int
	CurrentTurn string
	Hands       map[string][]deck.Card
}

// ActionResult reports the outcome of a successful per-turn action. When the
// action ended the round, Showdown is set and NextTurn is empty.
type ActionResult struct {
	PlayerID      string
	Action        Action
	Message       string
	Pot           int
	CurrentBet    int
	NextTurn      string
	CompareWinner string
	CompareLoser  string
	Showdown      *Showdown
}

// Showdown is the terminal result of a round: the pot award plus every
// player's revealed hand for end-of-round display.
type Showdown struct {
	WinnerID   string         `json:"winner"`
	WinnerName string         `json:"winnerName"`
	Pot        int            `json:"pot"`
	Results    []PlayerResult `json:"results"`
}

// PlayerResult is one player's line in the end-of-round reveal. Folded
// players' hands are shown too; their chips are unaffected beyond what they
// already bet.
type PlayerResult struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Chips    int             `json:"chips"`
	Folded   bool            `json:"folded"`
	Cards    []deck.Card     `json:"cards"`
	Rank     hand.Evaluation `json:"rank"`
	RankName string          `json:"rankName"`
}
