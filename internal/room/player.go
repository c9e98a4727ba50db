package room

import "github.com/hayeslin-project/goldenflower/internal/deck"

// Player is a room-scoped participant. It is created when a player joins a
// room and mutated only through the Room's serialized operations.
type Player struct {
	ID      string
	Name    string
	Chips   int
	Bet     int
	Hand    []deck.Card
	HasSeen bool
	Folded  bool
	Ready   bool
}

// resetForRound clears per-round state ahead of a deal. Chips carry over
// between rounds; the chip economy is persistent.
func (p *Player) resetForRound() {
	p.Bet = 0
	p.Hand = nil
	p.HasSeen = false
	p.Folded = false
}

// hand3 returns the player's cards as a fixed-size array for evaluation.
func (p *Player) hand3() [3]deck.Card {
	var h [3]deck.Card
	copy(h[:], p.Hand)
	return h
}
