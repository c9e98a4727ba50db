package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// HandSize is the number of cards dealt to each player.
const HandSize = 3

// ErrInsufficientCards is returned by Deal when the deck cannot cover every
// requested hand.
var ErrInsufficientCards = errors.New("not enough cards in deck")

// Deck represents a deck of playing cards. The randomness source is injected
// so shuffles can be made deterministic in tests.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck in canonical order.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Diamonds; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle replaces the deck's cards with a uniformly random permutation.
func (d *Deck) Shuffle() {
	d.cards = shuffled(d.cards, d.rng)
}

// shuffled returns a Fisher-Yates permutation of cards without mutating the
// input slice.
func shuffled(cards []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal deals HandSize cards to each of playerCount hands, one card to every
// player per pass to match live dealing order, consuming from the end of the
// deck.
func (d *Deck) Deal(playerCount int) ([][]Card, error) {
	if playerCount*HandSize > len(d.cards) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCards, playerCount*HandSize, len(d.cards))
	}

	hands := make([][]Card, playerCount)
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}

	for round := 0; round < HandSize; round++ {
		for p := 0; p < playerCount; p++ {
			top := len(d.cards) - 1
			hands[p] = append(hands[p], d.cards[top])
			d.cards = d.cards[:top]
		}
	}

	return hands, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
