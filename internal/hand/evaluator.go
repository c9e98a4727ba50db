// Package hand classifies and compares three-card Golden Flower hands.
//
// The category order is fixed by the game's rules and deliberately does not
// follow five-card poker: Triple > StraightFlush > Flush > Straight > Pair >
// HighCard. A hand is ranked by its category first and a packed tiebreak
// value second.
package hand

import (
	"sort"

	"github.com/hayeslin-project/goldenflower/internal/deck"
)

// Category is the coarse rank of a three-card hand. The numeric values match
// the wire protocol: higher always beats lower.
type Category int

const (
	HighCard      Category = 2
	Pair          Category = 3
	Straight      Category = 4
	Flush         Category = 5
	StraightFlush Category = 6
	Triple        Category = 7
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case StraightFlush:
		return "Straight Flush"
	case Triple:
		return "Triple"
	default:
		return "Unknown"
	}
}

// Evaluation is the full ranking key for a hand. Cards holds the three cards
// sorted by descending rank.
type Evaluation struct {
	Category Category     `json:"category"`
	Tiebreak int          `json:"tiebreak"`
	Cards    [3]deck.Card `json:"cards"`
}

// Name returns the display name of the evaluated category.
func (e Evaluation) Name() string {
	return e.Category.String()
}

// Evaluate classifies a three-card hand. It is a pure function of its input.
func Evaluate(cards [3]deck.Card) Evaluation {
	sorted := cards
	sort.Slice(sorted[:], func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	r0, r1, r2 := sorted[0].Value(), sorted[1].Value(), sorted[2].Value()

	switch {
	case r0 == r1 && r1 == r2:
		// Category separation: rank*1_000_000 dwarfs every other tiebreak.
		return Evaluation{Category: Triple, Tiebreak: r0 * 1000000, Cards: sorted}

	case isStraight(r0, r1, r2) && isFlush(sorted):
		return Evaluation{Category: StraightFlush, Tiebreak: straightHigh(r0, r1) * 10000, Cards: sorted}

	case isFlush(sorted):
		return Evaluation{Category: Flush, Tiebreak: r0*100 + r1*10 + r2, Cards: sorted}

	case isStraight(r0, r1, r2):
		return Evaluation{Category: Straight, Tiebreak: straightHigh(r0, r1) * 100, Cards: sorted}

	case r0 == r1 || r1 == r2:
		// With three cards only one pairing can exist. After the descending
		// sort the pair is always adjacent.
		pair, kicker := r1, r0
		if r0 == r1 {
			kicker = r2
		}
		return Evaluation{Category: Pair, Tiebreak: pair*100 + kicker, Cards: sorted}

	default:
		return Evaluation{Category: HighCard, Tiebreak: r0*100 + r1*10 + r2, Cards: sorted}
	}
}

// isStraight reports whether the descending ranks form a run, including the
// wrap-around A-2-3.
func isStraight(r0, r1, r2 int) bool {
	if r0 == int(deck.Ace) && r1 == int(deck.Three) && r2 == int(deck.Two) {
		return true
	}
	return r0 == r1+1 && r1 == r2+1
}

// straightHigh returns the effective high rank of a straight. A-2-3 plays as
// three-high, the lowest straight, not ace-high.
func straightHigh(r0, r1 int) int {
	if r0 == int(deck.Ace) && r1 == int(deck.Three) {
		return int(deck.Three)
	}
	return r0
}

func isFlush(cards [3]deck.Card) bool {
	return cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit
}

// Compare evaluates both hands and returns >0 if a wins, <0 if b wins and 0
// on a true tie. Category is the primary key, tiebreak the secondary.
func Compare(a, b [3]deck.Card) int {
	ea, eb := Evaluate(a), Evaluate(b)
	if ea.Category != eb.Category {
		return int(ea.Category) - int(eb.Category)
	}
	return ea.Tiebreak - eb.Tiebreak
}
