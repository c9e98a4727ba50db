package hand

import (
	"testing"

	"github.com/hayeslin-project/goldenflower/internal/deck"
)

func cards(cs ...[2]int) [3]deck.Card {
	var out [3]deck.Card
	for i, s := range cs {
		out[i] = deck.Card{Suit: deck.Suit(s[0]), Rank: deck.Rank(s[1])}
	}
	return out
}

var (
	s = int(deck.Spades)
	h = int(deck.Hearts)
	c = int(deck.Clubs)
	d = int(deck.Diamonds)
)

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		hand     [3]deck.Card
		category Category
		tiebreak int
	}{
		{
			name:     "triple aces",
			hand:     cards([2]int{s, 14}, [2]int{h, 14}, [2]int{c, 14}),
			category: Triple,
			tiebreak: 14000000,
		},
		{
			name:     "straight flush queen high",
			hand:     cards([2]int{h, 12}, [2]int{h, 11}, [2]int{h, 10}),
			category: StraightFlush,
			tiebreak: 120000,
		},
		{
			name:     "ace low straight flush plays three high",
			hand:     cards([2]int{c, 14}, [2]int{c, 2}, [2]int{c, 3}),
			category: StraightFlush,
			tiebreak: 30000,
		},
		{
			name:     "flush",
			hand:     cards([2]int{d, 13}, [2]int{d, 9}, [2]int{d, 4}),
			category: Flush,
			tiebreak: 13*100 + 9*10 + 4,
		},
		{
			name:     "straight mixed suits",
			hand:     cards([2]int{s, 7}, [2]int{h, 6}, [2]int{c, 5}),
			category: Straight,
			tiebreak: 700,
		},
		{
			name:     "ace low straight plays three high",
			hand:     cards([2]int{s, 2}, [2]int{h, 3}, [2]int{c, 14}),
			category: Straight,
			tiebreak: 300,
		},
		{
			name:     "pair with kicker",
			hand:     cards([2]int{s, 8}, [2]int{h, 8}, [2]int{c, 13}),
			category: Pair,
			tiebreak: 8*100 + 13,
		},
		{
			name:     "pair in low positions after sort",
			hand:     cards([2]int{s, 13}, [2]int{h, 4}, [2]int{c, 4}),
			category: Pair,
			tiebreak: 4*100 + 13,
		},
		{
			name:     "high card",
			hand:     cards([2]int{s, 14}, [2]int{h, 9}, [2]int{c, 5}),
			category: HighCard,
			tiebreak: 14*100 + 9*10 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(tt.hand)
			if ev.Category != tt.category {
				t.Errorf("category: got %v, want %v", ev.Category, tt.category)
			}
			if ev.Tiebreak != tt.tiebreak {
				t.Errorf("tiebreak: got %d, want %d", ev.Tiebreak, tt.tiebreak)
			}
		})
	}
}

func TestEvaluateSortsCardsDescending(t *testing.T) {
	ev := Evaluate(cards([2]int{s, 5}, [2]int{h, 13}, [2]int{c, 9}))
	if ev.Cards[0].Rank != 13 || ev.Cards[1].Rank != 9 || ev.Cards[2].Rank != 5 {
		t.Errorf("cards not sorted descending: %v", ev.Cards)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b [3]deck.Card
		want int // sign only
	}{
		{
			name: "triple beats straight flush",
			a:    cards([2]int{s, 2}, [2]int{h, 2}, [2]int{c, 2}),
			b:    cards([2]int{h, 14}, [2]int{h, 13}, [2]int{h, 12}),
			want: 1,
		},
		{
			name: "straight flush beats flush",
			a:    cards([2]int{s, 6}, [2]int{s, 5}, [2]int{s, 4}),
			b:    cards([2]int{h, 14}, [2]int{h, 13}, [2]int{h, 9}),
			want: 1,
		},
		{
			name: "ace low straight flush loses to four high straight flush",
			a:    cards([2]int{s, 14}, [2]int{s, 2}, [2]int{s, 3}),
			b:    cards([2]int{h, 4}, [2]int{h, 3}, [2]int{h, 2}),
			want: -1,
		},
		{
			name: "flush beats straight",
			a:    cards([2]int{d, 10}, [2]int{d, 7}, [2]int{d, 2}),
			b:    cards([2]int{s, 14}, [2]int{h, 13}, [2]int{c, 12}),
			want: 1,
		},
		{
			name: "ace low straight loses to two three four",
			a:    cards([2]int{s, 14}, [2]int{h, 2}, [2]int{c, 3}),
			b:    cards([2]int{d, 2}, [2]int{s, 3}, [2]int{h, 4}),
			want: -1,
		},
		{
			name: "higher pair wins",
			a:    cards([2]int{s, 9}, [2]int{h, 9}, [2]int{c, 2}),
			b:    cards([2]int{d, 8}, [2]int{c, 8}, [2]int{s, 14}),
			want: 1,
		},
		{
			name: "equal pair decided by kicker",
			a:    cards([2]int{s, 9}, [2]int{h, 9}, [2]int{c, 12}),
			b:    cards([2]int{d, 9}, [2]int{c, 9}, [2]int{s, 11}),
			want: 1,
		},
		{
			name: "identical ranks tie",
			a:    cards([2]int{s, 14}, [2]int{h, 9}, [2]int{c, 5}),
			b:    cards([2]int{d, 14}, [2]int{c, 9}, [2]int{h, 5}),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			switch {
			case tt.want > 0 && got <= 0:
				t.Errorf("expected a to win, got %d", got)
			case tt.want < 0 && got >= 0:
				t.Errorf("expected b to win, got %d", got)
			case tt.want == 0 && got != 0:
				t.Errorf("expected tie, got %d", got)
			}
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	order := []Category{HighCard, Pair, Straight, Flush, StraightFlush, Triple}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Errorf("%v should outrank %v", order[i], order[i-1])
		}
	}
}
