package deck

import (
	"errors"
	"testing"

	"github.com/hayeslin-project/goldenflower/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(1))

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := New(randutil.New(99))
	before := make(map[Card]bool)
	for _, c := range d.Cards() {
		before[c] = true
	}

	d.Shuffle()

	if d.Remaining() != 52 {
		t.Fatalf("shuffle changed deck size to %d", d.Remaining())
	}
	for _, c := range d.Cards() {
		if !before[c] {
			t.Errorf("shuffle produced unknown card %v", c)
		}
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	d1 := New(randutil.New(42))
	d2 := New(randutil.New(42))
	d1.Shuffle()
	d2.Shuffle()

	c1, c2 := d1.Cards(), d2.Cards()
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("same seed diverged at index %d: %v vs %v", i, c1[i], c2[i])
		}
	}

	d3 := New(randutil.New(43))
	d3.Shuffle()
	same := true
	for i, c := range d3.Cards() {
		if c != c1[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical shuffles")
	}
}

func TestDealIsRoundRobinFromTop(t *testing.T) {
	// Unshuffled deck: the top (end) of the canonical order is the ace of
	// diamonds downwards, so the dealing order is fully predictable.
	d := New(randutil.New(1))

	hands, err := d.Deal(2)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]Card{
		{{Suit: Diamonds, Rank: Ace}, {Suit: Diamonds, Rank: Queen}, {Suit: Diamonds, Rank: Ten}},
		{{Suit: Diamonds, Rank: King}, {Suit: Diamonds, Rank: Jack}, {Suit: Diamonds, Rank: Nine}},
	}
	for p := range want {
		for i := range want[p] {
			if hands[p][i] != want[p][i] {
				t.Errorf("hand %d card %d: got %v, want %v", p, i, hands[p][i], want[p][i])
			}
		}
	}

	if d.Remaining() != 46 {
		t.Errorf("expected 46 cards remaining, got %d", d.Remaining())
	}
}

func TestDealTooManyPlayers(t *testing.T) {
	d := New(randutil.New(1))

	if _, err := d.Deal(18); !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
	if d.Remaining() != 52 {
		t.Errorf("failed deal consumed cards, %d remaining", d.Remaining())
	}
}
