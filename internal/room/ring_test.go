package room

import "testing"

func ringOf(ids ...string) *turnRing {
	players := make([]*Player, len(ids))
	for i, id := range ids {
		players[i] = &Player{ID: id}
	}
	return newTurnRing(players)
}

func TestRingAdvanceCycles(t *testing.T) {
	r := ringOf("a", "b", "c")

	if r.Current().ID != "a" {
		t.Fatalf("expected a first, got %s", r.Current().ID)
	}

	want := []string{"b", "c", "a", "b"}
	for _, id := range want {
		if got := r.Advance().ID; got != id {
			t.Fatalf("expected %s, got %s", id, got)
		}
	}
}

func TestRingPeek(t *testing.T) {
	r := ringOf("a", "b", "c")
	if r.Peek().ID != "b" {
		t.Errorf("expected peek b, got %s", r.Peek().ID)
	}
	r.Advance()
	if r.Peek().ID != "c" {
		t.Errorf("expected peek c, got %s", r.Peek().ID)
	}

	single := ringOf("a")
	if single.Peek().ID != "a" {
		t.Errorf("singleton peek should be itself, got %s", single.Peek().ID)
	}
}

func TestRingRemoveOther(t *testing.T) {
	r := ringOf("a", "b", "c")

	if !r.Remove("b") {
		t.Fatal("remove b failed")
	}
	if r.Len() != 2 || r.Contains("b") {
		t.Fatal("b still in ring")
	}
	if r.Current().ID != "a" {
		t.Errorf("current moved unexpectedly to %s", r.Current().ID)
	}
	if r.Advance().ID != "c" {
		t.Errorf("expected advance to skip removed b")
	}
}

func TestRingRemoveCurrentMovesPointer(t *testing.T) {
	r := ringOf("a", "b", "c")

	r.Remove("a")
	if r.Current().ID != "b" {
		t.Errorf("expected pointer on b, got %s", r.Current().ID)
	}
}

func TestRingRemoveLast(t *testing.T) {
	r := ringOf("a", "b")
	r.Remove("a")
	r.Remove("b")

	if r.Len() != 0 || r.Current() != nil {
		t.Error("empty ring should have nil current")
	}
	if r.Remove("a") {
		t.Error("removing from empty ring should report false")
	}
}
