package room

// turnRing is a doubly-linked ring over the players still eligible to act.
// It keeps "next active player" well-defined at every size, shrinks in O(1)
// on fold or compare-loss, and never needs rebuilding mid-round.
type turnRing struct {
	current *turnNode
	nodes   map[string]*turnNode
}

type turnNode struct {
	player     *Player
	next, prev *turnNode
}

// newTurnRing builds a ring over players in the given order, with the turn
// pointer on the first player.
func newTurnRing(players []*Player) *turnRing {
	r := &turnRing{nodes: make(map[string]*turnNode, len(players))}
	for _, p := range players {
		n := &turnNode{player: p}
		r.nodes[p.ID] = n
		if r.current == nil {
			n.next, n.prev = n, n
			r.current = n
			continue
		}
		tail := r.current.prev
		tail.next = n
		n.prev = tail
		n.next = r.current
		r.current.prev = n
	}
	return r
}

// Len returns the number of active players.
func (r *turnRing) Len() int {
	return len(r.nodes)
}

// Current returns the player whose turn it is, or nil for an empty ring.
func (r *turnRing) Current() *Player {
	if r.current == nil {
		return nil
	}
	return r.current.player
}

// Peek returns the next active player clockwise from the current one. At
// size 1 that is the current player itself.
func (r *turnRing) Peek() *Player {
	if r.current == nil {
		return nil
	}
	return r.current.next.player
}

// Advance moves the turn pointer to the next active player and returns it.
func (r *turnRing) Advance() *Player {
	if r.current == nil {
		return nil
	}
	r.current = r.current.next
	return r.current.player
}

// Remove drops a player from the ring. Removing the current player moves the
// turn pointer to the next survivor, so the pointer always lands on an
// active player.
func (r *turnRing) Remove(id string) bool {
	n, ok := r.nodes[id]
	if !ok {
		return false
	}
	delete(r.nodes, id)

	if len(r.nodes) == 0 {
		r.current = nil
		return true
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	if r.current == n {
		r.current = n.next
	}
	return true
}

// Contains reports whether the player is still active.
func (r *turnRing) Contains(id string) bool {
	_, ok := r.nodes[id]
	return ok
}
