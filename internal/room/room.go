// Package room implements the Golden Flower room state machine and registry:
// room lifecycle (waiting, playing, finished), turn sequencing over an
// active-player ring, betting-action validation and settlement.
package room

import (
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/hayeslin-project/goldenflower/internal/deck"
	"github.com/hayeslin-project/goldenflower/internal/hand"
)

// Status is the room lifecycle state. The only valid transition path is
// Waiting -> Playing -> Finished -> (reset) -> Waiting.
type Status int

const (
	Waiting Status = iota
	Playing
	Finished
)

// String returns the wire name of the status
func (s Status) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Room owns one table: its players in join order, deck, pot, bet level and
// turn ring. All state-mutating operations on a room are serialized by a
// single mutex; independent rooms run fully in parallel.
type Room struct {
	mu         sync.Mutex
	id         string
	name       string
	creatorID  string
	cfg        Config
	players    []*Player
	status     Status
	pot        int
	currentBet int
	turns      *turnRing
	rng        *rand.Rand
	logger     *log.Logger
}

// New creates an empty room. The randomness source feeds every shuffle the
// room performs.
func New(id, name string, cfg Config, rng *rand.Rand, logger *log.Logger) *Room {
	cfg = cfg.withDefaults()
	return &Room{
		id:         id,
		name:       name,
		cfg:        cfg,
		status:     Waiting,
		currentBet: cfg.Ante,
		rng:        rng,
		logger:     logger.WithPrefix("room").With("room", id),
	}
}

// ID returns the room id.
func (r *Room) ID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id
}

// Name returns the room name.
func (r *Room) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name
}

// CreatorID returns the id of the current room creator.
func (r *Room) CreatorID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creatorID
}

// Status returns the room lifecycle state.
func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// PlayerCount returns the number of seated players.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// HasPlayer reports whether the player is seated in this room.
func (r *Room) HasPlayer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findPlayer(id) != nil
}

// AddPlayer seats a new player with a fresh chip stack. The first player to
// join becomes the creator.
func (r *Room) AddPlayer(id, name string) (PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) >= r.cfg.MaxPlayers {
		return PlayerState{}, ErrRoomFull
	}
	if r.status != Waiting {
		return PlayerState{}, ErrGameInProgress
	}

	p := &Player{
		ID:    id,
		Name:  name,
		Chips: r.cfg.BaseStake,
	}
	r.players = append(r.players, p)
	if r.creatorID == "" {
		r.creatorID = id
	}
	return playerState(p), nil
}

// RemovePlayer unseats a player regardless of room status. If the creator
// leaves, the role passes to the oldest remaining player in join order. If
// the removal ends a round in progress, the resulting showdown is returned
// for broadcast.
func (r *Room) RemovePlayer(id string) (bool, *Showdown) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	r.players = append(r.players[:idx], r.players[idx+1:]...)
	if r.creatorID == id && len(r.players) > 0 {
		r.creatorID = r.players[0].ID
	}

	var show *Showdown
	if r.status == Playing && r.turns != nil && r.turns.Contains(id) {
		r.turns.Remove(id)
		switch r.turns.Len() {
		case 1:
			show = r.settleLocked()
		case 0:
			// The last active player left while everyone else was folded.
			// Their stake left the table with them; the round just ends.
			r.pot = 0
			r.status = Finished
		}
	}
	return true, show
}

// SetReady toggles a player's readiness flag. Absent players are a no-op.
func (r *Room) SetReady(id string, ready bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPlayer(id)
	if p == nil {
		return false
	}
	p.Ready = ready
	return true
}

// CanStart reports whether a round can begin: waiting status, enough
// players, all of them ready.
func (r *Room) CanStart() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canStartLocked()
}

func (r *Room) canStartLocked() bool {
	if r.status != Waiting || len(r.players) < r.cfg.MinPlayers {
		return false
	}
	for _, p := range r.players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Start begins a round: collects the ante from every player into the pot,
// deals three cards each in join order from a fresh shuffled deck and puts
// the turn on the first player. Start fails before any mutation if a player
// cannot cover the ante, so chips never go negative.
func (r *Room) Start() (*StartResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canStartLocked() {
		return nil, ErrCannotStart
	}
	for _, p := range r.players {
		if p.Chips < r.cfg.Ante {
			return nil, fmt.Errorf("%w: %s cannot cover the ante", ErrInsufficientChips, p.Name)
		}
	}

	d := deck.New(r.rng)
	d.Shuffle()
	hands, err := d.Deal(len(r.players))
	if err != nil {
		return nil, err
	}

	r.status = Playing
	r.pot = 0
	r.currentBet = r.cfg.Ante

	dealt := make(map[string][]deck.Card, len(r.players))
	for i, p := range r.players {
		p.resetForRound()
		p.Chips -= r.cfg.Ante
		p.Bet = r.cfg.Ante
		r.pot += r.cfg.Ante
		p.Hand = hands[i]
		dealt[p.ID] = append([]deck.Card(nil), hands[i]...)
	}

	r.turns = newTurnRing(r.players)

	r.logger.Info("round started", "players", len(r.players), "pot", r.pot, "ante", r.cfg.Ante)

	return &StartResult{
		Pot:         r.pot,
		CurrentBet:  r.currentBet,
		CurrentTurn: r.turns.Current().ID,
		Hands:       dealt,
	}, nil
}

// Act applies one per-turn action for the player. Validation runs in order
// status, membership, folded, turn: a folded player is reported with
// ErrAlreadyFolded rather than ErrNotYourTurn, as folded players can never be
// current in the ring. Rejected actions leave the room untouched; successful
// non-terminal actions pass the turn to the next active player.
func (r *Room) Act(playerID string, action Action, amount int) (*ActionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != Playing {
		return nil, ErrWrongStatus
	}
	p := r.findPlayer(playerID)
	if p == nil {
		return nil, ErrNotInRoom
	}
	if p.Folded {
		return nil, ErrAlreadyFolded
	}
	if r.turns.Current() == nil || r.turns.Current().ID != playerID {
		return nil, ErrNotYourTurn
	}

	res := &ActionResult{PlayerID: playerID, Action: action}

	switch action {
	case ActionSee:
		p.HasSeen = true
		res.Message = "looked at their cards"
		r.turns.Advance()

	case ActionFold:
		p.Folded = true
		r.turns.Remove(p.ID)
		res.Message = "folded"
		if r.turns.Len() == 1 {
			res.Showdown = r.settleLocked()
		}

	case ActionCall:
		owed := r.currentBet - p.Bet
		if p.Chips < owed {
			return nil, ErrInsufficientChips
		}
		p.Chips -= owed
		p.Bet += owed
		r.pot += owed
		res.Message = fmt.Sprintf("called %d", owed)
		r.turns.Advance()

	case ActionRaise:
		raise := amount
		if raise <= 0 {
			raise = r.currentBet
		}
		outlay := r.currentBet - p.Bet + raise
		if p.Chips < outlay {
			return nil, ErrInsufficientChips
		}
		p.Chips -= outlay
		p.Bet += outlay
		r.pot += outlay
		r.currentBet += raise
		res.Message = fmt.Sprintf("raised %d", raise)
		r.turns.Advance()

	case ActionCompare:
		if r.turns.Len() < 2 {
			return nil, ErrNoOpponent
		}
		opp := r.turns.Peek()
		loser, winner := p, opp
		// The challenger loses exact ties: forcing the comparison carries
		// the risk.
		if hand.Compare(p.hand3(), opp.hand3()) > 0 {
			loser, winner = opp, p
		}
		loser.Folded = true
		r.turns.Remove(loser.ID)
		res.CompareWinner = winner.ID
		res.CompareLoser = loser.ID
		res.Message = fmt.Sprintf("compared with %s and %s", opp.Name, compareOutcome(loser == opp))
		if r.turns.Len() == 1 {
			res.Showdown = r.settleLocked()
		} else if loser == opp {
			r.turns.Advance()
		}

	default:
		return nil, ErrUnknownAction
	}

	res.Pot = r.pot
	res.CurrentBet = r.currentBet
	if res.Showdown == nil {
		res.NextTurn = r.turns.Current().ID
	}
	return res, nil
}

func compareOutcome(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// settleLocked awards the pot to the sole remaining active player, reveals
// every hand and moves the room to Finished. Caller holds r.mu.
func (r *Room) settleLocked() *Showdown {
	winner := r.turns.Current()
	pot := r.pot
	winner.Chips += pot
	r.pot = 0
	r.status = Finished

	results := make([]PlayerResult, 0, len(r.players))
	for _, p := range r.players {
		pr := PlayerResult{
			ID:     p.ID,
			Name:   p.Name,
			Chips:  p.Chips,
			Folded: p.Folded,
		}
		if len(p.Hand) == deck.HandSize {
			ev := hand.Evaluate(p.hand3())
			pr.Cards = append([]deck.Card(nil), p.Hand...)
			pr.Rank = ev
			pr.RankName = ev.Name()
		}
		results = append(results, pr)
	}

	r.logger.Info("round settled", "winner", winner.Name, "pot", pot)

	return &Showdown{
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		Pot:        pot,
		Results:    results,
	}
}

// Reset returns a Finished (or still Waiting) room to Waiting, clearing all
// round state and readiness. Chip stacks carry over; chips are not
// replenished between rounds.
func (r *Room) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status == Playing {
		return ErrWrongStatus
	}

	r.status = Waiting
	r.pot = 0
	r.currentBet = r.cfg.Ante
	r.turns = nil
	for _, p := range r.players {
		p.resetForRound()
		p.Ready = false
	}
	return nil
}

// HandOf returns a copy of the player's current cards for private delivery.
func (r *Room) HandOf(id string) []deck.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPlayer(id)
	if p == nil {
		return nil
	}
	return append([]deck.Card(nil), p.Hand...)
}

// Snapshot produces the public room view: full detail for shareable fields,
// card counts only for hands.
func (r *Room) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]PlayerState, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, playerState(p))
	}

	st := State{
		ID:         r.id,
		Name:       r.name,
		CreatorID:  r.creatorID,
		Status:     r.status.String(),
		Pot:        r.pot,
		CurrentBet: r.currentBet,
		MaxPlayers: r.cfg.MaxPlayers,
		Players:    players,
	}
	if r.status == Playing && r.turns != nil && r.turns.Current() != nil {
		st.CurrentTurn = r.turns.Current().ID
	}
	return st
}

func (r *Room) findPlayer(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func playerState(p *Player) PlayerState {
	return PlayerState{
		ID:        p.ID,
		Name:      p.Name,
		Chips:     p.Chips,
		Bet:       p.Bet,
		HasSeen:   p.HasSeen,
		Folded:    p.Folded,
		Ready:     p.Ready,
		CardCount: len(p.Hand),
	}
}
