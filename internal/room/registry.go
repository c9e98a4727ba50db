package room

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/hayeslin-project/goldenflower/internal/randutil"
)

// Registry owns the process-wide room table. It is constructed explicitly
// and injected into the transport handlers; registry-level locking is
// independent of each room's own mutex.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	nextID int
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// NewRegistry creates a registry. The rng seeds each room's private
// randomness source, so a seeded registry produces fully deterministic
// shuffles.
func NewRegistry(cfg Config, rng *rand.Rand, logger *log.Logger) *Registry {
	return &Registry{
		rooms:  make(map[string]*Room),
		nextID: 1,
		cfg:    cfg.withDefaults(),
		rng:    rng,
		logger: logger,
	}
}

// Create allocates a new room with a monotonically assigned id and seats the
// creator as its first player. The creator is seated before the room is
// published in the table, so no concurrent join can claim the creator role.
func (g *Registry) Create(name, creatorID, creatorName string) (*Room, error) {
	g.mu.Lock()
	id := fmt.Sprintf("room_%d", g.nextID)
	g.nextID++
	rm := New(id, name, g.cfg, randutil.New(g.rng.Int64()), g.logger)
	if _, err := rm.AddPlayer(creatorID, creatorName); err != nil {
		g.mu.Unlock()
		return nil, err
	}
	g.rooms[id] = rm
	g.mu.Unlock()

	g.logger.Info("room created", "room", id, "name", name, "creator", creatorName)
	return rm, nil
}

// Get looks up a room by id.
func (g *Registry) Get(id string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rm, ok := g.rooms[id]
	return rm, ok
}

// Delete removes a room from the table.
func (g *Registry) Delete(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.rooms[id]; !ok {
		return false
	}
	delete(g.rooms, id)
	g.logger.Info("room deleted", "room", id)
	return true
}

// List returns lobby info for every room, oldest first.
func (g *Registry) List() []Info {
	g.mu.RLock()
	defer g.mu.RUnlock()

	infos := make([]Info, 0, len(g.rooms))
	for _, rm := range g.rooms {
		st := rm.Snapshot()
		infos = append(infos, Info{
			ID:          st.ID,
			Name:        st.Name,
			PlayerCount: len(st.Players),
			MaxPlayers:  st.MaxPlayers,
			Status:      st.Status,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if len(infos[i].ID) != len(infos[j].ID) {
			return len(infos[i].ID) < len(infos[j].ID)
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// FindByPlayer resolves the room a player currently occupies.
func (g *Registry) FindByPlayer(playerID string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, rm := range g.rooms {
		if rm.HasPlayer(playerID) {
			return rm, true
		}
	}
	return nil, false
}
