package room

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayeslin-project/goldenflower/internal/randutil"
)

func newTestRegistry() *Registry {
	return NewRegistry(DefaultConfig(), randutil.New(1), log.New(io.Discard))
}

func TestRegistryCreateSeatsCreator(t *testing.T) {
	g := newTestRegistry()

	rm, err := g.Create("test room", "p1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "room_1", rm.ID())
	assert.Equal(t, "p1", rm.CreatorID())
	assert.Equal(t, 1, rm.PlayerCount())

	rm2, err := g.Create("second", "p2", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "room_2", rm2.ID())
}

func TestRegistryGetAndDelete(t *testing.T) {
	g := newTestRegistry()
	rm, err := g.Create("test room", "p1", "Alice")
	require.NoError(t, err)

	got, ok := g.Get(rm.ID())
	require.True(t, ok)
	assert.Same(t, rm, got)

	assert.True(t, g.Delete(rm.ID()))
	assert.False(t, g.Delete(rm.ID()))
	_, ok = g.Get(rm.ID())
	assert.False(t, ok)
}

func TestRegistryListOrdersByCreation(t *testing.T) {
	g := newTestRegistry()
	for i := 0; i < 11; i++ {
		_, err := g.Create("room", fmt.Sprintf("p%d", i), "Player")
		require.NoError(t, err)
	}

	infos := g.List()
	require.Len(t, infos, 11)
	// room_2 must sort before room_10 despite lexicographic order.
	assert.Equal(t, "room_1", infos[0].ID)
	assert.Equal(t, "room_2", infos[1].ID)
	assert.Equal(t, "room_10", infos[9].ID)
	assert.Equal(t, "room_11", infos[10].ID)

	for _, info := range infos {
		assert.Equal(t, 1, info.PlayerCount)
		assert.Equal(t, "waiting", info.Status)
	}
}

func TestRegistryCreateSeatsCreatorBeforePublishing(t *testing.T) {
	g := newTestRegistry()

	// Joiners race Create on the predictable next id. Whoever lands second
	// is still a plain player; the creator role must already be taken.
	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if rm, ok := g.Get("room_1"); ok {
					_, _ = rm.AddPlayer(id, "Intruder")
					return
				}
			}
		}(fmt.Sprintf("intruder%d", i))
	}

	rm, err := g.Create("test room", "p1", "Alice")
	close(stop)
	wg.Wait()
	require.NoError(t, err)

	assert.Equal(t, "p1", rm.CreatorID())
	assert.True(t, rm.HasPlayer("p1"))
}

func TestRegistryFindByPlayer(t *testing.T) {
	g := newTestRegistry()
	rm, err := g.Create("test room", "p1", "Alice")
	require.NoError(t, err)
	_, err = rm.AddPlayer("p2", "Bob")
	require.NoError(t, err)

	got, ok := g.FindByPlayer("p2")
	require.True(t, ok)
	assert.Same(t, rm, got)

	_, ok = g.FindByPlayer("ghost")
	assert.False(t, ok)
}

func TestRegistrySeededRoomsShuffleDeterministically(t *testing.T) {
	deal := func() []string {
		g := NewRegistry(DefaultConfig(), randutil.New(42), log.New(io.Discard))
		rm, err := g.Create("test room", "p1", "Alice")
		require.NoError(t, err)
		_, err = rm.AddPlayer("p2", "Bob")
		require.NoError(t, err)
		rm.SetReady("p1", true)
		rm.SetReady("p2", true)

		res, err := rm.Start()
		require.NoError(t, err)

		var cards []string
		for _, c := range res.Hands["p1"] {
			cards = append(cards, c.String())
		}
		return cards
	}

	assert.Equal(t, deal(), deal())
}
