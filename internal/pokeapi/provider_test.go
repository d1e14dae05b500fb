package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battlesim/internal/combat"
	"battlesim/internal/constants"
)

type fakeFetcher struct {
	mu       sync.Mutex
	pokemon  map[string]*PokemonResponse
	moves    map[string]*MoveResponse
	err      error
	requests int
}

func (f *fakeFetcher) GetPokemon(_ context.Context, id string) (*PokemonResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.pokemon[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (f *fakeFetcher) GetMove(_ context.Context, name string) (*MoveResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	if f.err != nil {
		return nil, f.err
	}
	if m, ok := f.moves[name]; ok {
		return m, nil
	}
	return nil, ErrNotFound
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memCache) Get(_ context.Context, kind, k string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[kind+"/"+k]
	return b, ok, nil
}

func (c *memCache) Put(_ context.Context, kind, k string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[kind+"/"+k] = payload
	return nil
}

type staticSpecies struct{ sp *combat.Species }

func (s staticSpecies) GetSpecies(context.Context, string) (*combat.Species, error) { return s.sp, nil }

func newFetcher(t *testing.T) *fakeFetcher {
	return &fakeFetcher{
		pokemon: map[string]*PokemonResponse{"pikachu": decode[PokemonResponse](t, pikachuJSON)},
		moves:   map[string]*MoveResponse{"thunder-shock": decode[MoveResponse](t, thunderShockJSON)},
	}
}

func TestProviderCachesSpecies(t *testing.T) {
	api := newFetcher(t)
	cache := &memCache{data: map[string][]byte{}}
	p := NewProvider(api, cache, nil, nil, zerolog.Nop())
	ctx := context.Background()

	sp, err := p.GetSpecies(ctx, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", sp.Name)
	_, err = p.GetSpecies(ctx, "pikachu")
	require.NoError(t, err)
	assert.Equal(t, 1, api.requests)

	// a fresh provider over the same store skips the network
	p2 := NewProvider(api, cache, nil, nil, zerolog.Nop())
	sp, err = p2.GetSpecies(ctx, "pikachu")
	require.NoError(t, err)
	assert.Equal(t, 90, sp.Stats.Speed)
	assert.Equal(t, 1, api.requests)

	raw, ok, _ := cache.Get(ctx, constants.SpeciesCacheKind, "pikachu")
	require.True(t, ok)
	var back PokemonResponse
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, 25, back.ID)
}

func TestProviderNotFound(t *testing.T) {
	p := NewProvider(newFetcher(t), nil, staticSpecies{}, nil, zerolog.Nop())
	_, err := p.GetSpecies(context.Background(), "missingno")
	assert.ErrorIs(t, err, combat.ErrSpeciesNotFound)
}

func TestProviderFallsBackWhenOffline(t *testing.T) {
	api := &fakeFetcher{err: errors.New("dial tcp: connection refused")}
	offline := &combat.Species{Name: "pikachu", Types: []string{"electric"}}

	p := NewProvider(api, nil, staticSpecies{offline}, nil, zerolog.Nop())
	sp, err := p.GetSpecies(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Same(t, offline, sp)

	p = NewProvider(api, nil, nil, nil, zerolog.Nop())
	_, err = p.GetSpecies(context.Background(), "pikachu")
	require.Error(t, err)
	assert.NotErrorIs(t, err, combat.ErrSpeciesNotFound)
}

func TestProviderMoves(t *testing.T) {
	api := newFetcher(t)
	p := NewProvider(api, &memCache{data: map[string][]byte{}}, nil, nil, zerolog.Nop())
	ctx := context.Background()

	m := p.GetMove(ctx, "Thunder Shock")
	assert.Equal(t, combat.Paralysis, m.Inflicts)
	m.PP = 0
	assert.Equal(t, 30, p.GetMove(ctx, "thunder-shock").PP)
	assert.Equal(t, 1, api.requests)

	unknown := p.GetMove(ctx, "bite")
	assert.Equal(t, "bite", unknown.Name)
	assert.Equal(t, 40, unknown.Power)
	require.Len(t, unknown.Effects, 1)
	assert.Equal(t, combat.EffectFlinch, unknown.Effects[0].Kind)
}

func TestProviderConcurrentUse(t *testing.T) {
	p := NewProvider(newFetcher(t), &memCache{data: map[string][]byte{}}, nil, nil, zerolog.Nop())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.GetSpecies(context.Background(), "pikachu")
			assert.NoError(t, err)
			assert.Equal(t, "thunder-shock", p.GetMove(context.Background(), "thunder-shock").Name)
		}()
	}
	wg.Wait()
}
