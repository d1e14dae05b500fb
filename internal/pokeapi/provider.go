package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"battlesim/internal/combat"
	"battlesim/internal/constants"
)

// Fetcher is the remote half of the provider; *Client implements it.
type Fetcher interface {
	GetPokemon(ctx context.Context, nameOrID string) (*PokemonResponse, error)
	GetMove(ctx context.Context, name string) (*MoveResponse, error)
}

// Cache persists raw records between runs; *database.CacheStore implements it.
type Cache interface {
	Get(ctx context.Context, kind, key string) ([]byte, bool, error)
	Put(ctx context.Context, kind, key string, payload []byte) error
}

// Provider serves species and moves from memory, then the persistent cache,
// then PokéAPI. When the API is unreachable it defers to the offline
// providers, if any. It is safe for concurrent use.
type Provider struct {
	api             Fetcher
	cache           Cache
	fallbackSpecies combat.SpeciesProvider
	fallbackMoves   combat.MoveProvider
	logger          zerolog.Logger

	mu      sync.RWMutex
	species map[string]*combat.Species
	moves   map[string]*combat.Move
}

// NewProvider wires the layers. cache and both fallbacks may be nil.
func NewProvider(api Fetcher, cache Cache, species combat.SpeciesProvider, moves combat.MoveProvider, logger zerolog.Logger) *Provider {
	return &Provider{
		api:             api,
		cache:           cache,
		fallbackSpecies: species,
		fallbackMoves:   moves,
		logger:          logger,
		species:         map[string]*combat.Species{},
		moves:           map[string]*combat.Move{},
	}
}

func key(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

func (p *Provider) GetSpecies(ctx context.Context, id string) (*combat.Species, error) {
	k := key(id)
	p.mu.RLock()
	sp, ok := p.species[k]
	p.mu.RUnlock()
	if ok {
		p.logger.Debug().Str("species", k).Msg("species memory hit")
		return sp, nil
	}

	var raw PokemonResponse
	if p.loadCached(ctx, constants.SpeciesCacheKind, k, &raw) {
		sp = ToSpecies(&raw)
		p.remember(k, sp)
		return sp, nil
	}

	resp, err := p.api.GetPokemon(ctx, k)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%q: %w", id, combat.ErrSpeciesNotFound)
	}
	if err != nil {
		p.logger.Warn().Err(err).Str("species", k).Msg("failed to fetch species")
		if p.fallbackSpecies != nil {
			return p.fallbackSpecies.GetSpecies(ctx, id)
		}
		return nil, fmt.Errorf("fetch species %q: %w", id, err)
	}

	p.store(ctx, constants.SpeciesCacheKind, k, resp)
	if resp.Name != "" && resp.Name != k {
		p.store(ctx, constants.SpeciesCacheKind, resp.Name, resp)
	}
	sp = ToSpecies(resp)
	p.remember(k, sp)
	return sp, nil
}

func (p *Provider) remember(k string, sp *combat.Species) {
	p.mu.Lock()
	p.species[k] = sp
	p.species[sp.Name] = sp
	p.mu.Unlock()
}

// GetMove never fails: errors degrade to the offline book or the stand-in
// move. Callers receive their own copy.
func (p *Provider) GetMove(ctx context.Context, name string) *combat.Move {
	k := key(name)
	p.mu.RLock()
	m, ok := p.moves[k]
	p.mu.RUnlock()
	if ok {
		return m.Clone()
	}

	var raw MoveResponse
	if p.loadCached(ctx, constants.MoveCacheKind, k, &raw) {
		m = ToMove(&raw)
	} else if resp, err := p.api.GetMove(ctx, k); err == nil {
		p.store(ctx, constants.MoveCacheKind, k, resp)
		m = ToMove(resp)
	} else {
		p.logger.Warn().Err(err).Str("move", k).Msg("failed to fetch move, using stand-in")
		if p.fallbackMoves != nil {
			return p.fallbackMoves.GetMove(ctx, k)
		}
		m = combat.DefaultMove(k)
		m.Effects = combat.KnownEffects(k)
		return m
	}

	p.mu.Lock()
	p.moves[k] = m
	p.mu.Unlock()
	return m.Clone()
}

func (p *Provider) loadCached(ctx context.Context, kind, k string, out any) bool {
	if p.cache == nil {
		return false
	}
	payload, ok, err := p.cache.Get(ctx, kind, k)
	if err != nil {
		p.logger.Warn().Err(err).Str("kind", kind).Str("key", k).Msg("cache read failed")
		return false
	}
	if !ok {
		p.logger.Debug().Str("kind", kind).Str("key", k).Msg("cache miss")
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		p.logger.Warn().Err(err).Str("kind", kind).Str("key", k).Msg("corrupt cache entry")
		return false
	}
	p.logger.Debug().Str("kind", kind).Str("key", k).Msg("cache hit")
	return true
}

func (p *Provider) store(ctx context.Context, kind, k string, v any) {
	if p.cache == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := p.cache.Put(ctx, kind, k, payload); err != nil {
		p.logger.Warn().Err(err).Str("kind", kind).Str("key", k).Msg("cache write failed")
	}
}
