package dex

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"battlesim/internal/combat"
	"battlesim/internal/config"
)

var builtinSpecies = []*combat.Species{
	{
		ID: 25, Name: "pikachu", Types: []string{"electric"},
		Stats:     combat.BaseStats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90},
		Abilities: []string{"static", "lightning-rod"},
		Moves:     []string{"tackle", "thunder-shock", "quick-attack", "double-team", "slam"},
	},
	{
		ID: 6, Name: "charizard", Types: []string{"fire", "flying"},
		Stats:     combat.BaseStats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100},
		Abilities: []string{"blaze", "solar-power"},
		Moves:     []string{"scratch", "ember", "dragon-rage", "scary-face", "fire-fang"},
	},
	{
		ID: 9, Name: "blastoise", Types: []string{"water"},
		Stats:     combat.BaseStats{HP: 79, Attack: 83, Defense: 100, SpAttack: 85, SpDefense: 105, Speed: 78},
		Abilities: []string{"torrent", "rain-dish"},
		Moves:     []string{"tackle", "water-gun", "withdraw", "bubble", "bite"},
	},
	{
		ID: 3, Name: "venusaur", Types: []string{"grass", "poison"},
		Stats:     combat.BaseStats{HP: 80, Attack: 82, Defense: 83, SpAttack: 100, SpDefense: 100, Speed: 80},
		Abilities: []string{"overgrow", "chlorophyll"},
		Moves:     []string{"tackle", "vine-whip", "poison-powder", "razor-leaf", "growth"},
	},
}

// Pokedex is the offline species provider. It is read-only after
// construction and safe for concurrent use.
type Pokedex struct {
	byName map[string]*combat.Species
	byID   map[int]string
}

// NewPokedex seeds the built-in roster and layers cfg on top; a configured
// species replaces a built-in one of the same name.
func NewPokedex(cfg *config.SpeciesConfig) *Pokedex {
	p := &Pokedex{byName: map[string]*combat.Species{}, byID: map[int]string{}}
	for _, sp := range builtinSpecies {
		p.add(sp)
	}
	if cfg == nil {
		return p
	}
	for _, def := range cfg.Species {
		if sp := speciesFromDef(def); sp != nil {
			p.add(sp)
		}
	}
	return p
}

func (p *Pokedex) add(sp *combat.Species) {
	p.byName[sp.Name] = sp
	if sp.ID > 0 {
		p.byID[sp.ID] = sp.Name
	}
}

func speciesFromDef(def config.SpeciesDef) *combat.Species {
	name := Normalize(def.Name)
	if name == "" {
		return nil
	}
	types := make([]string, 0, len(def.Types))
	for _, t := range def.Types {
		types = append(types, strings.ToLower(strings.TrimSpace(t)))
	}
	moves := make([]string, 0, len(def.Moves))
	for _, m := range def.Moves {
		moves = append(moves, Normalize(m))
	}
	return &combat.Species{
		ID:    def.ID,
		Name:  name,
		Types: types,
		Stats: combat.BaseStats{
			HP:        def.Stats.HP,
			Attack:    def.Stats.Attack,
			Defense:   def.Stats.Defense,
			SpAttack:  def.Stats.SpAttack,
			SpDefense: def.Stats.SpDefense,
			Speed:     def.Stats.Speed,
		},
		Moves:     moves,
		Abilities: append([]string(nil), def.Abilities...),
	}
}

// GetSpecies looks up by name or national dex number.
func (p *Pokedex) GetSpecies(_ context.Context, id string) (*combat.Species, error) {
	key := Normalize(id)
	if n, err := strconv.Atoi(key); err == nil {
		if name, ok := p.byID[n]; ok {
			key = name
		}
	}
	sp, ok := p.byName[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, combat.ErrSpeciesNotFound)
	}
	cp := *sp
	cp.Types = append([]string(nil), sp.Types...)
	cp.Moves = append([]string(nil), sp.Moves...)
	cp.Abilities = append([]string(nil), sp.Abilities...)
	return &cp, nil
}

// Names lists every known species, sorted.
func (p *Pokedex) Names() []string {
	out := make([]string, 0, len(p.byName))
	for n := range p.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Normalize turns user or file input into the hyphenated lowercase form
// used as a lookup key ("Thunder Shock" -> "thunder-shock").
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "_", " "))), "-")
}

// DisplayName renders a lookup key for people ("thunder-shock" -> "Thunder Shock").
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}
