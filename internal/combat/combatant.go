package combat

import (
	"context"
	"errors"
)

// ErrSpeciesNotFound is returned by species providers for unknown identifiers.
var ErrSpeciesNotFound = errors.New("species not found")

// Species is the immutable description of a participant.
type Species struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Types     []string  `json:"types"`
	Stats     BaseStats `json:"stats"`
	Moves     []string  `json:"moves"`
	Abilities []string  `json:"abilities,omitempty"`
}

// SpeciesProvider resolves a name or numeric id to a species, or returns an
// error wrapping ErrSpeciesNotFound.
type SpeciesProvider interface {
	GetSpecies(ctx context.Context, id string) (*Species, error)
}

// MoveProvider resolves move metadata. Implementations never fail: unknown
// names come back as DefaultMove.
type MoveProvider interface {
	GetMove(ctx context.Context, name string) *Move
}

// Combatant is the per-battle state wrapped around a species.
type Combatant struct {
	Species  *Species
	HP       int
	MaxHP    int
	Stats    BaseStats
	Stages   Stages
	Moves    []*Move
	Major    *Status
	Volatile *Status
	LastMove string
}

// NewCombatant starts at full HP with neutral stages and no status. Moves
// are cloned so PP is tracked per battle.
func NewCombatant(sp *Species, moves []*Move) *Combatant {
	c := &Combatant{
		Species: sp,
		HP:      maxInt(1, sp.Stats.HP),
		MaxHP:   maxInt(1, sp.Stats.HP),
		Stats:   sp.Stats,
	}
	for _, m := range moves {
		if m != nil {
			c.Moves = append(c.Moves, m.Clone())
		}
	}
	return c
}

func (c *Combatant) Name() string    { return c.Species.Name }
func (c *Combatant) Types() []string { return c.Species.Types }
func (c *Combatant) Fainted() bool   { return c.HP <= 0 }

func (c *Combatant) HasType(t string) bool {
	for _, own := range c.Species.Types {
		if own == t {
			return true
		}
	}
	return false
}

func (c *Combatant) HasStatus(kind StatusKind) bool {
	return (c.Major != nil && c.Major.Kind == kind) || (c.Volatile != nil && c.Volatile.Kind == kind)
}

// EffectiveStat applies the current stage to the battle stat.
func (c *Combatant) EffectiveStat(s Stat) int {
	return ApplyStage(c.Stats.Get(s), c.Stages.Get(s))
}

// TakeDamage lowers HP by n, clamped at zero, and returns what was dealt.
func (c *Combatant) TakeDamage(n int) int {
	if n <= 0 {
		return 0
	}
	if n > c.HP {
		n = c.HP
	}
	c.HP -= n
	return n
}

// Heal raises HP by n, clamped at MaxHP, and returns what was restored.
func (c *Combatant) Heal(n int) int {
	if n <= 0 || c.Fainted() {
		return 0
	}
	if c.HP+n > c.MaxHP {
		n = c.MaxHP - c.HP
	}
	c.HP += n
	return n
}

// UsableMoves lists moves with PP left that no status forbids.
func (c *Combatant) UsableMoves() []*Move {
	var out []*Move
	for _, m := range c.Moves {
		if m.PP <= 0 {
			continue
		}
		if ok, _ := MoveAllowed(c, m); ok {
			out = append(out, m)
		}
	}
	return out
}

func (c *Combatant) moveUsable(name string) bool {
	for _, m := range c.Moves {
		if m.Name == name {
			return m.PP > 0
		}
	}
	return false
}

func (c *Combatant) findMove(name string) *Move {
	for _, m := range c.Moves {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (c *Combatant) statusName() string {
	var parts []string
	if c.Major != nil {
		parts = append(parts, c.Major.Kind.String())
	}
	if c.Volatile != nil {
		parts = append(parts, c.Volatile.Kind.String())
	}
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "+" + parts[1]
}
