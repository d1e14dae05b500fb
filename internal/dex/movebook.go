package dex

import (
	"context"
	"fmt"
	"strings"

	"battlesim/internal/combat"
	"battlesim/internal/config"
)

func stat(s combat.Stat, stages int, self bool) combat.MoveEffect {
	return combat.MoveEffect{Kind: combat.EffectStatChange, Chance: 1, Stat: s, Stages: stages, OnSelf: self}
}

// builtinMoves covers the learnsets of the built-in roster.
var builtinMoves = []*combat.Move{
	{Name: "tackle", Type: "normal", Category: combat.Physical, Power: 40, Accuracy: 100, PP: 35},
	{Name: "thunder-shock", Type: "electric", Category: combat.Special, Power: 40, Accuracy: 100, PP: 30, Inflicts: combat.Paralysis, StatusChance: 0.1},
	{Name: "quick-attack", Type: "normal", Category: combat.Physical, Power: 40, Accuracy: 100, PP: 30, Priority: 1},
	{Name: "double-team", Type: "normal", Category: combat.StatusMove, Accuracy: 100, PP: 15,
		Effects: []combat.MoveEffect{stat(combat.StatEvasion, 1, true)}},
	{Name: "slam", Type: "normal", Category: combat.Physical, Power: 80, Accuracy: 75, PP: 20},
	{Name: "scratch", Type: "normal", Category: combat.Physical, Power: 40, Accuracy: 100, PP: 35},
	{Name: "ember", Type: "fire", Category: combat.Special, Power: 40, Accuracy: 100, PP: 25, Inflicts: combat.Burn, StatusChance: 0.1},
	{Name: "dragon-rage", Type: "dragon", Category: combat.Special, Power: 40, Accuracy: 100, PP: 10},
	{Name: "scary-face", Type: "normal", Category: combat.StatusMove, Accuracy: 100, PP: 10,
		Effects: []combat.MoveEffect{stat(combat.StatSpeed, -2, false)}},
	{Name: "fire-fang", Type: "fire", Category: combat.Physical, Power: 65, Accuracy: 95, PP: 15, Inflicts: combat.Burn, StatusChance: 0.1,
		Effects: combat.KnownEffects("fire-fang")},
	{Name: "water-gun", Type: "water", Category: combat.Special, Power: 40, Accuracy: 100, PP: 25},
	{Name: "withdraw", Type: "water", Category: combat.StatusMove, Accuracy: 100, PP: 40,
		Effects: []combat.MoveEffect{stat(combat.StatDefense, 1, true)}},
	{Name: "bubble", Type: "water", Category: combat.Special, Power: 40, Accuracy: 100, PP: 30,
		Effects: []combat.MoveEffect{{Kind: combat.EffectStatChange, Chance: 0.1, Stat: combat.StatSpeed, Stages: -1}}},
	{Name: "bite", Type: "dark", Category: combat.Physical, Power: 60, Accuracy: 100, PP: 25,
		Effects: combat.KnownEffects("bite")},
	{Name: "vine-whip", Type: "grass", Category: combat.Physical, Power: 45, Accuracy: 100, PP: 25},
	{Name: "poison-powder", Type: "poison", Category: combat.StatusMove, Accuracy: 75, PP: 35, Inflicts: combat.Poison, StatusChance: 1},
	{Name: "razor-leaf", Type: "grass", Category: combat.Physical, Power: 55, Accuracy: 95, PP: 25},
	{Name: "growth", Type: "normal", Category: combat.StatusMove, Accuracy: 100, PP: 20,
		Effects: []combat.MoveEffect{stat(combat.StatAttack, 1, true), stat(combat.StatSpAttack, 1, true)}},
}

// MoveBook is the offline move provider. Unknown names resolve to the
// stand-in move carrying any catalogued effects for that name.
type MoveBook struct {
	moves map[string]*combat.Move
}

// NewMoveBook seeds the built-in moves and layers cfg on top. A malformed
// entry fails the whole load so a typo in moves.yaml is not silently ignored.
func NewMoveBook(cfg *config.MovesConfig) (*MoveBook, error) {
	mb := &MoveBook{moves: map[string]*combat.Move{}}
	for _, m := range builtinMoves {
		mb.moves[m.Name] = m
	}
	if cfg == nil {
		return mb, nil
	}
	for i, def := range cfg.Moves {
		m, err := moveFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("moves[%d] %q: %w", i, def.Name, err)
		}
		mb.moves[m.Name] = m
	}
	return mb, nil
}

func (mb *MoveBook) GetMove(_ context.Context, name string) *combat.Move {
	key := Normalize(name)
	if m, ok := mb.moves[key]; ok {
		return m.Clone()
	}
	m := combat.DefaultMove(key)
	m.Effects = combat.KnownEffects(key)
	return m
}

func (mb *MoveBook) Len() int { return len(mb.moves) }

func moveFromDef(def config.MoveDef) (*combat.Move, error) {
	name := Normalize(def.Name)
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}
	m := &combat.Move{
		Name:         name,
		Type:         strings.ToLower(strings.TrimSpace(def.Type)),
		Category:     combat.ParseCategory(def.Category),
		Power:        def.Power,
		Accuracy:     def.Accuracy,
		PP:           def.PP,
		Priority:     def.Priority,
		StatusChance: def.StatusChance,
		Description:  def.Note,
	}
	if m.Type == "" {
		m.Type = combat.TypeNeutral
	}
	if m.Accuracy <= 0 {
		m.Accuracy = 100
	}
	if m.PP <= 0 {
		m.PP = 10
	}
	m.MaxPP = m.PP
	if def.Status != "" {
		kind, ok := combat.ParseStatusKind(def.Status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", def.Status)
		}
		m.Inflicts = kind
	}
	for _, ed := range def.Effects {
		ef, err := effectFromDef(ed)
		if err != nil {
			return nil, err
		}
		if ef.Kind == combat.EffectDrain && !m.Damaging() {
			return nil, fmt.Errorf("drain needs a damaging move")
		}
		m.Effects = append(m.Effects, ef)
	}
	if len(m.Effects) == 0 {
		m.Effects = combat.KnownEffects(name)
	}
	return m, nil
}

func effectFromDef(ed config.EffectDef) (combat.MoveEffect, error) {
	kind, ok := combat.ParseEffectKind(ed.Type)
	if !ok {
		return combat.MoveEffect{}, fmt.Errorf("unknown effect type %q", ed.Type)
	}
	ef := combat.MoveEffect{Kind: kind, Chance: ed.Chance, Percent: ed.Percent}
	if ef.Chance == 0 {
		ef.Chance = 1
	}
	switch kind {
	case combat.EffectStatChange:
		s, ok := combat.ParseStat(ed.Stat)
		if !ok {
			return ef, fmt.Errorf("unknown stat %q", ed.Stat)
		}
		ef.Stat, ef.Stages = s, ed.Stages
		ef.OnSelf = strings.EqualFold(ed.Target, "self") || strings.EqualFold(ed.Target, "user")
	case combat.EffectMultiHit:
		ef.MinHits, ef.MaxHits = ed.MinHits, ed.MaxHits
		if ed.Hits > 0 {
			ef.MinHits, ef.MaxHits = ed.Hits, ed.Hits
		}
		if ef.MinHits <= 0 {
			return ef, fmt.Errorf("multi_hit needs hits or min_hits")
		}
	case combat.EffectWeather:
		w, ok := combat.ParseWeather(ed.Weather)
		if !ok {
			return ef, fmt.Errorf("unknown weather %q", ed.Weather)
		}
		ef.Weather = w
	case combat.EffectOHKO:
		if ed.Chance == 0 {
			ef.Chance = 0.3
		}
	case combat.EffectHeal, combat.EffectDrain:
		if ef.Percent <= 0 {
			ef.Percent = 50
		}
	}
	return ef, nil
}
