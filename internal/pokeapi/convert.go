package pokeapi

import (
	"strings"

	"battlesim/internal/combat"
	"battlesim/internal/constants"
)

// ToSpecies keeps the first MaxFetchedMoves entries of the learnset, in
// the order PokéAPI lists them.
func ToSpecies(r *PokemonResponse) *combat.Species {
	sp := &combat.Species{ID: r.ID, Name: r.Name}
	for _, t := range r.Types {
		sp.Types = append(sp.Types, t.Type.Name)
	}
	for _, s := range r.Stats {
		switch s.Stat.Name {
		case "hp":
			sp.Stats.HP = s.BaseStat
		case "attack":
			sp.Stats.Attack = s.BaseStat
		case "defense":
			sp.Stats.Defense = s.BaseStat
		case "special-attack":
			sp.Stats.SpAttack = s.BaseStat
		case "special-defense":
			sp.Stats.SpDefense = s.BaseStat
		case "speed":
			sp.Stats.Speed = s.BaseStat
		}
	}
	for _, a := range r.Abilities {
		sp.Abilities = append(sp.Abilities, a.Ability.Name)
	}
	for i, m := range r.Moves {
		if i == constants.MaxFetchedMoves {
			break
		}
		sp.Moves = append(sp.Moves, m.Move.Name)
	}
	return sp
}

var ailments = map[string]combat.StatusKind{
	"infatuation": combat.Attract,
}

// effectKeywords is checked in order; "badly poison" must precede "poison".
var effectKeywords = []struct {
	word string
	kind combat.StatusKind
}{
	{"badly poison", combat.BadlyPoisoned},
	{"burn", combat.Burn},
	{"poison", combat.Poison},
	{"paralyz", combat.Paralysis},
	{"sleep", combat.Sleep},
	{"freez", combat.Freeze},
	{"confus", combat.Confusion},
}

func ToMove(r *MoveResponse) *combat.Move {
	m := &combat.Move{
		Name:     r.Name,
		Type:     r.Type.Name,
		Category: combat.ParseCategory(r.DamageClass.Name),
		Power:    deref(r.Power, 0),
		Accuracy: deref(r.Accuracy, 100),
		PP:       deref(r.PP, 10),
		Priority: r.Priority,
	}
	m.MaxPP = m.PP
	if m.Type == "" {
		m.Type = combat.TypeNeutral
	}
	m.Description = description(r)
	m.Inflicts, m.StatusChance = ailment(r)
	m.Effects = effects(r, m)
	return m
}

func deref(p *int, fallback int) int {
	if p == nil || (*p == 0 && fallback != 0) {
		return fallback
	}
	return *p
}

func englishEffect(r *MoveResponse) string {
	for _, e := range r.EffectEntries {
		if e.Language.Name == "en" {
			return strings.ToLower(e.Effect)
		}
	}
	return ""
}

func description(r *MoveResponse) string {
	for _, e := range r.FlavorTextEntries {
		if e.Language.Name == "en" {
			return strings.Join(strings.Fields(e.FlavorText), " ")
		}
	}
	return "No description available"
}

func ailment(r *MoveResponse) (combat.StatusKind, float64) {
	text := englishEffect(r)
	chance := 0.0
	if r.EffectChance != nil {
		chance = float64(*r.EffectChance) / 100
	}

	if meta := r.Meta; meta != nil && meta.Ailment.Name != "" && meta.Ailment.Name != "none" {
		kind, ok := ailments[meta.Ailment.Name]
		if !ok {
			kind, ok = combat.ParseStatusKind(meta.Ailment.Name)
		}
		if ok {
			if kind == combat.Poison && strings.Contains(text, "badly poison") {
				kind = combat.BadlyPoisoned
			}
			if meta.AilmentChance > 0 {
				chance = float64(meta.AilmentChance) / 100
			}
			return kind, chance
		}
	}

	for _, kw := range effectKeywords {
		if strings.Contains(text, kw.word) {
			return kw.kind, chance
		}
	}
	return combat.StatusNone, 0
}

func effects(r *MoveResponse, m *combat.Move) []combat.MoveEffect {
	var out []combat.MoveEffect
	meta := r.Meta
	if meta == nil {
		meta = &MoveMeta{}
	}

	statChance := float64(meta.StatChance) / 100
	if statChance == 0 {
		statChance = 1
	}
	for _, sc := range r.StatChanges {
		s, ok := combat.ParseStat(sc.Stat.Name)
		if !ok || sc.Change == 0 {
			continue
		}
		out = append(out, combat.MoveEffect{
			Kind: combat.EffectStatChange, Chance: statChance, Stat: s, Stages: sc.Change,
			OnSelf: statOnSelf(r.Target.Name, meta.Category.Name, sc.Change),
		})
	}
	if meta.Healing > 0 {
		out = append(out, combat.MoveEffect{Kind: combat.EffectHeal, Chance: 1, Percent: meta.Healing})
	}
	if meta.Drain > 0 {
		out = append(out, combat.MoveEffect{Kind: combat.EffectDrain, Chance: 1, Percent: meta.Drain})
	}
	if meta.MinHits != nil && meta.MaxHits != nil && *meta.MaxHits > 1 {
		out = append(out, combat.MoveEffect{Kind: combat.EffectMultiHit, Chance: 1, MinHits: *meta.MinHits, MaxHits: *meta.MaxHits})
	}
	if meta.FlinchChance > 0 {
		out = append(out, combat.MoveEffect{Kind: combat.EffectFlinch, Chance: float64(meta.FlinchChance) / 100})
	}
	if meta.Category.Name == "ohko" {
		out = append(out, combat.MoveEffect{Kind: combat.EffectOHKO, Chance: 0.3})
	}

	// the catalogue fills in whatever the record leaves out, weather in
	// particular
	for _, known := range combat.KnownEffects(m.Name) {
		if !hasKind(out, known.Kind) {
			out = append(out, known)
		}
	}
	return out
}

// statOnSelf decides who a stat change lands on. Damaging moves such as
// overheat target the opponent yet drop the user's stats; PokeAPI files those
// under damage+raise whatever the sign.
func statOnSelf(target, category string, change int) bool {
	switch {
	case target == "user", target == "user-and-allies":
		return true
	case category == "damage+raise":
		return true
	case category == "net-good-stats":
		return change > 0
	}
	return false
}

func hasKind(effects []combat.MoveEffect, kind combat.EffectKind) bool {
	for _, ef := range effects {
		if ef.Kind == kind {
			return true
		}
	}
	return false
}
