package combat

import "strings"

type Category int

const (
	Physical Category = iota
	Special
	StatusMove
)

func (c Category) String() string {
	switch c {
	case Special:
		return "special"
	case StatusMove:
		return "status"
	}
	return "physical"
}

func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "special":
		return Special
	case "status":
		return StatusMove
	}
	return Physical
}

type EffectKind int

const (
	EffectStatChange EffectKind = iota
	EffectHeal
	EffectDrain
	EffectMultiHit
	EffectWeather
	EffectFlinch
	EffectOHKO
)

func ParseEffectKind(s string) (EffectKind, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "stat_change":
		return EffectStatChange, true
	case "heal":
		return EffectHeal, true
	case "drain":
		return EffectDrain, true
	case "multi_hit":
		return EffectMultiHit, true
	case "weather":
		return EffectWeather, true
	case "flinch":
		return EffectFlinch, true
	case "ohko":
		return EffectOHKO, true
	}
	return 0, false
}

// MoveEffect is a secondary effect rolled with Chance after a move lands.
// Only the fields relevant to Kind are read.
type MoveEffect struct {
	Kind    EffectKind
	Chance  float64
	Stat    Stat
	Stages  int
	OnSelf  bool
	Percent int
	MinHits int
	MaxHits int
	Weather Weather
}

type Move struct {
	Name         string
	Type         string
	Category     Category
	Power        int
	Accuracy     int
	PP           int
	MaxPP        int
	Priority     int
	Inflicts     StatusKind
	StatusChance float64
	Effects      []MoveEffect
	Description  string
	struggle     bool
}

const (
	defaultPower    = 40
	defaultAccuracy = 100
	defaultPP       = 35
	strugglePower   = 50
)

// DefaultMove is the stand-in for a move the data source does not know.
func DefaultMove(name string) *Move {
	return &Move{
		Name:        name,
		Type:        TypeNeutral,
		Category:    Physical,
		Power:       defaultPower,
		Accuracy:    defaultAccuracy,
		PP:          defaultPP,
		MaxPP:       defaultPP,
		Description: "A basic physical attack",
	}
}

// Struggle is used once every move is out of PP. It never runs out itself.
func Struggle() *Move {
	return &Move{
		Name:     "struggle",
		Type:     TypeNeutral,
		Category: Physical,
		Power:    strugglePower,
		Accuracy: 100,
		PP:       1,
		MaxPP:    1,
		struggle: true,
	}
}

func (m *Move) IsStruggle() bool { return m.struggle }

// Damaging reports whether the move deals direct damage.
func (m *Move) Damaging() bool { return m.Power > 0 }

func (m *Move) Usable() bool { return m.struggle || m.PP > 0 }

// Clone copies the move including its effect list so PP can be spent per
// combatant without touching provider caches.
func (m *Move) Clone() *Move {
	c := *m
	if len(m.Effects) > 0 {
		c.Effects = append([]MoveEffect(nil), m.Effects...)
	}
	if c.MaxPP < c.PP {
		c.MaxPP = c.PP
	}
	return &c
}

func (m *Move) effect(kind EffectKind) (MoveEffect, bool) {
	for _, ef := range m.Effects {
		if ef.Kind == kind {
			return ef, true
		}
	}
	return MoveEffect{}, false
}

// thawMoves melt a frozen user regardless of their listed type.
var thawMoves = map[string]bool{
	"flame-wheel": true,
	"sacred-fire": true,
	"flare-blitz": true,
	"scald":       true,
}

func (m *Move) thaws() bool {
	return m.Type == "fire" || thawMoves[m.Name]
}
