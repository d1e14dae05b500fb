package combat

import (
	"fmt"
	"strings"
)

type StatusKind int

const (
	StatusNone StatusKind = iota
	Burn
	Poison
	BadlyPoisoned
	Paralysis
	Sleep
	Freeze
	Confusion
	Flinch
	Attract
	Curse
	Nightmare
	PerishSong
	Torment
	Taunt
	Encore
	Disable
)

var statusNames = map[StatusKind]string{
	StatusNone:    "none",
	Burn:          "burn",
	Poison:        "poison",
	BadlyPoisoned: "badly-poisoned",
	Paralysis:     "paralysis",
	Sleep:         "sleep",
	Freeze:        "freeze",
	Confusion:     "confusion",
	Flinch:        "flinch",
	Attract:       "attract",
	Curse:         "curse",
	Nightmare:     "nightmare",
	PerishSong:    "perish-song",
	Torment:       "torment",
	Taunt:         "taunt",
	Encore:        "encore",
	Disable:       "disable",
}

func (k StatusKind) String() string {
	if n, ok := statusNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseStatusKind accepts the canonical names plus the verb forms found in
// move effect text ("paralyze", "toxic", "confuse").
func ParseStatusKind(s string) (StatusKind, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch key {
	case "", "none":
		return StatusNone, false
	case "paralyze", "par":
		return Paralysis, true
	case "badly-poison", "toxic", "tox":
		return BadlyPoisoned, true
	case "confuse":
		return Confusion, true
	case "brn":
		return Burn, true
	case "psn":
		return Poison, true
	case "slp":
		return Sleep, true
	case "frz":
		return Freeze, true
	}
	for k, n := range statusNames {
		if n == key && k != StatusNone {
			return k, true
		}
	}
	return StatusNone, false
}

// Major statuses share a single slot per combatant.
func (k StatusKind) Major() bool {
	switch k {
	case Burn, Poison, BadlyPoisoned, Paralysis, Sleep, Freeze:
		return true
	}
	return false
}

// Indefinite marks a status that lasts until something cures it.
const Indefinite = -1

// StatusData carries the fields a particular status variant needs.
type StatusData interface{ statusData() }

// SleepData records the sleep budget rolled at infliction.
type SleepData struct{ Turns int }

// MoveLock names the move an encore forces or a disable forbids.
type MoveLock struct{ Move string }

func (SleepData) statusData() {}
func (MoveLock) statusData()  {}

type Status struct {
	Kind     StatusKind
	Duration int
	Severity int
	Source   string
	Data     StatusData
}

func (s *Status) lockedMove() string {
	if s == nil {
		return ""
	}
	if ml, ok := s.Data.(MoveLock); ok {
		return ml.Move
	}
	return ""
}

var immunities = map[string][]StatusKind{
	"electric": {Paralysis},
	"fire":     {Burn, Freeze},
	"ice":      {Freeze},
	"poison":   {Poison, BadlyPoisoned},
	"steel":    {Poison, BadlyPoisoned},
}

// Immune reports whether any of types is immune to kind.
func Immune(types []string, kind StatusKind) bool {
	for _, t := range types {
		for _, k := range immunities[t] {
			if k == kind {
				return true
			}
		}
	}
	return false
}

var inflictText = map[StatusKind]string{
	Burn:          "%s was burned!",
	Poison:        "%s was poisoned!",
	BadlyPoisoned: "%s was badly poisoned!",
	Paralysis:     "%s is paralyzed! It may be unable to move!",
	Sleep:         "%s fell asleep!",
	Freeze:        "%s was frozen solid!",
	Confusion:     "%s became confused!",
	Flinch:        "%s flinched!",
	Attract:       "%s fell in love!",
	Curse:         "%s was cursed!",
	Nightmare:     "%s began having a nightmare!",
	PerishSong:    "%s will faint in three turns!",
	Torment:       "%s was tormented!",
	Taunt:         "%s was taunted!",
	Encore:        "%s received an encore!",
	Disable:       "One of %s's moves was disabled!",
}

var recoverText = map[StatusKind]string{
	Burn:          "%s's burn was healed!",
	Poison:        "%s was cured of its poisoning!",
	BadlyPoisoned: "%s was cured of its poisoning!",
	Paralysis:     "%s is no longer paralyzed!",
	Sleep:         "%s woke up!",
	Freeze:        "%s thawed out!",
	Confusion:     "%s snapped out of confusion!",
	Attract:       "%s got over its infatuation!",
	Taunt:         "%s is no longer taunted!",
	Encore:        "%s's encore ended!",
	Torment:       "%s is no longer tormented!",
	Disable:       "%s's move is no longer disabled!",
	Curse:         "%s is no longer cursed!",
	Nightmare:     "%s's nightmare ended!",
}

// StatusMachine owns the lifecycle of afflictions: infliction, turn-start
// damage, action gating and end-of-turn ticking.
type StatusMachine struct {
	Rng   Rand
	Level int
}

func NewStatusMachine(rng Rand, level int) *StatusMachine {
	return &StatusMachine{Rng: rng, Level: level}
}

func (sm *StatusMachine) newStatus(kind StatusKind, source string, target *Combatant) *Status {
	st := &Status{Kind: kind, Duration: Indefinite, Source: source}
	switch kind {
	case BadlyPoisoned:
		st.Severity = 1
	case Sleep:
		st.Duration = between(sm.Rng, 1, 3)
		st.Data = SleepData{Turns: st.Duration}
	case Confusion:
		st.Duration = between(sm.Rng, 1, 4)
	case Flinch:
		st.Duration = 1
	case PerishSong:
		st.Duration = 4
	case Taunt:
		st.Duration = between(sm.Rng, 2, 4)
	case Encore:
		st.Duration = between(sm.Rng, 2, 6)
		st.Data = MoveLock{Move: target.LastMove}
	case Disable:
		st.Duration = between(sm.Rng, 1, 5)
		st.Data = MoveLock{Move: target.LastMove}
	}
	return st
}

// Inflict tries to give target the status. It is a silent no-op, returning
// false, when a type immunity applies, when the matching slot is taken, or
// when the variant's precondition is unmet.
func (sm *StatusMachine) Inflict(target *Combatant, kind StatusKind, source string) (string, bool) {
	if kind == StatusNone || target.Fainted() || Immune(target.Types(), kind) {
		return "", false
	}
	if kind.Major() {
		if target.Major != nil {
			return "", false
		}
	} else if target.Volatile != nil {
		return "", false
	}
	switch kind {
	case Encore, Disable:
		if target.LastMove == "" {
			return "", false
		}
	case Nightmare:
		if !target.HasStatus(Sleep) {
			return "", false
		}
	}

	st := sm.newStatus(kind, source, target)
	if kind.Major() {
		target.Major = st
	} else {
		target.Volatile = st
	}
	return fmt.Sprintf(inflictText[kind], target.Name()), true
}

// CanAct gates c's action for the turn. move may be nil when the caller has
// not chosen one yet; move restrictions are then skipped. Confusion damage is
// applied here, so the caller must check for a faint afterwards.
func (sm *StatusMachine) CanAct(c *Combatant, move *Move) (bool, []string) {
	if c.Fainted() {
		return false, nil
	}
	var msgs []string
	name := c.Name()

	if v := c.Volatile; v != nil && v.Kind == Flinch {
		c.Volatile = nil
		return false, []string{fmt.Sprintf("%s flinched and couldn't move!", name)}
	}

	if mj := c.Major; mj != nil {
		switch mj.Kind {
		case Sleep:
			// Tick wakes the sleeper, so a present sleep always blocks.
			return false, []string{fmt.Sprintf("%s is fast asleep!", name)}
		case Freeze:
			if (move != nil && move.thaws()) || chance(sm.Rng, 0.2) {
				c.Major = nil
				msgs = append(msgs, fmt.Sprintf(recoverText[Freeze], name))
			} else {
				return false, []string{fmt.Sprintf("%s is frozen solid!", name)}
			}
		case Paralysis:
			if chance(sm.Rng, 0.25) {
				return false, []string{fmt.Sprintf("%s is paralyzed! It can't move!", name)}
			}
		}
	}

	if v := c.Volatile; v != nil {
		switch v.Kind {
		case Confusion:
			msgs = append(msgs, fmt.Sprintf("%s is confused!", name))
			if chance(sm.Rng, 1.0/3.0) {
				dmg := c.TakeDamage(confusionDamage(c, sm.Level))
				msgs = append(msgs, fmt.Sprintf("It hurt itself in its confusion! (%d damage)", dmg))
				return false, msgs
			}
		case Attract:
			if chance(sm.Rng, 0.5) {
				msgs = append(msgs, fmt.Sprintf("%s is immobilized by love!", name))
				return false, msgs
			}
		}
	}

	if move != nil {
		if ok, why := MoveAllowed(c, move); !ok {
			return false, append(msgs, why)
		}
	}
	return true, msgs
}

// MoveAllowed applies the move restrictions of taunt, encore, torment and
// disable. Struggle is always allowed.
func MoveAllowed(c *Combatant, m *Move) (bool, string) {
	v := c.Volatile
	if v == nil || m.IsStruggle() {
		return true, ""
	}
	name := c.Name()
	switch v.Kind {
	case Taunt:
		if !m.Damaging() {
			return false, fmt.Sprintf("%s can't use %s after the taunt!", name, m.Name)
		}
	case Encore:
		if lock := v.lockedMove(); lock != "" && m.Name != lock && c.moveUsable(lock) {
			return false, fmt.Sprintf("%s must use %s due to the encore!", name, lock)
		}
	case Torment:
		if m.Name == c.LastMove {
			return false, fmt.Sprintf("%s can't use the same move twice in a row due to torment!", name)
		}
	case Disable:
		if m.Name == v.lockedMove() {
			return false, fmt.Sprintf("%s's %s is disabled!", name, m.Name)
		}
	}
	return true, ""
}

// ApplyTurnStartDamage deals c its residual status damage for the turn.
func (sm *StatusMachine) ApplyTurnStartDamage(c *Combatant) []string {
	if c.Fainted() {
		return nil
	}
	var msgs []string
	name := c.Name()
	if mj := c.Major; mj != nil {
		switch mj.Kind {
		case Burn:
			dmg := c.TakeDamage(ceilDiv(c.MaxHP, 16))
			msgs = append(msgs, fmt.Sprintf("%s is hurt by its burn! (%d damage)", name, dmg))
		case Poison:
			dmg := c.TakeDamage(ceilDiv(c.MaxHP, 8))
			msgs = append(msgs, fmt.Sprintf("%s is hurt by poison! (%d damage)", name, dmg))
		case BadlyPoisoned:
			dmg := c.TakeDamage(maxInt(1, c.MaxHP*mj.Severity/16))
			msgs = append(msgs, fmt.Sprintf("%s is badly poisoned! (%d damage)", name, dmg))
		}
	}
	if c.Fainted() {
		return msgs
	}
	if v := c.Volatile; v != nil {
		switch v.Kind {
		case Curse:
			dmg := c.TakeDamage(maxInt(1, c.MaxHP/4))
			msgs = append(msgs, fmt.Sprintf("%s is hurt by the curse! (%d damage)", name, dmg))
		case Nightmare:
			if c.HasStatus(Sleep) {
				dmg := c.TakeDamage(maxInt(1, c.MaxHP/4))
				msgs = append(msgs, fmt.Sprintf("%s is trapped in a nightmare! (%d damage)", name, dmg))
			}
		}
	}
	return msgs
}

// Tick runs the end-of-turn pass over both slots. Positive durations count
// down and clear at zero; badly-poisoned severity grows every pass.
func (sm *StatusMachine) Tick(c *Combatant) (bool, []string) {
	if c.Fainted() {
		return false, nil
	}
	removed := false
	var msgs []string
	for _, slot := range []**Status{&c.Major, &c.Volatile} {
		st := *slot
		if st == nil {
			continue
		}
		if st.Kind == BadlyPoisoned {
			st.Severity++
		}
		if st.Duration <= 0 {
			continue
		}
		st.Duration--
		if st.Kind == PerishSong {
			msgs = append(msgs, fmt.Sprintf("%s's perish count fell to %d!", c.Name(), st.Duration))
		}
		if st.Duration > 0 {
			continue
		}
		*slot = nil
		removed = true
		switch st.Kind {
		case PerishSong:
			c.TakeDamage(c.HP)
		case Flinch:
		default:
			if txt, ok := recoverText[st.Kind]; ok {
				msgs = append(msgs, fmt.Sprintf(txt, c.Name()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s recovered from %s!", c.Name(), st.Kind))
			}
		}
	}
	return removed, msgs
}

// Cure clears the major slot, used by healing moves such as rest.
func (sm *StatusMachine) Cure(c *Combatant) (string, bool) {
	if c.Major == nil {
		return "", false
	}
	kind := c.Major.Kind
	c.Major = nil
	return fmt.Sprintf(recoverText[kind], c.Name()), true
}

func ceilDiv(a, b int) int {
	return maxInt(1, (a+b-1)/b)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
