package combat

import (
	"fmt"
	"strings"

	"battlesim/internal/config"
)

type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Concluded
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in-progress"
	case Concluded:
		return "concluded"
	}
	return "not-started"
}

// Battle drives one two-sided fight. It is single-threaded and owns its two
// combatants for its whole lifetime; run independent battles on independent
// combatants and random sources.
type Battle struct {
	ID     string
	A, B   *Combatant
	Rules  *config.RulesConfig
	Record bool

	phase    Phase
	turn     int
	log      []LogEntry
	events   []Event
	fainted  map[*Combatant]bool
	rng      Rand
	chart    TypeChart
	field    *Field
	damage   *DamageCalculator
	status   *StatusMachine
	selector *MoveSelector
	effects  *EffectProcessor
	result   *Result
}

func New(a, b *Combatant, chart TypeChart, rng Rand, rules *config.RulesConfig) *Battle {
	if rules == nil {
		rules = config.DefaultRules()
	}
	if chart == nil {
		chart = DefaultTypeChart()
	}
	field := NewField(rules.WeatherTurns)
	status := NewStatusMachine(rng, rules.Level)
	dc := NewDamageCalculator(chart, rng, rules)
	dc.Field = field
	return &Battle{
		A:        a,
		B:        b,
		Rules:    rules,
		fainted:  map[*Combatant]bool{},
		rng:      rng,
		chart:    chart,
		field:    field,
		damage:   dc,
		status:   status,
		selector: NewMoveSelector(chart, rng, rules.PreferredBias),
		effects:  &EffectProcessor{Rng: rng, Field: field, Status: status},
	}
}

func (b *Battle) Phase() Phase { return b.phase }
func (b *Battle) Turn() int    { return b.turn }
func (b *Battle) Field() *Field { return b.field }

func (b *Battle) Log() []LogEntry {
	return append([]LogEntry(nil), b.log...)
}

func (b *Battle) logf(format string, args ...any) {
	b.log = append(b.log, LogEntry{Turn: b.turn, Message: fmt.Sprintf(format, args...)})
}

func (b *Battle) logAll(msgs []string) {
	for _, m := range msgs {
		if m != "" {
			b.log = append(b.log, LogEntry{Turn: b.turn, Message: m})
		}
	}
}

func (b *Battle) emit(typ string, payload map[string]any) {
	if b.Record {
		b.events = append(b.events, Event{Turn: b.turn, Type: typ, Payload: payload})
	}
}

// Start resets both combatants and opens the log. It is a no-op once the
// battle has started.
func (b *Battle) Start() {
	if b.phase != NotStarted {
		return
	}
	for _, c := range []*Combatant{b.A, b.B} {
		c.HP = c.MaxHP
		c.Stats = c.Species.Stats
		c.Stages.Reset()
		c.Major, c.Volatile = nil, nil
		c.LastMove = ""
	}
	b.phase = InProgress
	b.logf("Battle begins! %s vs %s", b.A.Name(), b.B.Name())
	b.emit("start", map[string]any{
		"a": b.A.Name(), "b": b.B.Name(),
		"a_hp": b.A.MaxHP, "b_hp": b.B.MaxHP,
	})
}

// Step plays one turn and reports whether another may follow.
func (b *Battle) Step() bool {
	if b.phase != InProgress {
		return false
	}
	if b.over() {
		b.conclude()
		return false
	}

	b.turn++
	b.logf("--- Turn %d ---", b.turn)

	// residual damage lands once per turn, before anyone moves
	for _, c := range []*Combatant{b.A, b.B} {
		b.logAll(b.status.ApplyTurnStartDamage(c))
		b.checkFaint(c)
	}
	if b.A.Fainted() || b.B.Fainted() {
		b.conclude()
		return false
	}

	moveA := b.selector.Select(b.A, b.B)
	moveB := b.selector.Select(b.B, b.A)
	first, second, firstMove, secondMove := b.order(moveA, moveB)

	b.act(first, second, firstMove)
	if !first.Fainted() && !second.Fainted() {
		b.act(second, first, secondMove)
	}
	b.endOfTurn(first, second)

	if b.over() {
		b.conclude()
		return false
	}
	return true
}

// Run plays the battle to completion. The turn ceiling bounds the loop.
func (b *Battle) Run() Result {
	if b.result != nil {
		return *b.result
	}
	b.Start()
	for b.Step() {
	}
	return *b.result
}

func (b *Battle) over() bool {
	return b.A.Fainted() || b.B.Fainted() || b.turn >= b.Rules.MaxTurns
}

// order puts the higher-priority move first, then the faster combatant,
// breaking exact ties with a coin flip.
func (b *Battle) order(moveA, moveB *Move) (*Combatant, *Combatant, *Move, *Move) {
	aFirst := true
	switch {
	case moveA.Priority != moveB.Priority:
		aFirst = moveA.Priority > moveB.Priority
	default:
		sa, sb := b.A.EffectiveStat(StatSpeed), b.B.EffectiveStat(StatSpeed)
		if sa == sb {
			aFirst = b.rng.Intn(2) == 0
		} else {
			aFirst = sa > sb
		}
	}
	if aFirst {
		return b.A, b.B, moveA, moveB
	}
	return b.B, b.A, moveB, moveA
}

func (b *Battle) act(actor, target *Combatant, move *Move) {
	if actor.Fainted() {
		return
	}

	ok, msgs := b.status.CanAct(actor, move)
	b.logAll(msgs)
	if b.checkFaint(actor) || !ok {
		if !ok {
			b.emit("skip", map[string]any{"actor": actor.Name()})
		}
		return
	}
	b.useMove(actor, target, move)
}

func (b *Battle) useMove(actor, target *Combatant, move *Move) {
	if !move.IsStruggle() {
		move.PP--
	}
	actor.LastMove = move.Name
	b.logf("%s used %s!", actor.Name(), move.Name)
	b.emit("move", map[string]any{"actor": actor.Name(), "move": move.Name, "pp": move.PP})

	if !b.hits(actor, target, move) {
		b.logf("%s's attack missed!", actor.Name())
		b.emit("miss", map[string]any{"actor": actor.Name(), "move": move.Name})
		return
	}

	_, ohko := move.effect(EffectOHKO)
	if move.Damaging() || ohko {
		if b.chart.Effectiveness(move.Type, target.Types()) == 0 {
			b.logf("It doesn't affect %s...", target.Name())
			return
		}
	}
	if ohko {
		ef, _ := move.effect(EffectOHKO)
		if !chance(b.rng, ef.Chance) {
			b.logf("But it failed!")
			return
		}
		dealt := target.TakeDamage(target.HP)
		b.logf("It's a one-hit KO!")
		b.emit("damage", map[string]any{"target": target.Name(), "dmg": dealt, "hp": target.HP, "ohko": true})
		b.checkFaint(target)
		return
	}

	dealt := 0
	if move.Damaging() {
		dealt = b.strike(actor, target, move)
	}

	if move.Inflicts != StatusNone && !target.Fainted() {
		p := move.StatusChance
		if p <= 0 && !move.Damaging() {
			p = 1
		}
		if chance(b.rng, p) {
			if txt, ok := b.status.Inflict(target, move.Inflicts, actor.Name()); ok {
				b.logf("%s", txt)
				b.emit("status", map[string]any{"target": target.Name(), "status": move.Inflicts.String()})
			} else if !move.Damaging() {
				b.logf("But it failed!")
			}
		}
	}

	b.logAll(b.effects.Apply(move, actor, target, dealt))
	b.checkFaint(target)
}

// strike resolves every hit of a damaging move and returns the total dealt.
func (b *Battle) strike(actor, target *Combatant, move *Move) int {
	hits := b.effects.HitCount(move)
	dealt, landed := 0, 0
	for i := 0; i < hits && !target.Fainted(); i++ {
		res := b.damage.Compute(actor, target, move)
		n := target.TakeDamage(res.Amount)
		dealt += n
		landed++

		parts := []string{fmt.Sprintf("Deals %d damage!", n)}
		if res.Critical {
			parts = append(parts, "Critical hit!")
		}
		switch {
		case res.TypeMultiplier > 1:
			parts = append(parts, "It's super effective!")
		case res.TypeMultiplier < 1:
			parts = append(parts, "It's not very effective...")
		}
		parts = append(parts, res.Notes...)
		b.logf("%s", strings.Join(parts, " "))
		b.emit("damage", map[string]any{
			"actor": actor.Name(), "target": target.Name(), "dmg": n, "hp": target.HP,
			"crit": res.Critical, "type_mult": res.TypeMultiplier,
		})
	}
	if hits > 1 {
		b.logf("Hit %d time(s)!", landed)
	}
	if !b.checkFaint(target) {
		b.logf("%s: %d/%d HP remaining", target.Name(), target.HP, target.MaxHP)
	}
	return dealt
}

// hits performs the accuracy check. An effective accuracy of 100 or more
// never misses and consumes no randomness.
func (b *Battle) hits(actor, target *Combatant, move *Move) bool {
	acc := move.Accuracy
	if acc <= 0 {
		acc = 100
	}
	diff := actor.Stages.Get(StatAccuracy) - target.Stages.Get(StatEvasion)
	eff := float64(acc) * AccuracyMultiplier(diff)
	if eff >= 100 {
		return true
	}
	return float64(b.rng.Intn(100)+1) <= eff
}

func (b *Battle) endOfTurn(first, second *Combatant) {
	for _, c := range []*Combatant{first, second} {
		if c.Fainted() {
			continue
		}
		if txt := b.field.Buffet(c); txt != "" {
			b.logf("%s", txt)
			if b.checkFaint(c) {
				continue
			}
		}
		_, msgs := b.status.Tick(c)
		b.logAll(msgs)
		b.checkFaint(c)
	}
	if txt := b.field.Tick(); txt != "" {
		b.logf("%s", txt)
	}
}

// checkFaint logs a faint exactly once, in the turn it happens.
func (b *Battle) checkFaint(c *Combatant) bool {
	if !c.Fainted() {
		return false
	}
	if !b.fainted[c] {
		b.fainted[c] = true
		b.logf("%s fainted!", c.Name())
		b.emit("faint", map[string]any{"id": c.Name()})
	}
	return true
}

func (b *Battle) conclude() {
	if b.phase == Concluded {
		return
	}
	b.phase = Concluded
	res := Result{BattleID: b.ID, TotalTurns: b.turn}

	a, c := b.A, b.B
	switch {
	case a.Fainted() && c.Fainted():
		res.Winner, res.Loser = DrawName, DrawName
	case a.Fainted():
		res.Winner, res.Loser = c.Name(), a.Name()
	case c.Fainted():
		res.Winner, res.Loser = a.Name(), c.Name()
	default:
		res.TimedOut = true
		b.logf("Turn limit of %d reached!", b.Rules.MaxTurns)
		switch {
		case a.HP > c.HP:
			res.Winner, res.Loser = a.Name(), c.Name()
		case c.HP > a.HP:
			res.Winner, res.Loser = c.Name(), a.Name()
		default:
			res.Winner, res.Loser = DrawName, DrawName
		}
		if res.Winner == DrawName {
			b.logf("Both sides have %d HP left. It's a draw!", a.HP)
		} else {
			b.logf("%s wins with more HP remaining! (%d/%d vs %d/%d)", res.Winner, a.HP, a.MaxHP, c.HP, c.MaxHP)
		}
	}
	if res.Winner == DrawName {
		b.logf("Battle concluded in a draw!")
	} else {
		b.logf("Battle concluded! Winner: %s", res.Winner)
	}
	b.emit("end", map[string]any{"winner": res.Winner, "turns": b.turn})

	res.Log = b.Log()
	if b.Record {
		res.Events = b.events
	}
	res.Meta.Combatants = []CombatantMeta{metaOf(a), metaOf(c)}
	if b.Rules.Note != "" {
		res.Meta.Notes = append(res.Meta.Notes, b.Rules.Note)
	}
	b.result = &res
}
