package combat

import "battlesim/internal/config"

type DamageResult struct {
	Amount         int
	Critical       bool
	TypeMultiplier float64
	Notes          []string
}

type DamageCalculator struct {
	Chart          TypeChart
	Rng            Rand
	Level          int
	CritChance     float64
	CritMultiplier float64
	// Field is optional; when set its weather scales matching move types.
	Field *Field
}

func NewDamageCalculator(chart TypeChart, rng Rand, rules *config.RulesConfig) *DamageCalculator {
	if rules == nil {
		rules = config.DefaultRules()
	}
	return &DamageCalculator{
		Chart:          chart,
		Rng:            rng,
		Level:          rules.Level,
		CritChance:     rules.CritChance,
		CritMultiplier: rules.CritMultiplier,
	}
}

// baseDamage is the level/attack/defense/power core of the formula.
func baseDamage(level, attack, defense, power int) float64 {
	lf := float64(2*level)/5 + 2
	return (lf*float64(attack)*float64(power)/float64(maxInt(1, defense)))/50 + 2
}

// Compute rolls damage for one hit of m. Status moves short-circuit to
// (0, false, 1). Otherwise the amount is clamped to [1, defender max HP]; a
// zero type multiplier is reported but still yields the minimum of 1, and the
// caller decides whether an immune hit lands.
func (dc *DamageCalculator) Compute(att, def *Combatant, m *Move) DamageResult {
	if m.Power <= 0 {
		return DamageResult{TypeMultiplier: 1}
	}

	atkStat, defStat := StatAttack, StatDefense
	if m.Category == Special {
		atkStat, defStat = StatSpAttack, StatSpDefense
	}
	dmg := baseDamage(dc.Level, att.EffectiveStat(atkStat), def.EffectiveStat(defStat), m.Power)

	if att.HasType(m.Type) {
		dmg *= 1.5
	}

	res := DamageResult{TypeMultiplier: dc.Chart.Effectiveness(m.Type, def.Types())}
	dmg *= res.TypeMultiplier

	if dc.Field != nil {
		if wm := dc.Field.Modifier(m.Type); wm != 1 {
			dmg *= wm
			res.Notes = append(res.Notes, dc.Field.Weather.boostNote(wm))
		}
	}

	if chance(dc.Rng, dc.CritChance) {
		dmg *= dc.CritMultiplier
		res.Critical = true
	}

	// 16 evenly spaced rolls from 0.85 to 1.00 inclusive
	dmg *= float64(85+dc.Rng.Intn(16)) / 100

	if mj := att.Major; mj != nil {
		switch {
		case mj.Kind == Burn && m.Category == Physical:
			dmg *= 0.5
			res.Notes = append(res.Notes, "Attack was weakened by burn!")
		case mj.Kind == Paralysis && chance(dc.Rng, 0.1):
			dmg *= 0.75
			res.Notes = append(res.Notes, "Attack was weakened by paralysis!")
		}
	}

	res.Amount = clampInt(int(dmg), 1, maxInt(1, def.MaxHP))
	return res
}

// confusionDamage is the fixed 40-power typeless physical self-hit.
func confusionDamage(c *Combatant, level int) int {
	dmg := baseDamage(level, c.EffectiveStat(StatAttack), c.EffectiveStat(StatDefense), 40)
	return clampInt(int(dmg), 1, maxInt(1, c.MaxHP))
}
