package combat

import "fmt"

// EffectProcessor resolves the secondary effects of a move once it has hit.
type EffectProcessor struct {
	Rng    Rand
	Field  *Field
	Status *StatusMachine
}

// HitCount returns how many times a move strikes. Variable 2-5 hit moves use
// the 3:3:1:1 weighting.
func (ep *EffectProcessor) HitCount(m *Move) int {
	ef, ok := m.effect(EffectMultiHit)
	if !ok {
		return 1
	}
	lo, hi := maxInt(1, ef.MinHits), ef.MaxHits
	if hi <= lo {
		return lo
	}
	if lo == 2 && hi == 5 {
		switch r := ep.Rng.Intn(8); {
		case r < 3:
			return 2
		case r < 6:
			return 3
		case r < 7:
			return 4
		default:
			return 5
		}
	}
	return between(ep.Rng, lo, hi)
}

// Apply rolls and applies every secondary effect of m. dealt is the total
// damage the move did this turn, used by drain.
func (ep *EffectProcessor) Apply(m *Move, att, def *Combatant, dealt int) []string {
	var msgs []string
	for _, ef := range m.Effects {
		switch ef.Kind {
		case EffectMultiHit, EffectOHKO:
			continue
		}
		if !chance(ep.Rng, ef.Chance) {
			continue
		}
		switch ef.Kind {
		case EffectStatChange:
			target := def
			if ef.OnSelf {
				target = att
			}
			if target.Fainted() || ef.Stages == 0 {
				continue
			}
			msgs = append(msgs, stageMessage(target, ef.Stat, ef.Stages, target.Stages.Modify(ef.Stat, ef.Stages)))
		case EffectHeal:
			if att.HP >= att.MaxHP {
				msgs = append(msgs, fmt.Sprintf("%s's HP is full!", att.Name()))
				continue
			}
			healed := att.Heal(maxInt(1, att.MaxHP*ef.Percent/100))
			msgs = append(msgs, fmt.Sprintf("%s recovered %d HP!", att.Name(), healed))
			if ef.Percent >= 100 {
				if txt, ok := ep.Status.Cure(att); ok {
					msgs = append(msgs, txt)
				}
			}
		case EffectDrain:
			if dealt <= 0 {
				continue
			}
			if healed := att.Heal(maxInt(1, dealt*ef.Percent/100)); healed > 0 {
				msgs = append(msgs, fmt.Sprintf("%s drained %d HP!", att.Name(), healed))
			}
		case EffectWeather:
			txt, _ := ep.Field.Set(ef.Weather)
			msgs = append(msgs, txt)
		case EffectFlinch:
			// a flinch only matters to a target that has yet to move; the
			// end-of-turn tick clears it otherwise
			ep.Status.Inflict(def, Flinch, att.Name())
		}
	}
	return msgs
}

func stageMessage(c *Combatant, s Stat, delta int, changed bool) string {
	if !changed {
		if delta > 0 {
			return fmt.Sprintf("%s's %s won't go any higher!", c.Name(), s)
		}
		return fmt.Sprintf("%s's %s won't go any lower!", c.Name(), s)
	}
	switch {
	case delta >= 3:
		return fmt.Sprintf("%s's %s rose drastically!", c.Name(), s)
	case delta == 2:
		return fmt.Sprintf("%s's %s rose sharply!", c.Name(), s)
	case delta > 0:
		return fmt.Sprintf("%s's %s rose!", c.Name(), s)
	case delta == -2:
		return fmt.Sprintf("%s's %s harshly fell!", c.Name(), s)
	case delta <= -3:
		return fmt.Sprintf("%s's %s severely fell!", c.Name(), s)
	}
	return fmt.Sprintf("%s's %s fell!", c.Name(), s)
}
