package combat

// MoveSelector is the heuristic policy: lean toward super-effective moves,
// avoid resisted ones, otherwise pick at random.
type MoveSelector struct {
	Chart TypeChart
	Rng   Rand
	// Bias is the probability of picking from the super-effective set when
	// one exists.
	Bias float64
}

func NewMoveSelector(chart TypeChart, rng Rand, bias float64) *MoveSelector {
	return &MoveSelector{Chart: chart, Rng: rng, Bias: bias}
}

// Select returns the move actor uses against opp this turn. It never
// returns nil: with nothing usable the actor struggles.
func (ms *MoveSelector) Select(actor, opp *Combatant) *Move {
	usable := actor.UsableMoves()
	if len(usable) == 0 {
		return Struggle()
	}
	if v := actor.Volatile; v != nil && v.Kind == Encore {
		if m := actor.findMove(v.lockedMove()); m != nil && m.PP > 0 {
			return m
		}
	}

	var preferred, neutral []*Move
	for _, m := range usable {
		eff := ms.Chart.Effectiveness(m.Type, opp.Types())
		if eff >= 2 {
			preferred = append(preferred, m)
		}
		if eff >= 1 {
			neutral = append(neutral, m)
		}
	}

	if len(preferred) > 0 && chance(ms.Rng, ms.Bias) {
		return pick(ms.Rng, preferred)
	}
	if len(neutral) > 0 {
		return pick(ms.Rng, neutral)
	}
	return pick(ms.Rng, usable)
}

func pick(rng Rand, moves []*Move) *Move {
	if len(moves) == 1 {
		return moves[0]
	}
	return moves[rng.Intn(len(moves))]
}
