package combat

// scriptedRand replays queued draws. Once a queue runs dry Float64 returns
// 0.99 (no procs, no crits) and Intn returns 0 (lowest roll, first choice).
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

func species(name string, types []string, stats BaseStats, moves ...string) *Species {
	return &Species{Name: name, Types: types, Stats: stats, Moves: moves}
}

func flatStats(hp, all int) BaseStats {
	return BaseStats{HP: hp, Attack: all, Defense: all, SpAttack: all, SpDefense: all, Speed: all}
}

func tackle() *Move {
	return &Move{Name: "tackle", Type: "normal", Category: Physical, Power: 40, Accuracy: 100, PP: 35}
}

func combatant(name string, types []string, stats BaseStats, moves ...*Move) *Combatant {
	return NewCombatant(species(name, types, stats), moves)
}
