package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func thunderShock() *Move {
	return &Move{Name: "thunder-shock", Type: "electric", Category: Special, Power: 40, Accuracy: 100, PP: 30}
}

func TestSelectPrefersSuperEffective(t *testing.T) {
	pika := combatant("pikachu", []string{"electric"}, flatStats(100, 90), tackle(), thunderShock())
	squirtle := combatant("squirtle", []string{"water"}, flatStats(100, 50))

	ms := NewMoveSelector(DefaultTypeChart(), &scriptedRand{floats: []float64{0.5}}, 0.7)
	assert.Equal(t, "thunder-shock", ms.Select(pika, squirtle).Name)

	// bias roll fails: uniform over the neutral-or-better set
	ms = NewMoveSelector(DefaultTypeChart(), &scriptedRand{floats: []float64{0.9}, ints: []int{0}}, 0.7)
	assert.Equal(t, "tackle", ms.Select(pika, squirtle).Name)
}

func TestSelectBiasConverges(t *testing.T) {
	pika := combatant("pikachu", []string{"electric"}, flatStats(100, 90), tackle(), thunderShock())
	squirtle := combatant("squirtle", []string{"water"}, flatStats(100, 50))
	ms := NewMoveSelector(DefaultTypeChart(), rand.New(rand.NewSource(9)), 0.7)

	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		if ms.Select(pika, squirtle).Name == "thunder-shock" {
			hits++
		}
	}
	assert.InDelta(t, 0.85, float64(hits)/n, 0.02)
}

func TestSelectAvoidsResistedMoves(t *testing.T) {
	pika := combatant("pikachu", []string{"electric"}, flatStats(100, 90), tackle(), thunderShock())
	ground := combatant("sandshrew", []string{"ground"}, flatStats(100, 50))

	ms := NewMoveSelector(DefaultTypeChart(), rand.New(rand.NewSource(1)), 0.7)
	for i := 0; i < 200; i++ {
		assert.Equal(t, "tackle", ms.Select(pika, ground).Name)
	}
}

func TestSelectFallsBackToAnyUsable(t *testing.T) {
	pika := combatant("pikachu", []string{"electric"}, flatStats(100, 90), thunderShock())
	ground := combatant("sandshrew", []string{"ground"}, flatStats(100, 50))

	ms := NewMoveSelector(DefaultTypeChart(), &scriptedRand{}, 0.7)
	assert.Equal(t, "thunder-shock", ms.Select(pika, ground).Name)
}

func TestSelectStrugglesWithoutPP(t *testing.T) {
	pika := combatant("pikachu", []string{"electric"}, flatStats(100, 90), tackle())
	pika.Moves[0].PP = 0
	foe := combatant("foe", []string{"normal"}, flatStats(100, 50))

	m := NewMoveSelector(DefaultTypeChart(), &scriptedRand{}, 0.7).Select(pika, foe)
	assert.True(t, m.IsStruggle())
	assert.Equal(t, 50, m.Power)

	bare := combatant("bare", []string{"normal"}, flatStats(100, 50))
	assert.True(t, NewMoveSelector(DefaultTypeChart(), &scriptedRand{}, 0.7).Select(bare, foe).IsStruggle())
}

func TestSelectHonoursEncore(t *testing.T) {
	pika := combatant("pikachu", []string{"electric"}, flatStats(100, 90), tackle(), thunderShock())
	squirtle := combatant("squirtle", []string{"water"}, flatStats(100, 50))
	pika.Volatile = &Status{Kind: Encore, Duration: 3, Data: MoveLock{Move: "tackle"}}

	ms := NewMoveSelector(DefaultTypeChart(), &scriptedRand{floats: []float64{0}}, 1)
	assert.Equal(t, "tackle", ms.Select(pika, squirtle).Name)
}
