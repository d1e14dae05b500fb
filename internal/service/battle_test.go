package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battlesim/internal/combat"
	"battlesim/internal/config"
	"battlesim/internal/dex"
)

func newService(t *testing.T, workers int) *BattleService {
	t.Helper()
	moves, err := dex.NewMoveBook(nil)
	require.NoError(t, err)
	return NewBattleService(
		dex.NewPokedex(nil), moves, config.DefaultRules(), combat.DefaultTypeChart(),
		&config.Settings{Workers: workers}, zerolog.Nop(),
	)
}

func TestSimulate(t *testing.T) {
	svc := newService(t, 2)
	res, err := svc.Simulate(context.Background(), Request{A: "pikachu", B: "6", Seed: 42, Record: true})
	require.NoError(t, err)

	assert.NotEmpty(t, res.BattleID)
	assert.Contains(t, []string{"pikachu", "charizard", combat.DrawName}, res.Winner)
	assert.LessOrEqual(t, res.TotalTurns, 50)
	assert.Equal(t, "Battle begins! pikachu vs charizard", res.Log[0].Message)
	assert.NotEmpty(t, res.Events)
	require.Len(t, res.Meta.Combatants, 2)
	assert.Len(t, res.Meta.Combatants[0].Moves, 4)
}

func TestSimulateIsReproducible(t *testing.T) {
	svc := newService(t, 2)
	ctx := context.Background()
	a, err := svc.Simulate(ctx, Request{A: "blastoise", B: "venusaur", Seed: 7})
	require.NoError(t, err)
	b, err := svc.Simulate(ctx, Request{A: "blastoise", B: "venusaur", Seed: 7})
	require.NoError(t, err)

	assert.NotEqual(t, a.BattleID, b.BattleID)
	assert.Equal(t, a.Log, b.Log)
	assert.Equal(t, a.Winner, b.Winner)
}

func TestSimulateUnknownSpecies(t *testing.T) {
	_, err := newService(t, 2).Simulate(context.Background(), Request{A: "pikachu", B: "missingno"})
	require.Error(t, err)
	assert.ErrorIs(t, err, combat.ErrSpeciesNotFound)
	assert.Contains(t, err.Error(), "missingno")
}

func TestPrepareCapsMoves(t *testing.T) {
	svc := newService(t, 2)
	svc.rules.MovesPerCombatant = 2
	m, err := svc.Prepare(context.Background(), "pikachu", "venusaur")
	require.NoError(t, err)
	require.Len(t, m.A.Moves, 2)
	assert.Equal(t, "tackle", m.A.Moves[0].Name)
	assert.Equal(t, "thunder-shock", m.A.Moves[1].Name)
	assert.Equal(t, "Pikachu vs Venusaur", m.String())
}

func TestSimulateMany(t *testing.T) {
	ctx := context.Background()
	req := Request{A: "charizard", B: "venusaur", Seed: 99}

	one, err := newService(t, 1).SimulateMany(ctx, req, 40)
	require.NoError(t, err)
	many, err := newService(t, 8).SimulateMany(ctx, req, 40)
	require.NoError(t, err)

	assert.Equal(t, 40, one.WinsA+one.WinsB+one.Draws)
	assert.Equal(t, one.WinsA, many.WinsA)
	assert.Equal(t, one.WinsB, many.WinsB)
	assert.InDelta(t, one.AvgTurns, many.AvgTurns, 1e-9)
	assert.GreaterOrEqual(t, one.MinTurns, 1)
	assert.LessOrEqual(t, one.MaxTurns, 50)
	assert.Equal(t, "Charizard vs Venusaur", one.Matchup)
}

func TestSimulateManyMirrorMatch(t *testing.T) {
	sum, err := newService(t, 4).SimulateMany(context.Background(), Request{A: "pikachu", B: "pikachu", Seed: 3}, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, sum.WinsA+sum.WinsB+sum.Draws)
}

func TestSimulateManyRejectsBadSize(t *testing.T) {
	_, err := newService(t, 1).SimulateMany(context.Background(), Request{A: "pikachu", B: "charizard"}, 0)
	assert.Error(t, err)
}

func TestSimulateManyHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newService(t, 2).SimulateMany(ctx, Request{A: "pikachu", B: "charizard"}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
