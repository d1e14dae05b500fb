package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageMultiplier(t *testing.T) {
	cases := map[int]float64{
		-6: 0.25, -2: 0.5, -1: 2.0 / 3.0, 0: 1, 1: 1.5, 2: 2, 6: 4,
		9: 4, -9: 0.25,
	}
	for stage, want := range cases {
		assert.InDelta(t, want, StageMultiplier(stage), 1e-9, "stage %d", stage)
	}
	assert.Equal(t, 150, ApplyStage(100, 1))
	assert.Equal(t, 50, ApplyStage(100, -2))
	assert.Equal(t, 1, ApplyStage(1, -6))
}

func TestModifyStageClampsAndReportsChange(t *testing.T) {
	var st Stages
	assert.True(t, st.Modify(StatAttack, 2))
	assert.Equal(t, 2, st.Get(StatAttack))
	assert.True(t, st.Modify(StatAttack, 10))
	assert.Equal(t, MaxStage, st.Get(StatAttack))

	for i := 0; i < 5; i++ {
		assert.False(t, st.Modify(StatAttack, 1))
		assert.Equal(t, MaxStage, st.Get(StatAttack))
	}

	assert.True(t, st.Modify(StatEvasion, -12))
	for i := 0; i < 5; i++ {
		assert.False(t, st.Modify(StatEvasion, -1))
		assert.Equal(t, MinStage, st.Get(StatEvasion))
	}
	assert.False(t, st.Modify(StatSpeed, 0))

	st.Reset()
	assert.Equal(t, Stages{}, st)
}

func TestAccuracyMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, AccuracyMultiplier(0))
	assert.InDelta(t, 4.0/3.0, AccuracyMultiplier(1), 1e-9)
	assert.InDelta(t, 0.5, AccuracyMultiplier(-3), 1e-9)
	assert.InDelta(t, 3.0, AccuracyMultiplier(6), 1e-9)
	assert.InDelta(t, 5.0, AccuracyMultiplier(12), 1e-9)
	assert.InDelta(t, 0.2, AccuracyMultiplier(-12), 1e-9)
}

func TestAccuracyUsesFullStageSpread(t *testing.T) {
	var acc, eva Stages
	for i := 0; i < 6; i++ {
		acc.Modify(StatAccuracy, -1)
		eva.Modify(StatEvasion, 1)
	}
	diff := acc.Get(StatAccuracy) - eva.Get(StatEvasion)
	assert.Equal(t, -12, diff)
	assert.InDelta(t, 20.0, 100*AccuracyMultiplier(diff), 1e-9)
}

func TestParseStat(t *testing.T) {
	for in, want := range map[string]Stat{
		"attack":          StatAttack,
		"special-attack":  StatSpAttack,
		"special_defense": StatSpDefense,
		"Speed":           StatSpeed,
		"evasion":         StatEvasion,
		"accuracy":        StatAccuracy,
	} {
		got, ok := ParseStat(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseStat("hp")
	assert.False(t, ok)
}

func TestBaseStatsGet(t *testing.T) {
	b := BaseStats{HP: 1, Attack: 2, Defense: 3, SpAttack: 4, SpDefense: 5, Speed: 6}
	assert.Equal(t, 2, b.Get(StatAttack))
	assert.Equal(t, 5, b.Get(StatSpDefense))
	assert.Equal(t, 6, b.Get(StatSpeed))
	assert.Equal(t, 0, b.Get(StatAccuracy))
}
