package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processor(rng Rand) *EffectProcessor {
	return &EffectProcessor{Rng: rng, Field: NewField(5), Status: NewStatusMachine(rng, 50)}
}

func TestHitCount(t *testing.T) {
	fury := &Move{Name: "fury-swipes", Effects: KnownEffects("fury-swipes")}
	for roll, want := range map[int]int{0: 2, 2: 2, 3: 3, 5: 3, 6: 4, 7: 5} {
		ep := processor(&scriptedRand{ints: []int{roll}})
		assert.Equal(t, want, ep.HitCount(fury), "roll %d", roll)
	}

	ep := processor(&scriptedRand{})
	assert.Equal(t, 2, ep.HitCount(&Move{Name: "double-kick", Effects: KnownEffects("double-kick")}))
	assert.Equal(t, 3, ep.HitCount(&Move{Name: "triple-kick", Effects: KnownEffects("triple-kick")}))
	assert.Equal(t, 1, ep.HitCount(tackle()))
}

func TestApplyStatChanges(t *testing.T) {
	att := combatant("a", []string{"normal"}, flatStats(100, 50))
	def := combatant("d", []string{"normal"}, flatStats(100, 50))
	m := &Move{Name: "m", Effects: []MoveEffect{
		{Kind: EffectStatChange, Chance: 1, Stat: StatDefense, Stages: -1},
		{Kind: EffectStatChange, Chance: 1, Stat: StatAttack, Stages: 2, OnSelf: true},
	}}

	msgs := processor(&scriptedRand{}).Apply(m, att, def, 0)
	assert.Equal(t, []string{"d's Defense fell!", "a's Attack rose sharply!"}, msgs)
	assert.Equal(t, -1, def.Stages.Get(StatDefense))
	assert.Equal(t, 2, att.Stages.Get(StatAttack))

	att.Stages.Modify(StatAttack, 6)
	msgs = processor(&scriptedRand{}).Apply(m, att, def, 0)
	assert.Equal(t, "a's Attack won't go any higher!", msgs[1])
}

func TestApplySkipsFailedRolls(t *testing.T) {
	att := combatant("a", []string{"normal"}, flatStats(100, 50))
	def := combatant("d", []string{"normal"}, flatStats(100, 50))
	m := &Move{Name: "m", Effects: []MoveEffect{{Kind: EffectStatChange, Chance: 0.1, Stat: StatSpeed, Stages: -1}}}

	msgs := processor(&scriptedRand{floats: []float64{0.5}}).Apply(m, att, def, 0)
	assert.Empty(t, msgs)
	assert.Equal(t, 0, def.Stages.Get(StatSpeed))
}

func TestApplyHealing(t *testing.T) {
	att := combatant("a", []string{"normal"}, flatStats(100, 50))
	def := combatant("d", []string{"normal"}, flatStats(100, 50))
	heal := &Move{Name: "recover", Category: StatusMove, Effects: KnownEffects("recover")}

	msgs := processor(&scriptedRand{}).Apply(heal, att, def, 0)
	assert.Equal(t, []string{"a's HP is full!"}, msgs)

	att.HP = 40
	msgs = processor(&scriptedRand{}).Apply(heal, att, def, 0)
	assert.Equal(t, []string{"a recovered 50 HP!"}, msgs)
	assert.Equal(t, 90, att.HP)

	att.HP = 10
	att.Major = &Status{Kind: Burn, Duration: Indefinite}
	rest := &Move{Name: "rest", Category: StatusMove, Effects: KnownEffects("rest")}
	msgs = processor(&scriptedRand{}).Apply(rest, att, def, 0)
	assert.Equal(t, 100, att.HP)
	assert.Nil(t, att.Major)
	assert.Equal(t, []string{"a recovered 90 HP!", "a's burn was healed!"}, msgs)
}

func TestApplyDrain(t *testing.T) {
	att := combatant("a", []string{"grass"}, flatStats(100, 50))
	att.HP = 50
	def := combatant("d", []string{"water"}, flatStats(100, 50))
	giga := &Move{Name: "giga-drain", Power: 75, Effects: KnownEffects("giga-drain")}

	msgs := processor(&scriptedRand{}).Apply(giga, att, def, 30)
	assert.Equal(t, []string{"a drained 15 HP!"}, msgs)
	assert.Equal(t, 65, att.HP)

	msgs = processor(&scriptedRand{}).Apply(giga, att, def, 0)
	assert.Empty(t, msgs)
}

func TestApplyWeather(t *testing.T) {
	att := combatant("a", []string{"fire"}, flatStats(100, 50))
	def := combatant("d", []string{"water"}, flatStats(100, 50))
	sunny := &Move{Name: "sunny-day", Category: StatusMove, Effects: KnownEffects("sunny-day")}

	ep := processor(&scriptedRand{})
	msgs := ep.Apply(sunny, att, def, 0)
	assert.Equal(t, []string{"The weather changed to harsh sunlight!"}, msgs)
	assert.Equal(t, WeatherSun, ep.Field.Weather)
	assert.Equal(t, 5, ep.Field.Turns)

	msgs = ep.Apply(sunny, att, def, 0)
	assert.Equal(t, []string{"But it failed!"}, msgs)
}

func TestApplyFlinchIsSilent(t *testing.T) {
	att := combatant("a", []string{"dark"}, flatStats(100, 50))
	def := combatant("d", []string{"normal"}, flatStats(100, 50))
	fakeOut := &Move{Name: "fake-out", Power: 40, Effects: KnownEffects("fake-out")}

	msgs := processor(&scriptedRand{}).Apply(fakeOut, att, def, 10)
	assert.Empty(t, msgs)
	require.NotNil(t, def.Volatile)
	assert.Equal(t, Flinch, def.Volatile.Kind)
}

func TestFieldLifecycle(t *testing.T) {
	f := NewField(2)
	assert.False(t, f.Active())
	_, ok := f.Set(WeatherSandstorm)
	require.True(t, ok)

	rock := combatant("r", []string{"rock"}, flatStats(160, 50))
	bug := combatant("b", []string{"bug"}, flatStats(160, 50))
	assert.Empty(t, f.Buffet(rock))
	assert.Equal(t, "b is buffeted by the sandstorm! (10 damage)", f.Buffet(bug))

	assert.Empty(t, f.Tick())
	assert.Equal(t, "The sandstorm stopped!", f.Tick())
	assert.False(t, f.Active())
	assert.Empty(t, f.Buffet(bug))
}

func TestKnownEffects(t *testing.T) {
	assert.Empty(t, KnownEffects("tackle"))

	ohko := KnownEffects("fissure")
	require.Len(t, ohko, 1)
	assert.Equal(t, EffectOHKO, ohko[0].Kind)

	bite := KnownEffects("bite")
	require.Len(t, bite, 1)
	assert.Equal(t, EffectFlinch, bite[0].Kind)
	assert.Equal(t, 0.3, bite[0].Chance)
}
