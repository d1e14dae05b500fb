package combat

// Secondary effects for well-known moves whose data rarely spells them out.
// Providers consult KnownEffects when their source lists none.

var multiHit = map[string]MoveEffect{
	"fury-swipes":  {Kind: EffectMultiHit, Chance: 1, MinHits: 2, MaxHits: 5},
	"pin-missile":  {Kind: EffectMultiHit, Chance: 1, MinHits: 2, MaxHits: 5},
	"spike-cannon": {Kind: EffectMultiHit, Chance: 1, MinHits: 2, MaxHits: 5},
	"double-slap":  {Kind: EffectMultiHit, Chance: 1, MinHits: 2, MaxHits: 5},
	"double-kick":  {Kind: EffectMultiHit, Chance: 1, MinHits: 2, MaxHits: 2},
	"triple-kick":  {Kind: EffectMultiHit, Chance: 1, MinHits: 3, MaxHits: 3},
}

var weatherMoves = map[string]Weather{
	"sunny-day":  WeatherSun,
	"rain-dance": WeatherRain,
	"sandstorm":  WeatherSandstorm,
	"hail":       WeatherHail,
}

var healingMoves = map[string]MoveEffect{
	"recover":     {Kind: EffectHeal, Chance: 1, Percent: 50},
	"soft-boiled": {Kind: EffectHeal, Chance: 1, Percent: 50},
	"rest":        {Kind: EffectHeal, Chance: 1, Percent: 100},
	"absorb":      {Kind: EffectDrain, Chance: 1, Percent: 50},
	"mega-drain":  {Kind: EffectDrain, Chance: 1, Percent: 50},
	"giga-drain":  {Kind: EffectDrain, Chance: 1, Percent: 50},
}

var ohkoMoves = map[string]bool{
	"fissure":    true,
	"guillotine": true,
	"horn-drill": true,
	"sheer-cold": true,
}

var flinchChance = map[string]float64{
	"air-slash":    0.3,
	"bite":         0.3,
	"dark-pulse":   0.2,
	"extrasensory": 0.1,
	"fake-out":     1.0,
	"fire-fang":    0.1,
	"headbutt":     0.3,
	"hyper-fang":   0.1,
	"ice-fang":     0.1,
	"iron-head":    0.3,
	"needle-arm":   0.3,
	"rock-slide":   0.3,
	"sky-attack":   0.3,
	"snore":        0.3,
	"stomp":        0.3,
	"thunder-fang": 0.1,
	"twister":      0.2,
	"waterfall":    0.2,
	"zen-headbutt": 0.2,
}

// KnownEffects returns the catalogued secondary effects for a move name.
func KnownEffects(name string) []MoveEffect {
	var out []MoveEffect
	if ef, ok := multiHit[name]; ok {
		out = append(out, ef)
	}
	if w, ok := weatherMoves[name]; ok {
		out = append(out, MoveEffect{Kind: EffectWeather, Chance: 1, Weather: w})
	}
	if ef, ok := healingMoves[name]; ok {
		out = append(out, ef)
	}
	if ohkoMoves[name] {
		out = append(out, MoveEffect{Kind: EffectOHKO, Chance: 0.3})
	}
	if p, ok := flinchChance[name]; ok {
		out = append(out, MoveEffect{Kind: EffectFlinch, Chance: p})
	}
	return out
}
