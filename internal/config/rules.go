package config

type RulesConfig struct {
	MaxTurns          int     `yaml:"max_turns"`
	Level             int     `yaml:"level"`
	CritChance        float64 `yaml:"crit_chance"`
	CritMultiplier    float64 `yaml:"crit_multiplier"`
	PreferredBias     float64 `yaml:"preferred_bias"`
	MovesPerCombatant int     `yaml:"moves_per_combatant"`
	WeatherTurns      int     `yaml:"weather_turns"`
	Note              string  `yaml:"note"`
}

func DefaultRules() *RulesConfig {
	return &RulesConfig{
		MaxTurns:          50,
		Level:             50,
		CritChance:        1.0 / 16.0,
		CritMultiplier:    1.5,
		PreferredBias:     0.7,
		MovesPerCombatant: 4,
		WeatherTurns:      5,
	}
}

// normalize replaces zero or out-of-range values left by a partial file.
func (r *RulesConfig) normalize() {
	d := DefaultRules()
	if r.MaxTurns <= 0 {
		r.MaxTurns = d.MaxTurns
	}
	if r.Level <= 0 {
		r.Level = d.Level
	}
	if r.CritChance < 0 || r.CritChance > 1 {
		r.CritChance = d.CritChance
	}
	if r.CritMultiplier < 1 {
		r.CritMultiplier = d.CritMultiplier
	}
	if r.PreferredBias < 0 || r.PreferredBias > 1 {
		r.PreferredBias = d.PreferredBias
	}
	if r.MovesPerCombatant <= 0 {
		r.MovesPerCombatant = d.MovesPerCombatant
	}
	if r.WeatherTurns <= 0 {
		r.WeatherTurns = d.WeatherTurns
	}
}
