package config

type MovesConfig struct {
	Moves []MoveDef `yaml:"moves"`
}

type MoveDef struct {
	Name         string      `yaml:"name"`
	Type         string      `yaml:"type"`
	Category     string      `yaml:"category"`
	Power        int         `yaml:"power"`
	Accuracy     int         `yaml:"accuracy"`
	PP           int         `yaml:"pp"`
	Priority     int         `yaml:"priority"`
	Status       string      `yaml:"status"`
	StatusChance float64     `yaml:"status_chance"`
	Effects      []EffectDef `yaml:"effects"`
	Note         string      `yaml:"note"`
}

// EffectDef is a secondary move effect. Type selects which of the other
// fields apply: stat_change (stat, stages, target), heal and drain (percent),
// multi_hit (hits or min_hits/max_hits), weather (weather), flinch, ohko.
type EffectDef struct {
	Type    string  `yaml:"type"`
	Chance  float64 `yaml:"chance"`
	Stat    string  `yaml:"stat"`
	Stages  int     `yaml:"stages"`
	Target  string  `yaml:"target"`
	Percent int     `yaml:"percent"`
	Hits    int     `yaml:"hits"`
	MinHits int     `yaml:"min_hits"`
	MaxHits int     `yaml:"max_hits"`
	Weather string  `yaml:"weather"`
}
