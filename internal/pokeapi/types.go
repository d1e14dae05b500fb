package pokeapi

// NamedResource is PokéAPI's {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type PokemonResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Types     []struct {
		Slot int           `json:"slot"`
		Type NamedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     NamedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability NamedResource `json:"ability"`
	} `json:"abilities"`
	Moves []struct {
		Move NamedResource `json:"move"`
	} `json:"moves"`
}

type MoveResponse struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Type          NamedResource `json:"type"`
	DamageClass   NamedResource `json:"damage_class"`
	Power         *int          `json:"power"`
	Accuracy      *int          `json:"accuracy"`
	PP            *int          `json:"pp"`
	Priority      int           `json:"priority"`
	EffectChance  *int          `json:"effect_chance"`
	Target        NamedResource `json:"target"`
	Meta          *MoveMeta     `json:"meta"`
	EffectEntries []struct {
		Effect      string        `json:"effect"`
		ShortEffect string        `json:"short_effect"`
		Language    NamedResource `json:"language"`
	} `json:"effect_entries"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   NamedResource `json:"language"`
	} `json:"flavor_text_entries"`
	StatChanges []struct {
		Change int           `json:"change"`
		Stat   NamedResource `json:"stat"`
	} `json:"stat_changes"`
}

type MoveMeta struct {
	Ailment       NamedResource `json:"ailment"`
	AilmentChance int           `json:"ailment_chance"`
	Category      NamedResource `json:"category"`
	MinHits       *int          `json:"min_hits"`
	MaxHits       *int          `json:"max_hits"`
	Drain         int           `json:"drain"`
	Healing       int           `json:"healing"`
	FlinchChance  int           `json:"flinch_chance"`
	StatChance    int           `json:"stat_chance"`
}
