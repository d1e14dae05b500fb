package config

type SpeciesConfig struct {
	Species []SpeciesDef `yaml:"species"`
}

type SpeciesDef struct {
	ID        int      `yaml:"id"`
	Name      string   `yaml:"name"`
	Types     []string `yaml:"types"`
	Stats     StatsDef `yaml:"stats"`
	Moves     []string `yaml:"moves"`
	Abilities []string `yaml:"abilities"`
	Note      string   `yaml:"note"`
}

type StatsDef struct {
	HP        int `yaml:"hp"`
	Attack    int `yaml:"attack"`
	Defense   int `yaml:"defense"`
	SpAttack  int `yaml:"special_attack"`
	SpDefense int `yaml:"special_defense"`
	Speed     int `yaml:"speed"`
}
