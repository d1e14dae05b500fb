package config

type TypeChartConfig struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef lists the defending types an attacking type hits for 2x, 0.5x and 0x.
type TypeDef struct {
	ID     string   `yaml:"id"`
	Strong []string `yaml:"strong"`
	Weak   []string `yaml:"weak"`
	Immune []string `yaml:"immune"`
}
