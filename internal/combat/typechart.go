package combat

import (
	"strings"

	"battlesim/internal/config"
)

// TypeNeutral is the type of struggle and of stand-in moves. It has no chart
// entries, so it is neutral against everything and never earns STAB.
const TypeNeutral = "typeless"

// TypeChart maps attacking type -> defending type -> multiplier. Pairs that
// are not listed are neutral.
type TypeChart map[string]map[string]float64

var defaultChart = map[string]map[string]float64{
	"fire":     {"grass": 2, "ice": 2, "bug": 2, "steel": 2, "water": 0.5, "fire": 0.5, "rock": 0.5, "dragon": 0.5},
	"water":    {"fire": 2, "ground": 2, "rock": 2, "water": 0.5, "grass": 0.5, "dragon": 0.5},
	"grass":    {"water": 2, "ground": 2, "rock": 2, "fire": 0.5, "grass": 0.5, "poison": 0.5, "flying": 0.5, "bug": 0.5, "dragon": 0.5, "steel": 0.5},
	"electric": {"water": 2, "flying": 2, "electric": 0.5, "grass": 0.5, "ground": 0, "dragon": 0.5},
	"psychic":  {"fighting": 2, "poison": 2, "psychic": 0.5, "steel": 0.5, "dark": 0},
	"ice":      {"grass": 2, "ground": 2, "flying": 2, "dragon": 2, "fire": 0.5, "water": 0.5, "ice": 0.5, "steel": 0.5},
	"dragon":   {"dragon": 2, "steel": 0.5, "fairy": 0},
	"dark":     {"psychic": 2, "ghost": 2, "fighting": 0.5, "dark": 0.5, "fairy": 0.5},
	"fairy":    {"fighting": 2, "dragon": 2, "dark": 2, "fire": 0.5, "poison": 0.5, "steel": 0.5},
	"normal":   {"rock": 0.5, "ghost": 0, "steel": 0.5},
	"fighting": {"normal": 2, "ice": 2, "rock": 2, "dark": 2, "steel": 2, "poison": 0.5, "flying": 0.5, "psychic": 0.5, "bug": 0.5, "fairy": 0.5, "ghost": 0},
	"poison":   {"grass": 2, "fairy": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5, "steel": 0},
	"ground":   {"fire": 2, "electric": 2, "poison": 2, "rock": 2, "steel": 2, "grass": 0.5, "bug": 0.5, "flying": 0},
	"flying":   {"electric": 0.5, "ice": 0.5, "rock": 0.5, "steel": 0.5, "grass": 2, "fighting": 2, "bug": 2},
	"bug":      {"grass": 2, "psychic": 2, "dark": 2, "fire": 0.5, "fighting": 0.5, "poison": 0.5, "flying": 0.5, "ghost": 0.5, "steel": 0.5, "fairy": 0.5},
	"rock":     {"fire": 2, "ice": 2, "flying": 2, "bug": 2, "fighting": 0.5, "ground": 0.5, "steel": 0.5},
	"ghost":    {"psychic": 2, "ghost": 2, "dark": 0.5, "normal": 0},
	"steel":    {"ice": 2, "rock": 2, "fairy": 2, "fire": 0.5, "water": 0.5, "electric": 0.5, "steel": 0.5},
}

// DefaultTypeChart returns a private copy of the built-in chart.
func DefaultTypeChart() TypeChart {
	tc := TypeChart{}
	for atk, row := range defaultChart {
		tc[atk] = map[string]float64{}
		for def, v := range row {
			tc[atk][def] = v
		}
	}
	return tc
}

// NewTypeChart starts from the built-in chart and lets cfg override whole
// rows: a configured attacking type replaces its built-in row entirely.
func NewTypeChart(cfg *config.TypeChartConfig) TypeChart {
	tc := DefaultTypeChart()
	if cfg == nil {
		return tc
	}
	for _, td := range cfg.Types {
		atk := normType(td.ID)
		if atk == "" {
			continue
		}
		row := map[string]float64{}
		for _, d := range td.Strong {
			row[normType(d)] = 2
		}
		for _, d := range td.Weak {
			row[normType(d)] = 0.5
		}
		for _, d := range td.Immune {
			row[normType(d)] = 0
		}
		tc[atk] = row
	}
	return tc
}

// Multiplier is the single-pair lookup.
func (tc TypeChart) Multiplier(atk, def string) float64 {
	if row, ok := tc[atk]; ok {
		if v, ok := row[def]; ok {
			return v
		}
	}
	return 1
}

// Effectiveness multiplies the pairwise factors over every defending type.
func (tc TypeChart) Effectiveness(atk string, defend []string) float64 {
	m := 1.0
	for _, d := range defend {
		m *= tc.Multiplier(atk, d)
	}
	return m
}

func normType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
