package combat

import "strings"

const (
	MinStage = -6
	MaxStage = 6
)

// Stat names a stage-able stat. HP has no stage and is not listed.
type Stat int

const (
	StatAttack Stat = iota
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatAccuracy
	StatEvasion
	numStats
)

var statNames = [numStats]string{"Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed", "accuracy", "evasiveness"}

func (s Stat) String() string {
	if s < 0 || s >= numStats {
		return "unknown"
	}
	return statNames[s]
}

// ParseStat accepts the hyphenated, underscored and short forms used by data
// sources ("special-attack", "special_attack", "spa").
func ParseStat(name string) (Stat, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "attack", "atk":
		return StatAttack, true
	case "defense", "def":
		return StatDefense, true
	case "special-attack", "spa", "sp-atk":
		return StatSpAttack, true
	case "special-defense", "spd", "sp-def":
		return StatSpDefense, true
	case "speed", "spe":
		return StatSpeed, true
	case "accuracy":
		return StatAccuracy, true
	case "evasion":
		return StatEvasion, true
	}
	return 0, false
}

type BaseStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"special_attack"`
	SpDefense int `json:"special_defense"`
	Speed     int `json:"speed"`
}

// Get returns the stat value for s. Accuracy and evasion have no base value
// and report 0.
func (b BaseStats) Get(s Stat) int {
	switch s {
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpAttack:
		return b.SpAttack
	case StatSpDefense:
		return b.SpDefense
	case StatSpeed:
		return b.Speed
	}
	return 0
}

// Stages holds one bounded counter per stat.
type Stages [numStats]int

func (st *Stages) Get(s Stat) int {
	if s < 0 || s >= numStats {
		return 0
	}
	return st[s]
}

// Modify adds delta to the stage of s, clamped to [MinStage, MaxStage], and
// reports whether the stored value changed.
func (st *Stages) Modify(s Stat, delta int) bool {
	if s < 0 || s >= numStats {
		return false
	}
	next := clampInt(st[s]+delta, MinStage, MaxStage)
	if next == st[s] {
		return false
	}
	st[s] = next
	return true
}

func (st *Stages) Reset() { *st = Stages{} }

// StageMultiplier is (2+n)/2 for n >= 0 and 2/(2-n) otherwise.
func StageMultiplier(stage int) float64 {
	stage = clampInt(stage, MinStage, MaxStage)
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// ApplyStage scales a stat by its stage multiplier, never below 1.
func ApplyStage(base, stage int) int {
	v := int(float64(base) * StageMultiplier(stage))
	if v < 1 {
		return 1
	}
	return v
}

// AccuracyMultiplier uses the 3-based table on the difference between the
// attacker's accuracy stage and the defender's evasion stage. The difference
// spans -12..+12 since each side is bounded separately.
func AccuracyMultiplier(diff int) float64 {
	if diff >= 0 {
		return float64(3+diff) / 3
	}
	return 3 / float64(3-diff)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
