package combat

import "encoding/json"

// DrawName fills both winner and loser when nobody wins.
const DrawName = "Draw"

type LogEntry struct {
	Turn    int    `json:"turn"`
	Message string `json:"message"`
}

// Event is the structured twin of a log line, kept only when a battle is
// recorded.
type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Result struct {
	BattleID   string     `json:"battle_id,omitempty"`
	Winner     string     `json:"winner"`
	Loser      string     `json:"loser"`
	TotalTurns int        `json:"total_turns"`
	TimedOut   bool       `json:"timed_out,omitempty"`
	Log        []LogEntry `json:"log"`
	Events     []Event    `json:"events,omitempty"`
	Meta       ResultMeta `json:"meta"`
}

func (r *Result) Draw() bool { return r.Winner == DrawName }

type ResultMeta struct {
	Combatants []CombatantMeta `json:"combatants"`
	Notes      []string        `json:"notes,omitempty"`
}

type CombatantMeta struct {
	Name    string   `json:"name"`
	Types   []string `json:"types"`
	MaxHP   int      `json:"max_hp"`
	FinalHP int      `json:"final_hp"`
	Speed   int      `json:"speed"`
	Moves   []string `json:"moves"`
	Status  string   `json:"status,omitempty"`
}

func metaOf(c *Combatant) CombatantMeta {
	m := CombatantMeta{
		Name:    c.Name(),
		Types:   append([]string(nil), c.Types()...),
		MaxHP:   c.MaxHP,
		FinalHP: c.HP,
		Speed:   c.Stats.Speed,
		Status:  c.statusName(),
	}
	for _, mv := range c.Moves {
		m.Moves = append(m.Moves, mv.Name)
	}
	return m
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
