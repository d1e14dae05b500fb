package combat

import (
	"fmt"
	"strings"
)

type Weather int

const (
	WeatherClear Weather = iota
	WeatherSun
	WeatherRain
	WeatherSandstorm
	WeatherHail
)

func (w Weather) String() string {
	switch w {
	case WeatherSun:
		return "harsh sunlight"
	case WeatherRain:
		return "rain"
	case WeatherSandstorm:
		return "sandstorm"
	case WeatherHail:
		return "hail"
	}
	return "clear"
}

func ParseWeather(s string) (Weather, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "sun", "sunny", "sunny-day", "harsh-sunlight":
		return WeatherSun, true
	case "rain", "rain-dance":
		return WeatherRain, true
	case "sandstorm", "sand":
		return WeatherSandstorm, true
	case "hail":
		return WeatherHail, true
	}
	return WeatherClear, false
}

func (w Weather) boostNote(mod float64) string {
	if mod > 1 {
		return fmt.Sprintf("The %s strengthened the attack!", w)
	}
	return fmt.Sprintf("The %s weakened the attack!", w)
}

// weatherImmune lists the types untouched by each damaging weather.
var weatherImmune = map[Weather][]string{
	WeatherSandstorm: {"rock", "ground", "steel"},
	WeatherHail:      {"ice"},
}

// Field is the weather shared by both sides. It counts down once per turn.
type Field struct {
	Weather  Weather
	Turns    int
	Duration int
}

func NewField(duration int) *Field {
	if duration <= 0 {
		duration = 5
	}
	return &Field{Duration: duration}
}

// Set starts w for the configured number of turns. Re-setting the active
// weather fails.
func (f *Field) Set(w Weather) (string, bool) {
	if w == WeatherClear || (f.Weather == w && f.Turns > 0) {
		return "But it failed!", false
	}
	f.Weather = w
	f.Turns = f.Duration
	return fmt.Sprintf("The weather changed to %s!", w), true
}

func (f *Field) Active() bool { return f.Weather != WeatherClear && f.Turns > 0 }

// Modifier scales fire and water moves under sun and rain.
func (f *Field) Modifier(moveType string) float64 {
	if !f.Active() {
		return 1
	}
	switch f.Weather {
	case WeatherSun:
		switch moveType {
		case "fire":
			return 1.5
		case "water":
			return 0.5
		}
	case WeatherRain:
		switch moveType {
		case "water":
			return 1.5
		case "fire":
			return 0.5
		}
	}
	return 1
}

// Buffet applies end-of-turn weather damage to c.
func (f *Field) Buffet(c *Combatant) string {
	if !f.Active() || c.Fainted() {
		return ""
	}
	immune, ok := weatherImmune[f.Weather]
	if !ok {
		return ""
	}
	for _, t := range immune {
		if c.HasType(t) {
			return ""
		}
	}
	dmg := c.TakeDamage(maxInt(1, c.MaxHP/16))
	return fmt.Sprintf("%s is buffeted by the %s! (%d damage)", c.Name(), f.Weather, dmg)
}

// Tick counts the weather down and reports when it ends.
func (f *Field) Tick() string {
	if !f.Active() {
		return ""
	}
	f.Turns--
	if f.Turns > 0 {
		return ""
	}
	ended := f.Weather
	f.Weather = WeatherClear
	return fmt.Sprintf("The %s stopped!", ended)
}
