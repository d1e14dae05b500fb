package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	SourceStatic  = "static"
	SourcePokeAPI = "pokeapi"
)

// Settings holds process-level knobs read from the environment. Battle rules
// live in the YAML data directory instead.
type Settings struct {
	DataSource     string
	AssetsDir      string
	PokeAPIBaseURL string
	CacheDBPath    string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	MaxTurns       int
	Workers        int
}

func LoadSettings(logger zerolog.Logger) *Settings {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	s := &Settings{
		DataSource:     getEnv("DATA_SOURCE", SourceStatic),
		AssetsDir:      getEnv("ASSETS_DIR", "assets"),
		PokeAPIBaseURL: getEnv("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2"),
		CacheDBPath:    getEnv("CACHE_DB_PATH", "pokecache.db"),
		CacheTTL:       getDuration("CACHE_TTL", time.Hour),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MaxTurns:       getInt("MAX_BATTLE_TURNS", 0),
		Workers:        getInt("SIM_WORKERS", 8),
	}
	if s.DataSource != SourceStatic && s.DataSource != SourcePokeAPI {
		logger.Warn().Str("data_source", s.DataSource).Msg("unknown data source, falling back to static")
		s.DataSource = SourceStatic
	}

	logger.Debug().
		Str("data_source", s.DataSource).
		Str("assets_dir", s.AssetsDir).
		Str("cache_db_path", s.CacheDBPath).
		Dur("cache_ttl", s.CacheTTL).
		Int("workers", s.Workers).
		Msg("settings loaded")

	return s
}

// ApplyTo lets MAX_BATTLE_TURNS override the rules file.
func (s *Settings) ApplyTo(r *RulesConfig) {
	if s.MaxTurns > 0 {
		r.MaxTurns = s.MaxTurns
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
