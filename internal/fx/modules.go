package fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"battlesim/internal/combat"
	"battlesim/internal/config"
	"battlesim/internal/database"
	"battlesim/internal/dex"
	"battlesim/internal/logger"
	"battlesim/internal/pokeapi"
	"battlesim/internal/service"
)

func ProvideLogger(settings *config.Settings) zerolog.Logger {
	return logger.New(settings.LogLevel)
}

// Data is everything read from the assets directory.
type Data struct {
	fx.Out

	Rules   *config.RulesConfig
	Chart   combat.TypeChart
	Species *config.SpeciesConfig
	Moves   *config.MovesConfig
}

func ProvideData(settings *config.Settings, logger zerolog.Logger) (Data, error) {
	rules, tc, sc, mc, err := config.LoadAll(settings.AssetsDir)
	if err != nil {
		return Data{}, err
	}
	settings.ApplyTo(rules)
	logger.Debug().
		Str("dir", settings.AssetsDir).
		Int("max_turns", rules.MaxTurns).
		Int("species", len(sc.Species)).
		Int("moves", len(mc.Moves)).
		Msg("battle data loaded")
	return Data{Rules: rules, Chart: combat.NewTypeChart(tc), Species: sc, Moves: mc}, nil
}

type Providers struct {
	fx.Out

	Species combat.SpeciesProvider
	Moves   combat.MoveProvider
}

// ProvideProviders picks the data source. The online source opens the cache
// database and keeps the offline providers as its fallback.
func ProvideProviders(
	lc fx.Lifecycle,
	settings *config.Settings,
	pokedex *dex.Pokedex,
	book *dex.MoveBook,
	logger zerolog.Logger,
) (Providers, error) {
	if settings.DataSource != config.SourcePokeAPI {
		return Providers{Species: pokedex, Moves: book}, nil
	}

	db, err := database.New(settings, logger)
	if err != nil {
		return Providers{}, err
	}
	store := database.NewCacheStore(db, settings, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := store.Purge(ctx)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing cache database")
			}
			return nil
		},
	})

	p := pokeapi.NewProvider(pokeapi.NewClient(settings), store, pokedex, book, logger)
	return Providers{Species: p, Moves: p}, nil
}

// Module expects *config.Settings to be supplied by the caller.
var Module = fx.Options(
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideData),
	fx.Provide(dex.NewPokedex),
	fx.Provide(dex.NewMoveBook),
	fx.Provide(ProvideProviders),
	fx.Provide(service.NewBattleService),
)
