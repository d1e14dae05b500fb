package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"battlesim/internal/combat"
	"battlesim/internal/config"
	"battlesim/internal/constants"
	"battlesim/internal/dex"
	fxmodules "battlesim/internal/fx"
	"battlesim/internal/logger"
	"battlesim/internal/service"
)

func main() {
	var cfgDir, source, a, b, out string
	var seed int64
	var n int
	var record, list bool
	flag.StringVar(&cfgDir, "config", "", "data dir (default $ASSETS_DIR or assets)")
	flag.StringVar(&source, "source", "", "species/move source: static or pokeapi (default $DATA_SOURCE)")
	flag.StringVar(&a, "a", "pikachu", "first combatant, name or dex number")
	flag.StringVar(&b, "b", "charizard", "second combatant, name or dex number")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch); - for stdout")
	flag.BoolVar(&record, "events", false, "include structured events when n==1")
	flag.BoolVar(&list, "list", false, "list the offline roster and exit")
	flag.Parse()

	settings := config.LoadSettings(logger.New(os.Getenv("LOG_LEVEL")))
	if cfgDir != "" {
		settings.AssetsDir = cfgDir
	}
	if source != "" {
		settings.DataSource = source
	}

	var (
		svc     *service.BattleService
		pokedex *dex.Pokedex
		log     zerolog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Supply(settings),
		fxmodules.Module,
		fx.Populate(&svc, &pokedex, &log),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), constants.ResolveTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	err := run(svc, pokedex, a, b, seed, n, out, record, list)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer stopCancel()
	if stopErr := app.Stop(stopCtx); stopErr != nil {
		log.Warn().Err(stopErr).Msg("shutdown failed")
	}
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

func run(svc *service.BattleService, pokedex *dex.Pokedex, a, b string, seed int64, n int, out string, record, list bool) error {
	ctx := context.Background()

	if list {
		for _, name := range pokedex.Names() {
			sp, _ := pokedex.GetSpecies(ctx, name)
			fmt.Printf("%4d  %-12s %v\n", sp.ID, dex.DisplayName(name), sp.Types)
		}
		return nil
	}

	if n <= 1 {
		res, err := svc.Simulate(ctx, service.Request{A: a, B: b, Seed: seed, Record: record})
		if err != nil {
			return err
		}
		if err := write(out, combat.MarshalPretty(res)); err != nil {
			return err
		}
		if out != "-" {
			fmt.Printf("Single battle finished. Winner=%s, Turns=%d -> %s\n", res.Winner, res.TotalTurns, out)
		}
		return nil
	}

	sum, err := svc.SimulateMany(ctx, service.Request{A: a, B: b, Seed: seed}, n)
	if err != nil {
		return err
	}
	if err := write(out, combat.MarshalPretty(sum)); err != nil {
		return err
	}
	if out != "-" {
		fmt.Printf("Batch %d done. %s: %d/%d/%d (A/B/draw) -> %s\n", n, sum.Matchup, sum.WinsA, sum.WinsB, sum.Draws, out)
	}
	return nil
}

func write(out string, b []byte) error {
	if out == "-" {
		_, err := os.Stdout.Write(append(b, '\n'))
		return err
	}
	if err := os.WriteFile(out, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
