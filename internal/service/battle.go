package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"battlesim/internal/combat"
	"battlesim/internal/config"
	"battlesim/internal/constants"
	"battlesim/internal/dex"
	"battlesim/internal/util"
)

// BattleService resolves combatants through the configured providers and
// runs battles on them. Resolution is the only step that may block; once a
// matchup is prepared every battle runs on its own combatants and random
// source, so batches fan out freely.
type BattleService struct {
	species combat.SpeciesProvider
	moves   combat.MoveProvider
	rules   *config.RulesConfig
	chart   combat.TypeChart
	workers int
	logger  zerolog.Logger
}

func NewBattleService(
	species combat.SpeciesProvider,
	moves combat.MoveProvider,
	rules *config.RulesConfig,
	chart combat.TypeChart,
	settings *config.Settings,
	logger zerolog.Logger,
) *BattleService {
	workers := constants.DefaultWorkers
	if settings != nil && settings.Workers > 0 {
		workers = settings.Workers
	}
	if rules == nil {
		rules = config.DefaultRules()
	}
	return &BattleService{
		species: species,
		moves:   moves,
		rules:   rules,
		chart:   chart,
		workers: workers,
		logger:  logger,
	}
}

type Request struct {
	A, B   string
	Seed   int64
	Record bool
}

// Side is one resolved participant: the species and the move set it will
// fight with.
type Side struct {
	Species *combat.Species
	Moves   []*combat.Move
}

type Matchup struct {
	A, B Side
}

func (m *Matchup) String() string {
	return fmt.Sprintf("%s vs %s", dex.DisplayName(m.A.Species.Name), dex.DisplayName(m.B.Species.Name))
}

// Prepare resolves both sides concurrently. Each side keeps the first
// MovesPerCombatant moves of its learnset.
func (s *BattleService) Prepare(ctx context.Context, a, b string) (*Matchup, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ResolveTimeout)
	defer cancel()

	var m Matchup
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		side, err := s.resolve(gCtx, a)
		m.A = side
		return err
	})
	g.Go(func() error {
		side, err := s.resolve(gCtx, b)
		m.B = side
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *BattleService) resolve(ctx context.Context, id string) (Side, error) {
	sp, err := s.species.GetSpecies(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("species", id).Msg("failed to resolve species")
		return Side{}, fmt.Errorf("resolve %q: %w", id, err)
	}

	names := sp.Moves
	if len(names) > s.rules.MovesPerCombatant {
		names = names[:s.rules.MovesPerCombatant]
	}
	moves := make([]*combat.Move, len(names))
	g, gCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			moves[i] = s.moves.GetMove(gCtx, name)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Debug().Str("species", sp.Name).Int("moves", len(moves)).Msg("side resolved")
	return Side{Species: sp, Moves: moves}, nil
}

// Simulate resolves the request and plays one battle.
func (s *BattleService) Simulate(ctx context.Context, req Request) (*combat.Result, error) {
	m, err := s.Prepare(ctx, req.A, req.B)
	if err != nil {
		return nil, err
	}
	res := s.Run(m, req.Seed, req.Record)
	return &res, nil
}

// Run plays one battle of a prepared matchup with fresh combatants.
func (s *BattleService) Run(m *Matchup, seed int64, record bool) combat.Result {
	res, _ := s.run(m, seed, record)
	s.logger.Info().
		Str("battle_id", res.BattleID).
		Str("a", m.A.Species.Name).
		Str("b", m.B.Species.Name).
		Int64("seed", seed).
		Str("winner", res.Winner).
		Int("turns", res.TotalTurns).
		Msg("battle finished")
	return res
}

// run also reports which side won: 0 for A, 1 for B, -1 for a draw. Names
// alone cannot tell a mirror match apart.
func (s *BattleService) run(m *Matchup, seed int64, record bool) (combat.Result, int) {
	a := combat.NewCombatant(m.A.Species, m.A.Moves)
	b := combat.NewCombatant(m.B.Species, m.B.Moves)
	battle := combat.New(a, b, s.chart, util.New(seed), s.rules)
	battle.ID = uuid.NewString()
	battle.Record = record
	res := battle.Run()

	side := -1
	switch {
	case res.Draw():
	case b.Fainted() && !a.Fainted(), !b.Fainted() && !a.Fainted() && a.HP > b.HP:
		side = 0
	default:
		side = 1
	}
	return res, side
}

type Summary struct {
	Matchup  string  `json:"matchup"`
	Runs     int     `json:"runs"`
	Seed     int64   `json:"seed"`
	WinsA    int     `json:"wins_a"`
	WinsB    int     `json:"wins_b"`
	Draws    int     `json:"draws"`
	TimeOuts int     `json:"timeouts"`
	WinRateA float64 `json:"win_rate_a"`
	AvgTurns float64 `json:"avg_turns"`
	MinTurns int     `json:"min_turns"`
	MaxTurns int     `json:"max_turns"`
}

// SimulateMany runs n battles of one matchup over a bounded worker pool.
// Run i uses util.Derive(req.Seed, i), so totals do not depend on the worker
// count.
func (s *BattleService) SimulateMany(ctx context.Context, req Request, n int) (*Summary, error) {
	if n <= 0 || n > constants.MaxBatchRuns {
		return nil, fmt.Errorf("batch size %d out of range [1, %d]", n, constants.MaxBatchRuns)
	}
	m, err := s.Prepare(ctx, req.A, req.B)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Matchup: m.String(), Runs: n, Seed: req.Seed}
	var mu sync.Mutex
	totalTurns := 0

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, side := s.run(m, util.Derive(req.Seed, i), false)

			mu.Lock()
			defer mu.Unlock()
			switch side {
			case 0:
				sum.WinsA++
			case 1:
				sum.WinsB++
			default:
				sum.Draws++
			}
			if res.TimedOut {
				sum.TimeOuts++
			}
			totalTurns += res.TotalTurns
			if sum.MinTurns == 0 || res.TotalTurns < sum.MinTurns {
				sum.MinTurns = res.TotalTurns
			}
			if res.TotalTurns > sum.MaxTurns {
				sum.MaxTurns = res.TotalTurns
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	sum.WinRateA = float64(sum.WinsA) / float64(n)
	sum.AvgTurns = float64(totalTurns) / float64(n)
	s.logger.Info().
		Str("matchup", sum.Matchup).
		Int("runs", n).
		Int("wins_a", sum.WinsA).
		Int("wins_b", sum.WinsB).
		Int("draws", sum.Draws).
		Float64("avg_turns", sum.AvgTurns).
		Msg("batch finished")
	return sum, nil
}
