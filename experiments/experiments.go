package experiments

import (
	"fmt"
	"strings"
	"time"

	"quortex/engine"
	"quortex/experiments/metrics"
	"quortex/game"
	"quortex/searcher"

	"github.com/rs/zerolog/log"
)

// Run plays every matchup of the config and stores the results as CSV.
func Run(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	byID := cfg.agentsByID()

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchup := range cfg.Matchups {
		config1 := byID[matchup[0]]
		config2 := byID[matchup[1]]

		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d...", mi+1, len(cfg.Matchups), config1.ID, config2.ID)

		for i := 0; i < cfg.Games; i++ {
			// Vary the deck per game but keep every game replayable from
			// its recorded seed.
			seed := cfg.Seed + uint64(count)
			start := time.Now()
			result, moves, err := runGame(cfg, config1, config2, seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			end := time.Now()

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        count,
				Agent1:    config1.ID,
				Agent2:    config2.ID,
				Seed:      seed,
				Winners:   strings.Join(result.Winners, "+"),
				WinType:   string(result.WinType),
				Moves:     len(moves),
				StartTime: start,
				EndTime:   end,
				Duration:  end.Sub(start),
			})
			for _, m := range moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:          count,
					Step:          m.Step,
					Player:        m.Player,
					Tile:          m.Tile.String(),
					Position:      m.Position.Key(),
					Rotation:      m.Rotation,
					Score:         m.Score,
					Candidates:    m.Candidates,
					IsReplacement: m.IsReplacement,
					Duration:      m.Duration,
				})
			}

			log.Info().Msgf("completed matchup %d game %d of %d: %s victory for %v in %d moves", mi+1, i+1, cfg.Games, result.WinType, result.Winners, len(moves))
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %d game records and %d move records", len(gameRecords), len(moveRecords))
	return nil
}

// runGame plays one game between two advisor configs and returns the
// result with the move log.
func runGame(cfg Config, config1, config2 metrics.AgentConfig, seed uint64) (game.Result, []engine.MoveLog, error) {
	firstEdge := 0
	secondEdge, ok := searcher.SelectEdge(firstEdge, []int{1, 2, 3, 4, 5})
	if !ok {
		return game.Result{}, nil, fmt.Errorf("no edge available for the second player")
	}
	seats := []engine.Seat{
		{
			Player:  game.Player{ID: "Player1", Color: "teal", Edge: firstEdge, IsAI: true},
			Advisor: searcher.New(searcher.WithGoroutines(config1.Goroutines)),
		},
		{
			Player:  game.Player{ID: "Player2", Color: "coral", Edge: secondEdge, IsAI: true},
			Advisor: searcher.New(searcher.WithGoroutines(config2.Goroutines)),
		},
	}
	e, err := engine.NewLocalEngine(seats,
		engine.WithRadius(cfg.Radius),
		engine.WithSeed(seed),
		engine.WithRules(game.Rules{
			Supermove:          cfg.Supermove,
			SingleSupermove:    cfg.SingleSupermove,
			SupermoveAnyPlayer: cfg.SupermoveAnyPlayer,
		}),
	)
	if err != nil {
		return game.Result{}, nil, err
	}
	return e.Run()
}
