package main

import (
	"os"
	"strconv"

	"quortex/engine"
	"quortex/experiments"
	"quortex/game"
	"quortex/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("QUORTEX_MODE") {
	case "experiments":
		runExperiments()
	default:
		runSelfplay()
	}
}

// runExperiments plays the configured matchups and writes CSV records.
func runExperiments() {
	cfg := experiments.DefaultConfig()
	if path := os.Getenv("QUORTEX_CONFIG"); path != "" {
		loaded, err := experiments.LoadConfig(path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
		cfg = loaded
	}
	cfg.Games = envInt("QUORTEX_GAMES", cfg.Games)
	cfg.Radius = envInt("QUORTEX_RADIUS", cfg.Radius)
	cfg.Seed = uint64(envInt("QUORTEX_SEED", int(cfg.Seed)))
	if err := experiments.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

// runSelfplay plays a single AI-vs-AI game and logs every move.
func runSelfplay() {
	radius := envInt("QUORTEX_RADIUS", 3)
	seed := uint64(envInt("QUORTEX_SEED", 1))
	goroutines := envInt("QUORTEX_GOROUTINES", 1)
	rules := game.Rules{
		Supermove:          envBool("QUORTEX_SUPERMOVE"),
		SingleSupermove:    envBool("QUORTEX_SINGLE_SUPERMOVE"),
		SupermoveAnyPlayer: envBool("QUORTEX_SUPERMOVE_ANY"),
	}

	firstEdge := 0
	secondEdge, ok := searcher.SelectEdge(firstEdge, []int{1, 2, 3, 4, 5})
	if !ok {
		log.Fatal().Msg("no edge available for the second player")
	}
	seats := []engine.Seat{
		{
			Player:  game.Player{ID: "Player1", Color: "teal", Edge: firstEdge, IsAI: true},
			Advisor: searcher.New(searcher.WithGoroutines(goroutines)),
		},
		{
			Player:  game.Player{ID: "Player2", Color: "coral", Edge: secondEdge, IsAI: true},
			Advisor: searcher.New(searcher.WithGoroutines(goroutines)),
		},
	}
	e, err := engine.NewLocalEngine(seats,
		engine.WithRadius(radius),
		engine.WithSeed(seed),
		engine.WithRules(rules),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}
	result, moves, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	if len(result.Winners) == 0 {
		log.Info().Msgf("no winner after %d moves", len(moves))
		return
	}
	log.Info().Msgf("%s victory for %v after %d moves", result.WinType, result.Winners, len(moves))
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Msgf("ignoring malformed %s=%q", name, v)
	}
	return fallback
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
