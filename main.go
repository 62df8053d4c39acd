package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rps/config"
	"rps/engine"
	"rps/experiments"
	"rps/game"
	"rps/searcher"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	experiment := flag.String("experiment", "", "run an experiment instead of a match: strategy_ladder or minimax_parallelism")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	setLogLevel(cfg.LogLevel)

	switch *experiment {
	case "":
	case "strategy_ladder":
		experiments.RunStrategyLadder()
		return
	case "minimax_parallelism":
		experiments.RunMinimaxParallelism()
		return
	default:
		log.Fatal().Str("experiment", *experiment).Msg("unknown experiment")
	}

	wins := map[int]int{}
	draws := 0
	for i := 0; i < cfg.Match.Games; i++ {
		winner := runGame(cfg, int64(i+1))
		if winner == 0 {
			draws++
		} else {
			wins[winner]++
		}
	}

	event := log.Info().Int("games", cfg.Match.Games).Int("draws", draws)
	for player, count := range wins {
		event = event.Int(cfg.Match.Strategies[(player-1)%len(cfg.Match.Strategies)], count)
	}
	event.Msg("match finished")
}

func runGame(cfg *config.Config, seed int64) int {
	gameCfg := game.Config{
		BoardSize:     cfg.Game.BoardSize,
		PiecesPerType: cfg.Game.PiecesPerType,
		TurnSeconds:   cfg.Game.TurnSeconds,
		Seed:          cfg.Game.Seed,
	}
	if gameCfg.Seed == 0 {
		gameCfg.Seed = seed
	}

	state, err := game.NewGameState(gameCfg, cfg.Match.Players)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game configuration")
	}

	agents := map[int]searcher.Strategy{}
	for _, p := range state.Players {
		name := cfg.Match.Strategies[(p.ID-1)%len(cfg.Match.Strategies)]
		agent, err := searcher.NewStrategy(searcher.AgentConfig{
			Name:       name,
			Depth:      cfg.Match.Depth,
			Goroutines: cfg.Match.Goroutines,
			Seed:       uint64(seed),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("invalid strategy configuration")
		}
		agents[p.ID] = agent
	}

	e, err := engine.LocalEngine(state, agents)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build engine")
	}
	winner, _ := e.Run()
	return winner
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
