package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"rps/engine"
	"rps/experiments/metrics"
	"rps/game"
	"rps/searcher"
)

const NumGames = 30 // Per matchup

var ladderConfigs = []metrics.StrategyConfig{
	{ID: 1, AgentConfig: searcher.AgentConfig{Name: "random", Seed: 1}},
	{ID: 2, AgentConfig: searcher.AgentConfig{Name: "basic", Seed: 1}},
	{ID: 3, AgentConfig: searcher.AgentConfig{Name: "advanced"}},
	{ID: 4, AgentConfig: searcher.AgentConfig{Name: "minimax", Depth: 2}},
}

// RunStrategyLadder pits each strategy against the next stronger one.
func RunStrategyLadder() {
	matchUps := [][2]metrics.StrategyConfig{}
	for i := 0; i < len(ladderConfigs)-1; i++ {
		matchUps = append(matchUps, [2]metrics.StrategyConfig{ladderConfigs[i], ladderConfigs[i+1]})
	}
	runExperiment("strategy_ladder", ladderConfigs, matchUps)
}

// RunMinimaxParallelism pairs the sequential minimax against parallel
// variants; the chosen moves must match, so win rates should stay flat
// while search time drops.
func RunMinimaxParallelism() {
	baseline := metrics.StrategyConfig{ID: 0, AgentConfig: searcher.AgentConfig{Name: "minimax", Depth: 2, Goroutines: 1}}
	parallel := []metrics.StrategyConfig{
		{ID: 1, AgentConfig: searcher.AgentConfig{Name: "minimax", Depth: 2, Goroutines: 4}},
		{ID: 2, AgentConfig: searcher.AgentConfig{Name: "minimax", Depth: 2, Goroutines: 8}},
	}
	matchUps := [][2]metrics.StrategyConfig{}
	for _, config := range parallel {
		matchUps = append(matchUps, [2]metrics.StrategyConfig{baseline, config})
	}
	runExperiment("minimax_parallelism", append(parallel, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.StrategyConfig, matchUps [][2]metrics.StrategyConfig) {
	gameRecords := []metrics.GameRecord{}
	count := 0

	for _, matchUp := range matchUps {
		log.Info().
			Str("experiment", name).
			Str("agent1", matchUp[0].Name).
			Str("agent2", matchUp[1].Name).
			Msg("starting matchup")

		for i := 0; i < NumGames; i++ {
			count++
			record, err := runGame(count, matchUp)
			if err != nil {
				log.Error().Err(err).Int("game", count).Msg("game failed")
				continue
			}
			gameRecords = append(gameRecords, record)
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Error().Err(err).Msg("failed to create results writer")
		return
	}
	if err := writer.WriteStrategyConfigs(configs); err != nil {
		log.Error().Err(err).Msg("failed to write strategy configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
	}
	log.Info().Str("experiment", name).Int("games", len(gameRecords)).Msg("experiment complete")
}

func runGame(id int, matchUp [2]metrics.StrategyConfig) (metrics.GameRecord, error) {
	cfg := game.DefaultConfig()
	cfg.Seed = int64(id) // Vary setup between games, reproducibly
	state, err := game.NewGameState(cfg, 2)
	if err != nil {
		return metrics.GameRecord{}, err
	}

	agents := map[int]searcher.Strategy{}
	for i, sc := range matchUp {
		agent, err := searcher.NewStrategy(sc.AgentConfig)
		if err != nil {
			return metrics.GameRecord{}, err
		}
		agents[i+1] = agent
	}

	e, err := engine.LocalEngine(state, agents)
	if err != nil {
		return metrics.GameRecord{}, err
	}

	start := time.Now()
	winner, moves := e.Run()

	return metrics.GameRecord{
		ID:        id,
		Agent1:    matchUp[0].ID,
		Agent2:    matchUp[1].ID,
		Winner:    winner,
		Moves:     len(moves),
		StartTime: start,
		Duration:  time.Since(start),
	}, nil
}
