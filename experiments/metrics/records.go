package metrics

import (
	"time"

	"rps/searcher"
)

// StrategyConfig identifies one configured agent in an experiment.
type StrategyConfig struct {
	ID int
	searcher.AgentConfig
}

// GameRecord is the outcome of a single experiment game.
type GameRecord struct {
	ID        int
	Agent1    int // StrategyConfig.ID
	Agent2    int
	Winner    int // player ID, 0 for a draw
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}
