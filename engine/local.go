package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rps/game"
	"rps/searcher"
)

// MaxTurns caps a game so two pass-locked agents cannot stall forever.
const MaxTurns = 500

// MoveRecord is one executed turn, kept for the experiments layer.
type MoveRecord struct {
	Turn     int
	Player   int
	Move     game.Move
	Category game.Category
	Captured int
	Duration time.Duration
}

// Engine drives a local game between strategies until a winner is
// found or the turn cap is reached. Execution is turn-synchronous:
// exactly one move is chosen and applied at a time.
type Engine struct {
	State  *game.GameState
	Agents map[int]searcher.Strategy // keyed by player ID
}

func LocalEngine(state *game.GameState, agents map[int]searcher.Strategy) (*Engine, error) {
	if len(agents) != len(state.Players) {
		return nil, fmt.Errorf("number of agents %d does not match number of players %d",
			len(agents), len(state.Players))
	}
	for _, p := range state.Players {
		if agents[p.ID] == nil {
			return nil, fmt.Errorf("no agent for player %d", p.ID)
		}
	}
	return &Engine{State: state, Agents: agents}, nil
}

// Run plays the game to completion. It returns the winner's player ID,
// or 0 on a draw or a stalled game, plus the per-move records.
func (e *Engine) Run() (int, []MoveRecord) {
	if e.State.Phase == game.SetupPhase {
		if err := e.State.SetupBoard(); err != nil {
			log.Error().Err(err).Msg("board setup failed")
			return 0, nil
		}
	}

	var records []MoveRecord
	for turn := 1; !e.State.GameOver && turn <= MaxTurns; turn++ {
		player := e.State.CurrentPlayer()
		start := time.Now()

		move, ok := e.Agents[player.ID].ChooseMove(e.State, player.ID)
		if !ok {
			// A player with pieces but no legal destination is not an
			// error; the turn is forfeited.
			log.Debug().Int("player", player.ID).Msg("no legal moves, passing")
			e.State.NextTurn()
			continue
		}

		result, accepted := e.State.PlayTurn(move.From, move.To)
		if !accepted {
			log.Warn().
				Int("player", player.ID).
				Interface("move", move).
				Msg("agent returned an illegal move, forfeiting turn")
			e.State.NextTurn()
			continue
		}

		records = append(records, MoveRecord{
			Turn:     turn,
			Player:   player.ID,
			Move:     move,
			Category: result.Category,
			Captured: len(result.Removed),
			Duration: time.Since(start),
		})
		log.Debug().
			Int("turn", turn).
			Int("player", player.ID).
			Int("captured", len(result.Removed)).
			Msg("move played")
	}

	if e.State.Winner != nil {
		log.Info().Int("winner", e.State.Winner.ID).Int("moves", len(records)).Msg("game over")
		return e.State.Winner.ID, records
	}
	log.Info().Int("moves", len(records)).Msg("game over without a winner")
	return 0, records
}
