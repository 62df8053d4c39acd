package game

import (
	"fmt"
	"math/rand"
	"time"
)

type Phase int

const (
	SetupPhase Phase = iota
	InProgressPhase
	GameOverPhase
)

// Config carries the construction-time game parameters, so tests can
// run on boards smaller than the default 6x6.
type Config struct {
	BoardSize     int
	PiecesPerType int
	TurnSeconds   float64
	Seed          int64 // 0 means seed from the clock
}

func DefaultConfig() Config {
	return Config{
		BoardSize:     6,
		PiecesPerType: 4,
		TurnSeconds:   30,
	}
}

// GameState is the single mutable root of a game: the board, the
// players, whose turn it is, and the per-turn countdown. It is mutated
// once per accepted move or timer expiry and becomes terminal when at
// most one player retains pieces on the board.
type GameState struct {
	Config        Config
	Board         *Board
	Players       []*Player
	Current       int // index into Players
	Phase         Phase
	GameOver      bool
	Winner        *Player // nil until decided; stays nil on a draw
	TurnRemaining float64
	rng           *rand.Rand
}

// NewGameState builds a game for 2 or 3 players. Any other player
// count is a configuration error, never silently coerced.
func NewGameState(cfg Config, numPlayers int) (*GameState, error) {
	if numPlayers != 2 && numPlayers != 3 {
		return nil, fmt.Errorf("number of players must be 2 or 3, got %d", numPlayers)
	}
	if cfg.BoardSize < 2 {
		return nil, fmt.Errorf("board size must be at least 2, got %d", cfg.BoardSize)
	}
	if cfg.PiecesPerType < 1 {
		return nil, fmt.Errorf("pieces per type must be at least 1, got %d", cfg.PiecesPerType)
	}
	if _, err := startingRegions(cfg.BoardSize, 3*cfg.PiecesPerType, numPlayers); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gs := &GameState{
		Config:        cfg,
		Board:         NewBoard(cfg.BoardSize),
		Phase:         SetupPhase,
		TurnRemaining: cfg.TurnSeconds,
		rng:           rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < numPlayers; i++ {
		gs.Players = append(gs.Players, NewPlayer(i+1, cfg.PiecesPerType))
	}
	return gs, nil
}

func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.Current]
}

// SetupBoard assigns each player a fixed disjoint region (see
// startingRegions), then places that player's full inventory into the
// region in random cell order.
func (gs *GameState) SetupBoard() error {
	if gs.Phase != SetupPhase {
		return fmt.Errorf("board already set up")
	}

	regions, err := startingRegions(gs.Config.BoardSize, 3*gs.Config.PiecesPerType, len(gs.Players))
	if err != nil {
		return err
	}

	for i, player := range gs.Players {
		region := make([]Cell, len(regions[i]))
		copy(region, regions[i])
		gs.rng.Shuffle(len(region), func(a, b int) {
			region[a], region[b] = region[b], region[a]
		})

		for {
			piece, ok := player.TakePiece(gs.rng)
			if !ok {
				break
			}
			cell := region[len(region)-1]
			region = region[:len(region)-1]
			if !gs.Board.Place(cell.Row, cell.Col, piece) {
				return fmt.Errorf("setup cell (%d,%d) already occupied", cell.Row, cell.Col)
			}
		}
	}

	gs.Phase = InProgressPhase
	gs.Current = 0
	gs.TurnRemaining = gs.Config.TurnSeconds
	return nil
}

// startingRegions returns one disjoint region per player, each with
// exactly perPlayer cells. Two players get a top and a bottom band;
// three players get a top-left block, a right band, and a bottom-left
// block, in player order.
func startingRegions(size, perPlayer, numPlayers int) ([][]Cell, error) {
	switch numPlayers {
	case 2:
		rows := (perPlayer + size - 1) / size
		if 2*rows > size {
			return nil, fmt.Errorf("board of size %d cannot host 2 regions of %d cells", size, perPlayer)
		}
		top := blockCells(0, rows, 0, size)[:perPlayer]
		bottom := blockCells(size-rows, size, 0, size)
		bottom = bottom[len(bottom)-perPlayer:]
		return [][]Cell{top, bottom}, nil
	case 3:
		width := (perPlayer + size - 1) / size // right band width
		left := size - width
		if left < 1 || perPlayer > width*size || 2*perPlayer > left*size {
			return nil, fmt.Errorf("board of size %d cannot host 3 regions of %d cells", size, perPlayer)
		}
		block := blockCells(0, size, 0, left)
		topLeft := block[:perPlayer]
		bottomLeft := block[len(block)-perPlayer:]
		right := blockCells(0, size, left, size)[:perPlayer]
		return [][]Cell{topLeft, right, bottomLeft}, nil
	default:
		return nil, fmt.Errorf("number of players must be 2 or 3, got %d", numPlayers)
	}
}

func blockCells(rowLo, rowHi, colLo, colHi int) []Cell {
	var cells []Cell
	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			cells = append(cells, Cell{row, col})
		}
	}
	return cells
}

// ValidMoves lists the legal destinations for the piece at (row, col):
// the in-bounds orthogonal neighbors that are empty or enemy-owned.
// Legal, not advisable - no combat-outcome filtering happens here.
func (gs *GameState) ValidMoves(row, col int) []Cell {
	piece, ok := gs.Board.At(row, col)
	if !ok {
		return nil
	}
	var moves []Cell
	for _, d := range directions {
		r, c := row+d.Row, col+d.Col
		if !gs.Board.InBounds(r, c) {
			continue
		}
		if target, occupied := gs.Board.At(r, c); occupied && target.Owner == piece.Owner {
			continue
		}
		moves = append(moves, Cell{r, c})
	}
	return moves
}

// PlayTurn moves one of the current player's pieces and, on success,
// advances the turn. A draw counts as a successful move: the turn
// still advances. Failures leave the state untouched.
func (gs *GameState) PlayTurn(from, to Cell) (MoveResult, bool) {
	if gs.Phase != InProgressPhase {
		return MoveResult{}, false
	}
	piece, ok := gs.Board.At(from.Row, from.Col)
	if !ok || piece.Owner != gs.CurrentPlayer().ID {
		return MoveResult{}, false
	}
	result, ok := gs.Board.MovePiece(from, to)
	if !ok {
		return MoveResult{}, false
	}
	gs.NextTurn()
	return result, true
}

// NextTurn advances to the next player with pieces on the board,
// re-checking game over after each skip so the loop terminates once
// only the winner remains.
func (gs *GameState) NextTurn() {
	if gs.CheckGameOver() {
		return
	}
	gs.Current = (gs.Current + 1) % len(gs.Players)
	for gs.Board.PieceCount(gs.CurrentPlayer().ID) == 0 {
		if gs.CheckGameOver() {
			return
		}
		gs.Current = (gs.Current + 1) % len(gs.Players)
	}
	gs.TurnRemaining = gs.Config.TurnSeconds
}

// CheckGameOver scans player piece counts. Exactly one player left
// with pieces wins; zero players left (mutual elimination) ends the
// game with no winner.
func (gs *GameState) CheckGameOver() bool {
	if gs.GameOver {
		return true
	}
	active := 0
	var last *Player
	for _, p := range gs.Players {
		if gs.Board.PieceCount(p.ID) > 0 {
			active++
			last = p
		}
	}
	if active > 1 {
		return false
	}
	gs.GameOver = true
	gs.Phase = GameOverPhase
	if active == 1 {
		gs.Winner = last
	}
	return true
}

// UpdateTimer decrements the per-turn countdown by dt seconds. On
// expiry the current player forfeits the turn and the caller is told
// so it can signal a loss-of-turn event. Pacing only - expiry never
// removes pieces.
func (gs *GameState) UpdateTimer(dt float64) bool {
	if gs.Phase != InProgressPhase {
		return false
	}
	gs.TurnRemaining -= dt
	if gs.TurnRemaining > 0 {
		return false
	}
	gs.NextTurn()
	gs.TurnRemaining = gs.Config.TurnSeconds
	return true
}
