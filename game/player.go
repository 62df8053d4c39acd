package game

import (
	"fmt"
	"math/rand"
)

// Player is a participant's identity plus the unplaced piece inventory
// consumed during setup. After setup the inventory is empty and all
// piece existence is tracked through the board.
type Player struct {
	ID     int
	Name   string
	Pieces []Piece
}

func NewPlayer(id int, perType int) *Player {
	p := &Player{
		ID:   id,
		Name: fmt.Sprintf("Player %d", id),
	}
	for _, t := range PieceTypes {
		for i := 0; i < perType; i++ {
			p.Pieces = append(p.Pieces, Piece{Type: t, Owner: id})
		}
	}
	return p
}

// TakePiece removes and returns a uniformly chosen piece from the
// unplaced inventory. It reports false once the inventory is empty.
func (p *Player) TakePiece(rng *rand.Rand) (Piece, bool) {
	if len(p.Pieces) == 0 {
		return Piece{}, false
	}
	i := rng.Intn(len(p.Pieces))
	piece := p.Pieces[i]
	p.Pieces = append(p.Pieces[:i], p.Pieces[i+1:]...)
	return piece, true
}
