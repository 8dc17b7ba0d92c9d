package battleship

import "math/rand"

// Player picks the next position to fire at on the opponent's grid.
type Player interface {
	Name() string
	SelectTarget() (Coordinates, error)
}

// AIPlayer fires uniformly at random over the whole grid. It does not
// remember where it already fired, so repeated targets are rejected by the
// grid and the move loop simply asks again.
type AIPlayer struct {
	name     string
	gridSize int
	rng      *rand.Rand
}

var _ Player = (*AIPlayer)(nil)

func NewAIPlayer(name string, gridSize int, rng *rand.Rand) *AIPlayer {
	return &AIPlayer{
		name:     name,
		gridSize: gridSize,
		rng:      rng,
	}
}

func (p *AIPlayer) Name() string {
	return p.name
}

func (p *AIPlayer) SelectTarget() (Coordinates, error) {
	return NewCoordinates(p.rng.Intn(p.gridSize), p.rng.Intn(p.gridSize)), nil
}
