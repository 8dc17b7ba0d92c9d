package internal

import (
	"math/rand"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

type GridOptions struct {
	Size                 int
	MaxPlacementAttempts int
	MaxGenerationRuns    int
}

// StartGame generates a grid for each player and pairs them in a game; the
// first player moves first.
func StartGame(rng *rand.Rand, opts GridOptions, first, second mb.Player) (*mb.Game, error) {
	grids := [2]*mb.Grid{}
	for i := range grids {
		grid, err := mb.GenerateGridWithRetry(rng, opts.Size, mb.StandardFleet, opts.MaxPlacementAttempts, opts.MaxGenerationRuns)
		if err != nil {
			return nil, err
		}
		grids[i] = grid
	}

	return mb.NewGame(first, second, grids[0], grids[1]), nil
}
