package battleship

import (
	"log"
	"math/rand"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const (
	GridSizeStandard            int = 6
	DefaultMaxPlacementAttempts int = 2000
	DefaultMaxGenerationRuns    int = 100
)

// StandardFleet is the ordered list of ship lengths placed on every grid.
var StandardFleet = []int{3, 2, 2, 1, 1, 1, 1}

// GenerateGrid places one ship per entry of lengths, in order, at random bows
// and orientations. maxAttempts caps the placement attempts of the whole run,
// not of each ship. On success the grid is already reset for play and the
// number of attempts used is returned alongside it.
func GenerateGrid(rng *rand.Rand, size int, lengths []int, maxAttempts int) (*Grid, int, error) {
	grid := NewGrid(size)
	attempts := 0

	for _, length := range lengths {
		for {
			attempts++
			if attempts > maxAttempts {
				return nil, attempts - 1, cerr.ErrGenerationAttemptsExceeded(maxAttempts)
			}

			bow := NewCoordinates(rng.Intn(size), rng.Intn(size))
			ship := NewShip(bow, length, Orientation(rng.Intn(2)))
			if err := grid.PlaceShip(ship); err == nil {
				break
			}
		}
	}

	grid.ResetForPlay()
	return grid, attempts, nil
}

// GenerateGridWithRetry restarts GenerateGrid from an empty grid until it
// succeeds or maxRuns runs have been exhausted.
func GenerateGridWithRetry(rng *rand.Rand, size int, lengths []int, maxAttempts, maxRuns int) (*Grid, error) {
	for run := 1; run <= maxRuns; run++ {
		grid, attempts, err := GenerateGrid(rng, size, lengths, maxAttempts)
		if err == nil {
			return grid, nil
		}
		log.Printf("grid generation run %d gave up after %d attempts, retrying\n", run, attempts)
	}
	return nil, cerr.ErrGenerationRunsExceeded(maxRuns)
}

// MaxShipLength returns the longest ship in lengths, 0 if it is empty.
func MaxShipLength(lengths []int) int {
	longest := 0
	for _, l := range lengths {
		if l > longest {
			longest = l
		}
	}
	return longest
}
