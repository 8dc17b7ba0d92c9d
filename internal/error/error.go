package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlacement    = errors.New("invalid ship placement")
	ErrOutOfBounds         = errors.New("out of grid bound")
	ErrAlreadyTargeted     = errors.New("position already targeted")
	ErrGenerationExhausted = errors.New("grid generation attempts exhausted")
	ErrInputExhausted      = errors.New("no more input to read")
)

func ErrShipOutOfGridBound(row, col int) error {
	return fmt.Errorf("ship cell is out of game grid bound\trow: %d\tcol: %d: %w", row, col, ErrInvalidPlacement)
}

func ErrShipPositionTaken(row, col int) error {
	return fmt.Errorf("ship cell collides with another ship or its contour\trow: %d\tcol: %d: %w", row, col, ErrInvalidPlacement)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("incoming row or col is out of game grid bound\trow: %d\tcol: %d: %w", row, col, ErrOutOfBounds)
}

func ErrAttackPositionAlreadyFilled(row, col int) error {
	return fmt.Errorf("this position is already targeted in previous rounds\trow: %d\tcol: %d: %w", row, col, ErrAlreadyTargeted)
}

func ErrGenerationAttemptsExceeded(attempts int) error {
	return fmt.Errorf("failed to place fleet after %d attempts: %w", attempts, ErrGenerationExhausted)
}

func ErrGenerationRunsExceeded(runs int) error {
	return fmt.Errorf("failed to generate grid in %d runs: %w", runs, ErrGenerationExhausted)
}

// IsRetryableShotErr reports whether a shot failed for a reason the
// shooter can recover from by picking another target.
func IsRetryableShotErr(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}

func ErrGridInPlay() error {
	return fmt.Errorf("ships cannot be placed once the grid is in play: %w", ErrInvalidPlacement)
}

var ErrGameFinished = errors.New("game is already finished")
