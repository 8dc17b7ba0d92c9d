package internal

import (
	"errors"
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func TestStartGame(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	opts := GridOptions{
		Size:                 mb.GridSizeStandard,
		MaxPlacementAttempts: mb.DefaultMaxPlacementAttempts,
		MaxGenerationRuns:    mb.DefaultMaxGenerationRuns,
	}
	first := mb.NewAIPlayer("first", opts.Size, rng)
	second := mb.NewAIPlayer("second", opts.Size, rng)

	game, err := StartGame(rng, opts, first, second)
	if err != nil {
		t.Fatal(err)
	}

	if game.CurrentPlayer() != first {
		t.Fatalf("expected first player to move first\tgot: %s", game.CurrentPlayer().Name())
	}
	for i, grid := range game.Grids() {
		if len(grid.Ships()) != len(mb.StandardFleet) {
			t.Fatalf("grid %d: expected ships: %d\tgot: %d", i, len(mb.StandardFleet), len(grid.Ships()))
		}
		if grid.State() != mb.GridStatePlaying {
			t.Fatalf("grid %d: expected state: %d\tgot: %d", i, mb.GridStatePlaying, grid.State())
		}
	}
	if game.Grids()[0] == game.Grids()[1] {
		t.Fatal("players must not share a grid")
	}
}

func TestStartGameGenerationFails(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	opts := GridOptions{Size: 2, MaxPlacementAttempts: 10, MaxGenerationRuns: 2}

	_, err := StartGame(rng, opts, mb.NewAIPlayer("first", 2, rng), mb.NewAIPlayer("second", 2, rng))
	if !errors.Is(err, cerr.ErrGenerationExhausted) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrGenerationExhausted, err)
	}
}
