package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const recordResultTimeout time.Duration = time.Second * 10

// ResultRecorder stores the summary of a finished game.
type ResultRecorder interface {
	RecordGameResult(ctx context.Context, summary mb.GameSummary) error
}

// Runner plays a game to the end on a console. The first player of the game
// is the one sitting at the console: their own grid is drawn in full and
// the opponent's grid with ships hidden.
type Runner struct {
	out      io.Writer
	game     *mb.Game
	recorder ResultRecorder
}

type Option func(*Runner) error

func NewRunner(out io.Writer, game *mb.Game, optFuncs ...Option) *Runner {
	runner := Runner{
		out:  out,
		game: game,
	}
	for _, opt := range optFuncs {
		if err := opt(&runner); err != nil {
			panic(err)
		}
	}

	game.OnRejected = runner.onRejected
	return &runner
}

func WithRecorder(recorder ResultRecorder) Option {
	return func(r *Runner) error {
		if recorder == nil {
			return errors.New("result recorder must not be nil")
		}
		r.recorder = recorder
		return nil
	}
}

func (r *Runner) greet() {
	fmt.Fprintln(r.out, strings.Repeat("*", 50))
	fmt.Fprintln(r.out, "  BATTLESHIP")
	fmt.Fprintln(r.out, strings.Repeat("*", 50))
	fmt.Fprintln(r.out, "-------------------")
	fmt.Fprintln(r.out, " input format: x y ")
	fmt.Fprintln(r.out, " x - row number    ")
	fmt.Fprintln(r.out, " y - column number ")
}

func (r *Runner) onRejected(p mb.Player, target mb.Coordinates, err error) {
	switch {
	case errors.Is(err, cerr.ErrOutOfBounds):
		fmt.Fprintf(r.out, "%s fired off the board at %d %d!\n", p.Name(), target.Row+1, target.Col+1)
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		fmt.Fprintf(r.out, "%s already fired at %d %d!\n", p.Name(), target.Row+1, target.Col+1)
	default:
		fmt.Fprintln(r.out, err)
	}
}

func (r *Runner) printBoards() {
	players := r.game.Players()
	grids := r.game.Grids()
	writeGrid(r.out, players[0].Name()+"'s board:", grids[0], false)
	writeGrid(r.out, players[1].Name()+"'s board:", grids[1], true)
}

// Run alternates moves until a fleet is destroyed, the context is done or a
// player cannot produce a target. The winner's summary is returned.
func (r *Runner) Run(ctx context.Context) (mb.GameSummary, error) {
	r.greet()

	for {
		if err := ctx.Err(); err != nil {
			return r.game.Summary(), err
		}

		r.printBoards()
		fmt.Fprintln(r.out, strings.Repeat("+", 40))
		fmt.Fprintf(r.out, "%s moves...\n", r.game.CurrentPlayer().Name())

		result, err := r.game.Move()
		if err != nil {
			return r.game.Summary(), err
		}

		fmt.Fprintf(r.out, "%s fires at %d %d\n", result.Player.Name(), result.Target.Row+1, result.Target.Col+1)
		switch result.Outcome {
		case mb.ShotSunk:
			fmt.Fprintln(r.out, "Sunk!")
		case mb.ShotHit:
			fmt.Fprintln(r.out, "Hit!")
		default:
			fmt.Fprintln(r.out, "Miss!")
		}

		if result.Finished {
			break
		}
	}

	summary := r.game.Summary()
	r.printBoards()
	fmt.Fprintln(r.out, strings.Repeat("-", 20))
	fmt.Fprintf(r.out, "%s won!\n", summary.Winner)

	if r.recorder != nil {
		recordCtx, cancel := context.WithTimeout(ctx, recordResultTimeout)
		defer cancel()
		if err := r.recorder.RecordGameResult(recordCtx, summary); err != nil {
			// not failing the game for it
			log.Println("failed to record game result:", err)
		}
	}

	return summary, nil
}
