package main

import (
	"context"
	"log"
	"math/rand"
	"os"

	"github.com/saeidalz13/battleship-console/cli"
	"github.com/saeidalz13/battleship-console/db"
	"github.com/saeidalz13/battleship-console/db/sqlc"
	"github.com/saeidalz13/battleship-console/internal"
	"github.com/saeidalz13/battleship-console/internal/config"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if cfg.Stage == config.StageDev {
		cfg.LogSummary()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	game, err := internal.StartGame(
		rng,
		internal.GridOptions{
			Size:                 cfg.BoardSize,
			MaxPlacementAttempts: cfg.MaxPlacementAttempts,
			MaxGenerationRuns:    cfg.MaxGenerationRuns,
		},
		cli.NewHumanPlayer("Human", os.Stdin, os.Stdout),
		mb.NewAIPlayer("Computer", cfg.BoardSize, rng),
	)
	if err != nil {
		panic(err)
	}

	var opts []cli.Option
	if cfg.AnalyticsEnabled() {
		psql := db.MustConnectToDb(cfg.PsqlUrl)
		defer psql.Close()

		dm := sqlc.NewDbManager(psql)
		opts = append(opts, cli.WithRecorder(dm))
	}

	summary, err := cli.NewRunner(os.Stdout, game, opts...).Run(context.Background())
	if err != nil {
		log.Printf("game %s stopped: %v\n", game.Uuid, err)
		return
	}
	log.Printf("game %s finished in %d turns, winner: %s\n", summary.GameUuid, summary.Turns, summary.Winner)
}
