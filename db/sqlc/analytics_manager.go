package sqlc

import (
	"context"
	"encoding/json"
	"errors"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// RecordGameResult stores the result row of a finished game and bumps the
// games played counter.
func (a *AnalyticsManager) RecordGameResult(ctx context.Context, summary mb.GameSummary) error {
	if summary.Winner == "" {
		return errors.New("cannot record a game without a winner")
	}

	stats, err := json.Marshal(summary.Players)
	if err != nil {
		return err
	}

	if err := a.queries.InsertGameResult(ctx, InsertGameResultParams{
		GameID: summary.GameUuid,
		Winner: summary.Winner,
		Turns:  int32(summary.Turns),
		Stats:  pqtype.NullRawMessage{RawMessage: stats, Valid: true},
	}); err != nil {
		return err
	}

	return a.queries.IncrementGamesPlayedCount(ctx)
}

func (a *AnalyticsManager) GetGamesPlayedCount(ctx context.Context) (int64, error) {
	return a.queries.GetGamesPlayedCount(ctx)
}

func (a *AnalyticsManager) GetWinsCount(ctx context.Context, winner string) (int64, error) {
	return a.queries.GetWinsCount(ctx, winner)
}
