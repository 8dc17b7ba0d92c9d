package sqlc

import (
	"context"
	"database/sql"
	"time"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	db        *sql.DB
	queries   *Queries
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB) DbManager {
	queries := New(db)
	return DbManager{
		db:        db,
		queries:   queries,
		Analytics: NewAnalyticsManager(queries),
	}
}

// RecordGameResult runs AnalyticsManager.RecordGameResult in a transaction
// so the result row and the counter never disagree.
func (dm DbManager) RecordGameResult(ctx context.Context, summary mb.GameSummary) error {
	tx, err := dm.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := NewAnalyticsManager(dm.queries.WithTx(tx)).RecordGameResult(ctx, summary); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
