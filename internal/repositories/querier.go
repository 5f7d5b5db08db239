package repositories

import (
	"context"
	"database/sql"
)

// wrapper that implements common functions from sql.DB and sql.Tx
// to not write logic twice
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execExpectingRows runs a statement that must touch at least one row and
// maps "zero rows affected" to sql.ErrNoRows.
func execExpectingRows(ctx context.Context, q Querier, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
