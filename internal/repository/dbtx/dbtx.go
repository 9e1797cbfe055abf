// Package dbtx holds what the repositories share for running statements inside transactions.
package dbtx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wb-go/wbf/zlog"
)

// Querier is implemented by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Lock keys for pg_advisory_xact_lock, one per manually ordered collection.
const (
	LockEmployeeOrder int64 = 1001
	LockNewsImages    int64 = 1002
)

// QueryAdvisoryLock takes a transaction-scoped lock on a collection key.
const QueryAdvisoryLock = `SELECT pg_advisory_xact_lock($1);`

// WithTx runs fn inside a transaction on db, committing when fn returns nil and
// rolling back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zlog.Logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// AdvisoryLock takes a transaction-scoped advisory lock; it is released on commit or rollback.
func AdvisoryLock(ctx context.Context, tx *sql.Tx, key int64) error {
	if _, err := tx.ExecContext(ctx, QueryAdvisoryLock, key); err != nil {
		return fmt.Errorf("acquire advisory lock %d: %w", key, err)
	}

	return nil
}
