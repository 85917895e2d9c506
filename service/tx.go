package service

import (
	"context"
	"errors"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/outbound/sqlgen"
	"github.com/jackc/pgx/v5"
	"log/slog"
)

// runInTx commits when fn returns nil and rolls back otherwise.
func runInTx(ctx context.Context, db contract.DbConn, querier *sqlgen.Queries, traceIdAttr slog.Attr, fn func(q *sqlgen.Queries) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	if err = fn(querier.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	return nil
}
