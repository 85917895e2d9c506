package service

import (
	"context"
	"errors"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/common/metrics"
	"event-ticket/common/otel"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"sync/atomic"
	"time"
)

// ExpireTransactions moves unpaid transactions past their deadline to EXPIRED.
// It returns how many rows it actually expired.
func (in TransactionService) ExpireTransactions(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.ExpireTransactions")
	defer span.End()

	now := in.TimeNow()

	ids, err := in.Querier.FindExpiredTransactionIDs(ctx, common.Timestamptz(now))
	if err != nil {
		common.UtilSpanError(span, err)
		return 0, fmt.Errorf("find expired transactions: %w", err)
	}

	return in.sweep(ctx, constant.CronJobExpireTransactions, constant.TransactionStatusExpired, ids, func(q *sqlgen.Queries, trx sqlgen.Transaction) (bool, error) {
		if trx.Status != constant.TransactionStatusWaitingPayment || !trx.ExpiredAt.Time.Before(now) {
			return false, nil
		}

		_, err := in.terminate(ctx, q, trx, constant.TransactionStatusExpired, now)
		return true, err
	}, nil)
}

// CancelTransactions cancels transactions the organizer left unconfirmed past the confirmation window.
func (in TransactionService) CancelTransactions(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.CancelTransactions")
	defer span.End()

	now := in.TimeNow()
	cutoff := now.Add(-in.ConfirmationWindow)

	ids, err := in.Querier.FindStaleConfirmationTransactionIDs(ctx, common.Timestamptz(cutoff))
	if err != nil {
		common.UtilSpanError(span, err)
		return 0, fmt.Errorf("find stale confirmations: %w", err)
	}

	return in.sweep(ctx, constant.CronJobCancelTransactions, constant.TransactionStatusCancelled, ids, func(q *sqlgen.Queries, trx sqlgen.Transaction) (bool, error) {
		if trx.Status != constant.TransactionStatusWaitingConfirmation || !trx.UpdatedAt.Time.Before(cutoff) {
			return false, nil
		}

		_, err := in.terminate(ctx, q, trx, constant.TransactionStatusCancelled, now)
		return true, err
	}, func(ctx context.Context, id int64) {
		in.notify(ctx, id, recipientPurchaser,
			constant.EmailSubjectTransactionAutoCancelled, constant.EmailTemplateTransactionAutoCancelled)
	})
}

// sweep processes each id in its own database transaction. A failing row is
// logged and skipped so one bad row never blocks the rest of the batch.
func (in TransactionService) sweep(
	ctx context.Context,
	job string,
	toStatus string,
	ids []int64,
	apply func(q *sqlgen.Queries, trx sqlgen.Transaction) (bool, error),
	after func(ctx context.Context, id int64),
) (int, error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	started := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
	}()

	if len(ids) == 0 {
		slog.DebugContext(ctx, "nothing to sweep", traceIdAttr, slog.String("job", job))
		return 0, nil
	}

	var processed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(max(in.SweepConcurrency, 1))

	for _, id := range ids {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			var applied bool
			var status string
			err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
				trx, err := in.lockTransaction(ctx, q, id)
				if err != nil {
					return err
				}

				applied, err = apply(q, trx)
				status = trx.Status
				return err
			})
			if errors.Is(err, errs.ErrInvalidState) || errors.Is(err, errs.ErrNotFound) {
				slog.DebugContext(ctx, "sweep skipped transaction", traceIdAttr, slog.String("job", job), slog.Int64("transaction_id", id))
				return nil
			}
			if err != nil {
				metrics.SweepFailuresTotal.WithLabelValues(job).Inc()
				slog.ErrorContext(ctx, "sweep failed to process transaction", traceIdAttr,
					slog.String("job", job), slog.Int64("transaction_id", id), slog.Any(constant.LogFieldErr, err))
				return nil
			}

			if !applied {
				slog.DebugContext(ctx, "transaction no longer eligible", traceIdAttr,
					slog.String("job", job), slog.Int64("transaction_id", id), slog.String("status", status))
				return nil
			}

			processed.Add(1)
			metrics.SweepProcessedTotal.WithLabelValues(job).Inc()
			metrics.TransactionTransitionsTotal.WithLabelValues(toStatus).Inc()

			if after != nil {
				after(ctx, id)
			}

			return nil
		})
	}

	_ = g.Wait()

	count := int(processed.Load())
	slog.InfoContext(ctx, "sweep finished", traceIdAttr,
		slog.String("job", job), slog.Int("candidates", len(ids)), slog.Int("processed", count))

	return count, ctx.Err()
}
