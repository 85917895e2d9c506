package service

import (
	"context"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5/pgtype"
	"log/slog"
	"time"
)

// compensate reverses everything trx consumed, using the quantities recorded on trx.
// Callers run it under the transaction row lock, right before the terminal status write.
func (in TransactionService) compensate(ctx context.Context, q *sqlgen.Queries, trx sqlgen.Transaction) error {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if err := in.Inventory.Release(ctx, q, trx.TicketTypeID, trx.TicketQty); err != nil {
		return err
	}

	if trx.VoucherID.Valid {
		affected, err := q.DecrementVoucherUsage(ctx, trx.VoucherID.Int64)
		if err != nil {
			return fmt.Errorf("decrement voucher usage: %w", err)
		}

		if affected == 0 {
			slog.WarnContext(ctx, "voucher usage already zero", traceIdAttr, slog.Int64("voucher_id", trx.VoucherID.Int64))
		}
	}

	if trx.CouponID.Valid {
		affected, err := q.ReleaseCoupon(ctx, trx.CouponID.Int64)
		if err != nil {
			return fmt.Errorf("release coupon: %w", err)
		}

		if affected == 0 {
			slog.WarnContext(ctx, "coupon already released", traceIdAttr, slog.Int64("coupon_id", trx.CouponID.Int64))
		}
	}

	if trx.PointsUsed > 0 {
		err := in.Points.Credit(ctx, q, trx.UserID, trx.PointsUsed,
			fmt.Sprintf(constant.PointRestoredDescription, trx.ID), pgtype.Timestamptz{})
		if err != nil {
			return err
		}
	}

	return nil
}

// terminate compensates trx and writes the terminal status guarded by trx's current status.
func (in TransactionService) terminate(ctx context.Context, q *sqlgen.Queries, trx sqlgen.Transaction, status string, now time.Time) (sqlgen.Transaction, error) {
	if err := in.compensate(ctx, q, trx); err != nil {
		return sqlgen.Transaction{}, err
	}

	return in.transition(ctx, q, trx, status, now)
}
