package service

import (
	"context"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5/pgtype"
)

// PointLedger moves users.point and appends the matching points row in the same transaction.
type PointLedger struct{}

func (PointLedger) Debit(ctx context.Context, q *sqlgen.Queries, userID, amount int64, description string) error {
	affected, err := q.DebitUserPoint(ctx, sqlgen.DebitUserPointParams{
		Amount: amount,
		ID:     userID,
	})
	if err != nil {
		return fmt.Errorf("debit point: %w", err)
	}

	if affected == 0 {
		return errs.New(errs.KindInvalidPoints, "Insufficient point balance")
	}

	err = q.InsertPoint(ctx, sqlgen.InsertPointParams{
		UserID:      userID,
		Amount:      -amount,
		Type:        constant.PointTypeUsed,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("insert point ledger: %w", err)
	}

	return nil
}

func (PointLedger) Credit(ctx context.Context, q *sqlgen.Queries, userID, amount int64, description string, expiredAt pgtype.Timestamptz) error {
	affected, err := q.CreditUserPoint(ctx, sqlgen.CreditUserPointParams{
		Amount: amount,
		ID:     userID,
	})
	if err != nil {
		return fmt.Errorf("credit point: %w", err)
	}

	if affected == 0 {
		return errs.New(errs.KindNotFound, "User not found")
	}

	err = q.InsertPoint(ctx, sqlgen.InsertPointParams{
		UserID:      userID,
		Amount:      amount,
		Type:        constant.PointTypeEarned,
		Description: description,
		ExpiredAt:   expiredAt,
	})
	if err != nil {
		return fmt.Errorf("insert point ledger: %w", err)
	}

	return nil
}
