package service

import (
	"context"
	"errors"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/otel"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5/pgconn"
	"log/slog"
	"time"
)

const pgUniqueViolation = "23505"

var errAlreadyRewarded = errors.New("referral already rewarded")

// ReferralService grants the sign-up rewards of a referral: a welcome coupon
// for the referee and points for the referrer.
type ReferralService struct {
	Db      contract.DbConn
	Querier *sqlgen.Queries
	Points  PointLedger
	TimeNow func() time.Time
}

func NewReferralService(db contract.DbConn, querier *sqlgen.Queries) ReferralService {
	return ReferralService{
		Db:      db,
		Querier: querier,
		TimeNow: time.Now,
	}
}

// Reward is idempotent per referee. A redelivered message finds the coupon
// already issued and returns nil without crediting the referrer twice.
func (in ReferralService) Reward(ctx context.Context, msg model.UserReferredEventMessage) error {
	ctx, span := otel.Tracer.Start(ctx, "ReferralService.Reward")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "reward referral receive request", slog.Any(constant.LogFieldPayload, msg), traceIdAttr)

	now := in.TimeNow()

	err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
		_, err := q.InsertCoupon(ctx, sqlgen.InsertCouponParams{
			UserID:         msg.RefereeID,
			Code:           constant.ReferralCouponPrefix + msg.RefereeReferralCode,
			DiscountAmount: constant.ReferralCouponAmount,
			ExpiredAt:      common.Timestamptz(now.AddDate(0, constant.ReferralCouponValidMonths, 0)),
		})
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errAlreadyRewarded
		}
		if err != nil {
			return fmt.Errorf("insert referral coupon: %w", err)
		}

		return in.Points.Credit(ctx, q, msg.ReferrerID, constant.ReferralRewardPoint,
			constant.ReferralRewardDescription,
			common.Timestamptz(now.AddDate(0, constant.ReferralRewardValidMonths, 0)))
	})
	if errors.Is(err, errAlreadyRewarded) {
		slog.InfoContext(ctx, "referral already rewarded", traceIdAttr, slog.Int64("referee_id", msg.RefereeID))
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to reward referral", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	slog.InfoContext(ctx, "reward referral success", traceIdAttr, slog.Int64("referrer_id", msg.ReferrerID))

	return nil
}
