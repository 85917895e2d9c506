package service

import (
	"context"
	"errors"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"time"
)

type DiscountInput struct {
	EventID     int64
	UserID      int64
	Subtotal    int64
	VoucherCode string
	CouponCode  string
	PointsToUse int64
}

type DiscountResult struct {
	VoucherDiscount int64
	CouponDiscount  int64
	PointsDeducted  int64
	FinalPrice      int64

	VoucherID pgtype.Int8
	CouponID  pgtype.Int8
}

// DiscountResolver prices a purchase against its voucher, coupon and points.
// It only reads, but it reads with FOR UPDATE so the caller can consume the
// instruments later in the same transaction without racing other buyers.
type DiscountResolver struct {
	TimeNow func() time.Time
}

func (in DiscountResolver) Resolve(ctx context.Context, q *sqlgen.Queries, input DiscountInput) (DiscountResult, error) {
	if input.PointsToUse < 0 {
		return DiscountResult{}, errs.New(errs.KindInvalidPoints, "Points to use cannot be negative")
	}

	now := common.Timestamptz(in.TimeNow())

	var voucherDiscount int64
	var voucherID pgtype.Int8
	if input.VoucherCode != "" {
		voucher, err := q.FindActiveVoucherForUpdate(ctx, sqlgen.FindActiveVoucherForUpdateParams{
			EventID: input.EventID,
			Code:    input.VoucherCode,
			Now:     now,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return DiscountResult{}, errs.New(errs.KindInvalidVoucher, "Invalid or expired voucher")
		}
		if err != nil {
			return DiscountResult{}, fmt.Errorf("find voucher: %w", err)
		}

		if voucher.UsedCount >= voucher.UsageLimit {
			return DiscountResult{}, errs.New(errs.KindVoucherExhausted, "Voucher usage limit exceeded")
		}

		voucherDiscount = VoucherDiscount(voucher.DiscountType, voucher.DiscountAmount, input.Subtotal)
		voucherID = pgtype.Int8{Int64: voucher.ID, Valid: true}
	}

	var couponAmount int64
	var couponID pgtype.Int8
	if input.CouponCode != "" {
		coupon, err := q.FindUsableCouponForUpdate(ctx, sqlgen.FindUsableCouponForUpdateParams{
			UserID: input.UserID,
			Code:   input.CouponCode,
			Now:    now,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return DiscountResult{}, errs.New(errs.KindInvalidCoupon, "Invalid or expired coupon")
		}
		if err != nil {
			return DiscountResult{}, fmt.Errorf("find coupon: %w", err)
		}

		couponAmount = coupon.DiscountAmount
		couponID = pgtype.Int8{Int64: coupon.ID, Valid: true}
	}

	user, err := q.FindUserForUpdate(ctx, input.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return DiscountResult{}, errs.New(errs.KindNotFound, "User not found")
	}
	if err != nil {
		return DiscountResult{}, fmt.Errorf("find user: %w", err)
	}

	result := ApplyDiscounts(input.Subtotal, voucherDiscount, couponAmount, input.PointsToUse, user.Point)
	result.VoucherID = voucherID
	result.CouponID = couponID

	return result, nil
}

// VoucherDiscount never exceeds subtotal. Percentages are floored.
func VoucherDiscount(discountType string, amount, subtotal int64) int64 {
	var discount int64
	switch discountType {
	case constant.DiscountTypePercentage:
		discount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(amount)).
			Div(decimal.NewFromInt(100)).
			Floor().
			IntPart()
	default:
		discount = min(amount, subtotal)
	}

	return clamp(discount, 0, subtotal)
}

// ApplyDiscounts stacks voucher, coupon and points in that order.
// The final price stays within [0, subtotal].
func ApplyDiscounts(subtotal, voucherDiscount, couponAmount, requestedPoints, pointBalance int64) DiscountResult {
	subtotal = max(subtotal, 0)
	voucherDiscount = clamp(voucherDiscount, 0, subtotal)
	couponDiscount := clamp(couponAmount, 0, subtotal-voucherDiscount)

	remaining := subtotal - voucherDiscount - couponDiscount
	points := max(0, min(requestedPoints, pointBalance, remaining))

	return DiscountResult{
		VoucherDiscount: voucherDiscount,
		CouponDiscount:  couponDiscount,
		PointsDeducted:  points,
		FinalPrice:      max(0, remaining-points),
	}
}

func clamp(v, lo, hi int64) int64 {
	return max(lo, min(v, hi))
}
