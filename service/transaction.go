package service

import (
	"context"
	"errors"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/errs"
	"event-ticket/common/metrics"
	"event-ticket/common/otel"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spf13/viper"
	"log/slog"
	"time"
)

type TransactionService struct {
	Db        contract.DbConn
	Querier   *sqlgen.Queries
	Publisher contract.Publisher

	Discount  DiscountResolver
	Inventory InventoryLedger
	Points    PointLedger

	TimeNow func() time.Time

	PaymentWindow      time.Duration
	ConfirmationWindow time.Duration
	SweepConcurrency   int
}

func NewTransactionService(
	cfg *viper.Viper,
	db contract.DbConn,
	querier *sqlgen.Queries,
	publisher contract.Publisher,
) TransactionService {
	cfg.SetDefault("transaction.payment_window", constant.DefaultPaymentWindow)
	cfg.SetDefault("transaction.confirmation_window", constant.DefaultConfirmationWindow)
	cfg.SetDefault("cron.transaction.concurrency", 4)

	return TransactionService{
		Db:        db,
		Querier:   querier,
		Publisher: publisher,

		Discount: DiscountResolver{TimeNow: time.Now},

		TimeNow: time.Now,

		PaymentWindow:      cfg.GetDuration("transaction.payment_window"),
		ConfirmationWindow: cfg.GetDuration("transaction.confirmation_window"),
		SweepConcurrency:   cfg.GetInt("cron.transaction.concurrency"),
	}
}

func (in TransactionService) CreateTransaction(ctx context.Context, userID, eventID int64, req model.CreateTransactionRequest) (model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.CreateTransaction")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create transaction receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	if req.Quantity <= 0 {
		return model.TransactionResponse{}, errs.New(errs.KindInvalidInput, "Quantity must be greater than 0")
	}

	if req.PointsToUse < 0 {
		return model.TransactionResponse{}, errs.New(errs.KindInvalidPoints, "Points to use cannot be negative")
	}

	now := in.TimeNow()

	var created sqlgen.Transaction
	err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
		locked, err := in.Inventory.Lock(ctx, q, req.TicketTypeID)
		if err != nil {
			return err
		}

		if locked.TicketType.EventID != eventID {
			return errs.New(errs.KindTicketTypeMismatch, "Ticket type does not belong to this event")
		}

		if err = in.Inventory.Reserve(ctx, q, locked.TicketType, req.Quantity); err != nil {
			return err
		}

		subtotal := locked.TicketType.Price * int64(req.Quantity)
		discount, err := in.Discount.Resolve(ctx, q, DiscountInput{
			EventID:     eventID,
			UserID:      userID,
			Subtotal:    subtotal,
			VoucherCode: req.VoucherCode,
			CouponCode:  req.CouponCode,
			PointsToUse: req.PointsToUse,
		})
		if err != nil {
			return err
		}

		if discount.VoucherID.Valid {
			affected, err := q.IncrementVoucherUsage(ctx, discount.VoucherID.Int64)
			if err != nil {
				return fmt.Errorf("increment voucher usage: %w", err)
			}

			if affected == 0 {
				return errs.New(errs.KindVoucherExhausted, "Voucher usage limit exceeded")
			}
		}

		if discount.CouponID.Valid {
			affected, err := q.MarkCouponUsed(ctx, discount.CouponID.Int64)
			if err != nil {
				return fmt.Errorf("mark coupon used: %w", err)
			}

			if affected == 0 {
				return errs.New(errs.KindInvalidCoupon, "Invalid or expired coupon")
			}
		}

		if discount.PointsDeducted > 0 {
			err = in.Points.Debit(ctx, q, userID, discount.PointsDeducted,
				fmt.Sprintf(constant.PointUsedDescription, locked.EventTitle))
			if err != nil {
				return err
			}
		}

		created, err = q.InsertTransaction(ctx, sqlgen.InsertTransactionParams{
			UserID:       userID,
			EventID:      eventID,
			TicketTypeID: req.TicketTypeID,
			VoucherID:    discount.VoucherID,
			CouponID:     discount.CouponID,
			TicketQty:    req.Quantity,
			TotalPrice:   subtotal,
			PointsUsed:   discount.PointsDeducted,
			FinalPrice:   discount.FinalPrice,
			Status:       constant.TransactionStatusWaitingPayment,
			ExpiredAt:    common.Timestamptz(now.Add(in.PaymentWindow)),
			CreatedAt:    common.Timestamptz(now),
			UpdatedAt:    common.Timestamptz(now),
		})
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "create transaction failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.TransactionResponse{}, err
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(created.Status).Inc()
	slog.InfoContext(ctx, "create transaction success", traceIdAttr, slog.Any(constant.LogFieldResponse, created.ID))

	return toTransactionResponse(created), nil
}

func (in TransactionService) UploadPaymentProof(ctx context.Context, transactionID, userID int64, proof string) (model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.UploadPaymentProof")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "upload payment proof receive request", slog.Int64("transaction_id", transactionID), traceIdAttr)

	now := in.TimeNow()
	deadlinePassed := false

	var updated sqlgen.Transaction
	err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
		trx, err := in.lockTransaction(ctx, q, transactionID)
		if err != nil {
			return err
		}

		if trx.UserID != userID {
			return errs.New(errs.KindForbidden, "You are not allowed to upload payment proof for this transaction")
		}

		if trx.Status != constant.TransactionStatusWaitingPayment {
			return errs.New(errs.KindInvalidState, "Transaction is not in waiting payment status")
		}

		if now.After(trx.ExpiredAt.Time) {
			deadlinePassed = true
			updated, err = in.terminate(ctx, q, trx, constant.TransactionStatusExpired, now)
			return err
		}

		updated, err = q.UpdateTransactionPaymentProof(ctx, sqlgen.UpdateTransactionPaymentProofParams{
			PaymentProof: pgtype.Text{String: proof, Valid: true},
			ToStatus:     constant.TransactionStatusWaitingConfirmation,
			UpdatedAt:    common.Timestamptz(now),
			ID:           trx.ID,
			FromStatus:   trx.Status,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.New(errs.KindInvalidState, "Transaction is not in waiting payment status")
		}
		if err != nil {
			return fmt.Errorf("update payment proof: %w", err)
		}

		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "upload payment proof failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.TransactionResponse{}, err
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(updated.Status).Inc()

	if deadlinePassed {
		err = errs.New(errs.KindPaymentDeadlineExpired, "Payment deadline has expired")
		common.UtilSpanError(span, err)
		slog.InfoContext(ctx, "transaction expired on payment proof upload", traceIdAttr, slog.Int64("transaction_id", transactionID))
		return model.TransactionResponse{}, err
	}

	slog.InfoContext(ctx, "upload payment proof success", traceIdAttr, slog.Int64("transaction_id", transactionID))

	return toTransactionResponse(updated), nil
}

func (in TransactionService) ConfirmTransaction(ctx context.Context, transactionID, organizerUserID int64) (model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.ConfirmTransaction")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "confirm transaction receive request", slog.Int64("transaction_id", transactionID), traceIdAttr)

	now := in.TimeNow()

	var updated sqlgen.Transaction
	err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
		trx, err := in.lockOrganizerTransaction(ctx, q, transactionID, organizerUserID)
		if err != nil {
			return err
		}

		if trx.Status != constant.TransactionStatusWaitingConfirmation {
			return errs.New(errs.KindInvalidState, "Transaction is not waiting for confirmation")
		}

		updated, err = in.transition(ctx, q, trx, constant.TransactionStatusDone, now)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "confirm transaction failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.TransactionResponse{}, err
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(updated.Status).Inc()

	in.notify(ctx, updated.ID, recipientPurchaser,
		constant.EmailSubjectTransactionConfirmed, constant.EmailTemplateTransactionConfirmed)

	return toTransactionResponse(updated), nil
}

func (in TransactionService) RejectTransaction(ctx context.Context, transactionID, organizerUserID int64) (model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.RejectTransaction")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "reject transaction receive request", slog.Int64("transaction_id", transactionID), traceIdAttr)

	now := in.TimeNow()

	var updated sqlgen.Transaction
	err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
		trx, err := in.lockOrganizerTransaction(ctx, q, transactionID, organizerUserID)
		if err != nil {
			return err
		}

		if trx.Status != constant.TransactionStatusWaitingConfirmation {
			return errs.New(errs.KindInvalidState, "Transaction is not waiting for confirmation")
		}

		updated, err = in.terminate(ctx, q, trx, constant.TransactionStatusRejected, now)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "reject transaction failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.TransactionResponse{}, err
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(updated.Status).Inc()

	in.notify(ctx, updated.ID, recipientPurchaser,
		constant.EmailSubjectTransactionRejected, constant.EmailTemplateTransactionRejected)

	return toTransactionResponse(updated), nil
}

func (in TransactionService) CancelTransaction(ctx context.Context, transactionID, userID int64) (model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.CancelTransaction")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "cancel transaction receive request", slog.Int64("transaction_id", transactionID), traceIdAttr)

	now := in.TimeNow()

	var updated sqlgen.Transaction
	err := runInTx(ctx, in.Db, in.Querier, traceIdAttr, func(q *sqlgen.Queries) error {
		trx, err := in.lockTransaction(ctx, q, transactionID)
		if err != nil {
			return err
		}

		if trx.UserID != userID {
			return errs.New(errs.KindForbidden, "You are not allowed to cancel this transaction")
		}

		if trx.Status != constant.TransactionStatusWaitingPayment && trx.Status != constant.TransactionStatusWaitingConfirmation {
			return errs.New(errs.KindInvalidState, "Transaction cannot be cancelled at this stage")
		}

		updated, err = in.terminate(ctx, q, trx, constant.TransactionStatusCancelled, now)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "cancel transaction failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.TransactionResponse{}, err
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(updated.Status).Inc()

	in.notify(ctx, updated.ID, recipientOrganizer,
		constant.EmailSubjectTransactionCancelled, constant.EmailTemplateTransactionCancelled)

	return toTransactionResponse(updated), nil
}

func (in TransactionService) GetMyTransactions(ctx context.Context, userID int64) ([]model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.GetMyTransactions")
	defer span.End()

	rows, err := in.Querier.ListTransactionsByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list user transactions", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	res := make([]model.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		item := toTransactionResponse(row.Transaction)
		item.EventTitle = row.EventTitle
		item.TicketTypeName = row.TicketTypeName
		res = append(res, item)
	}

	return res, nil
}

// GetOrganizerTransactions returns an empty list when the caller has no organizer profile.
func (in TransactionService) GetOrganizerTransactions(ctx context.Context, userID int64) ([]model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.GetOrganizerTransactions")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	organizer, err := in.Querier.FindOrganizerByUserID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		slog.DebugContext(ctx, "organizer profile not found", traceIdAttr, slog.Int64("user_id", userID))
		return []model.TransactionResponse{}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find organizer", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	rows, err := in.Querier.ListTransactionsByOrganizer(ctx, organizer.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list organizer transactions", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	res := make([]model.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		item := toTransactionResponse(row.Transaction)
		item.EventTitle = row.EventTitle
		item.TicketTypeName = row.TicketTypeName
		item.UserName = row.UserName
		item.UserEmail = row.UserEmail
		res = append(res, item)
	}

	return res, nil
}

// GetTransactionByID is visible to the purchaser and to the organizer of the event.
func (in TransactionService) GetTransactionByID(ctx context.Context, transactionID, userID int64) (model.TransactionResponse, error) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.GetTransactionByID")
	defer span.End()

	detail, err := in.Querier.FindTransactionDetailByID(ctx, transactionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.TransactionResponse{}, errs.New(errs.KindNotFound, "Transaction not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find transaction", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.TransactionResponse{}, err
	}

	if detail.Transaction.UserID != userID && detail.OrganizerUserID != userID {
		return model.TransactionResponse{}, errs.New(errs.KindForbidden, "You are not allowed to view this transaction")
	}

	res := toTransactionResponse(detail.Transaction)
	res.EventTitle = detail.EventTitle
	res.TicketTypeName = detail.TicketTypeName
	res.UserName = detail.UserName
	res.UserEmail = detail.UserEmail

	return res, nil
}

func (in TransactionService) lockTransaction(ctx context.Context, q *sqlgen.Queries, transactionID int64) (sqlgen.Transaction, error) {
	trx, err := q.FindTransactionByIDForUpdate(ctx, transactionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return trx, errs.New(errs.KindNotFound, "Transaction not found")
	}
	if err != nil {
		return trx, fmt.Errorf("lock transaction: %w", err)
	}

	return trx, nil
}

// lockOrganizerTransaction locks the transaction and checks that the caller organizes its event.
func (in TransactionService) lockOrganizerTransaction(ctx context.Context, q *sqlgen.Queries, transactionID, organizerUserID int64) (sqlgen.Transaction, error) {
	organizer, err := q.FindOrganizerByUserID(ctx, organizerUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlgen.Transaction{}, errs.New(errs.KindNotFound, "Organizer not found")
	}
	if err != nil {
		return sqlgen.Transaction{}, fmt.Errorf("find organizer: %w", err)
	}

	trx, err := in.lockTransaction(ctx, q, transactionID)
	if err != nil {
		return trx, err
	}

	event, err := q.FindEventByID(ctx, trx.EventID)
	if errors.Is(err, pgx.ErrNoRows) {
		return trx, errs.New(errs.KindNotFound, "Event not found")
	}
	if err != nil {
		return trx, fmt.Errorf("find event: %w", err)
	}

	if event.OrganizerID != organizer.ID {
		return trx, errs.New(errs.KindForbidden, "You are not the organizer of this event")
	}

	return trx, nil
}

func (in TransactionService) transition(ctx context.Context, q *sqlgen.Queries, trx sqlgen.Transaction, status string, now time.Time) (sqlgen.Transaction, error) {
	updated, err := q.UpdateTransactionStatus(ctx, sqlgen.UpdateTransactionStatusParams{
		ToStatus:   status,
		UpdatedAt:  common.Timestamptz(now),
		ID:         trx.ID,
		FromStatus: trx.Status,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return updated, errs.New(errs.KindInvalidState, fmt.Sprintf("Transaction is no longer %s", trx.Status))
	}
	if err != nil {
		return updated, fmt.Errorf("update transaction status: %w", err)
	}

	return updated, nil
}
