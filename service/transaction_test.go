package service

import (
	"context"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/mock/gomock"
	"time"
)

func (s *TransactionServiceTestSuite) TestCreateTransaction() {
	now := common.Timestamptz(fixedTime)

	testCases := []struct {
		name        string
		eventID     int64
		input       model.CreateTransactionRequest
		setupMock   func()
		expected    model.TransactionResponse
		expectedErr error
	}{
		{
			name:    "zero quantity",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     0,
			},
			setupMock:   func() {},
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:    "negative points",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     1,
				PointsToUse:  -1,
			},
			setupMock:   func() {},
			expectedErr: errs.ErrInvalidPoints,
		},
		{
			name:    "ticket type not found",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     1,
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:    "ticket type belongs to another event",
			eventID: 2,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     1,
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(20))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrTicketTypeMismatch,
		},
		{
			name:    "not enough seats",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     3,
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(2))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInsufficientInventory,
		},
		{
			name:    "invalid voucher rolls back the reservation",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     2,
				VoucherCode:  "NOPE",
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(20))
				s.PgxMock.ExpectExec("name: ReserveTicketTypeSeats ").
					WithArgs(int32(2), int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectQuery("name: FindActiveVoucherForUpdate ").
					WithArgs(int64(1), "NOPE", now).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidVoucher,
		},
		{
			name:    "voucher usage limit reached",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     2,
				VoucherCode:  "JAZZ10",
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(20))
				s.PgxMock.ExpectExec("name: ReserveTicketTypeSeats ").
					WithArgs(int32(2), int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectQuery("name: FindActiveVoucherForUpdate ").
					WithArgs(int64(1), "JAZZ10", now).
					WillReturnRows(voucherRows(constant.DiscountTypePercentage, 10, 5, 5))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrVoucherExhausted,
		},
		{
			name:    "invalid coupon",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     2,
				CouponCode:   "USED",
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(20))
				s.PgxMock.ExpectExec("name: ReserveTicketTypeSeats ").
					WithArgs(int32(2), int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectQuery("name: FindUsableCouponForUpdate ").
					WithArgs(int64(7), "USED", now).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidCoupon,
		},
		{
			name:    "insert transaction error",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     1,
			},
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(20))
				s.PgxMock.ExpectExec("name: ReserveTicketTypeSeats ").
					WithArgs(int32(1), int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectQuery("name: FindUserForUpdate ").
					WithArgs(int64(7)).
					WillReturnRows(userRows(0))
				s.PgxMock.ExpectQuery("name: InsertTransaction ").
					WithArgs(anyArgs(13)...).
					WillReturnError(fmt.Errorf("database error"))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: fmt.Errorf("database error"),
		},
		{
			name:    "success with voucher coupon and points",
			eventID: 1,
			input: model.CreateTransactionRequest{
				TicketTypeID: 10,
				Quantity:     2,
				VoucherCode:  "JAZZ10",
				CouponCode:   "REF-BUDI01",
				PointsToUse:  30_000,
			},
			setupMock: func() {
				created := newTransaction(constant.TransactionStatusWaitingPayment)
				created.ExpiredAt = common.Timestamptz(fixedTime.Add(2 * time.Hour))
				created.CreatedAt = now
				created.UpdatedAt = now

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: LockTicketTypeForUpdate ").
					WithArgs(int64(10)).
					WillReturnRows(ticketTypeRows(20))
				s.PgxMock.ExpectExec("name: ReserveTicketTypeSeats ").
					WithArgs(int32(2), int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectQuery("name: FindActiveVoucherForUpdate ").
					WithArgs(int64(1), "JAZZ10", now).
					WillReturnRows(voucherRows(constant.DiscountTypePercentage, 10, 100, 3))
				s.PgxMock.ExpectQuery("name: FindUsableCouponForUpdate ").
					WithArgs(int64(7), "REF-BUDI01", now).
					WillReturnRows(couponRows(50_000))
				s.PgxMock.ExpectQuery("name: FindUserForUpdate ").
					WithArgs(int64(7)).
					WillReturnRows(userRows(20_000))
				s.PgxMock.ExpectExec("name: IncrementVoucherUsage ").
					WithArgs(int64(5)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectExec("name: MarkCouponUsed ").
					WithArgs(int64(9)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectExec("name: DebitUserPoint ").
					WithArgs(int64(20_000), int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectExec("name: InsertPoint ").
					WithArgs(int64(7), int64(-20_000), constant.PointTypeUsed, "Used for transaction on event: Java Jazz", pgtype.Timestamptz{}).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectQuery("name: InsertTransaction ").
					WithArgs(int64(7), int64(1), int64(10),
						pgtype.Int8{Int64: 5, Valid: true}, pgtype.Int8{Int64: 9, Valid: true},
						int32(2), int64(200_000), int64(20_000), int64(110_000),
						constant.TransactionStatusWaitingPayment,
						common.Timestamptz(fixedTime.Add(2*time.Hour)), now, now).
					WillReturnRows(transactionRows(created))
				s.PgxMock.ExpectCommit()
			},
			expected: model.TransactionResponse{
				ID:           100,
				UserID:       7,
				EventID:      1,
				TicketTypeID: 10,
				VoucherID:    ptr(int64(5)),
				CouponID:     ptr(int64(9)),
				TicketQty:    2,
				TotalPrice:   200_000,
				PointsUsed:   20_000,
				FinalPrice:   110_000,
				Status:       constant.TransactionStatusWaitingPayment,
				ExpiredAt:    fixedTime.Add(2 * time.Hour),
				CreatedAt:    fixedTime,
				UpdatedAt:    fixedTime,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.service.CreateTransaction(context.Background(), 7, tc.eventID, tc.input)

			if tc.expectedErr != nil {
				s.Error(err)
				if _, ok := tc.expectedErr.(*errs.Error); ok {
					s.ErrorIs(err, tc.expectedErr)
				}
			} else {
				s.NoError(err)
				s.Equal(tc.expected, res)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TransactionServiceTestSuite) TestUploadPaymentProof() {
	now := common.Timestamptz(fixedTime)
	proof := "https://cdn.example.com/proof.jpg"

	testCases := []struct {
		name        string
		userID      int64
		setupMock   func()
		expectedErr error
	}{
		{
			name:   "transaction not found",
			userID: 7,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:   "not the owner",
			userID: 8,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(newTransaction(constant.TransactionStatusWaitingPayment)))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrForbidden,
		},
		{
			name:   "already waiting confirmation",
			userID: 7,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(newTransaction(constant.TransactionStatusWaitingConfirmation)))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidState,
		},
		{
			name:   "deadline passed expires the transaction",
			userID: 7,
			setupMock: func() {
				trx := newTransaction(constant.TransactionStatusWaitingPayment)
				trx.ExpiredAt = common.Timestamptz(fixedTime.Add(-time.Minute))

				expired := trx
				expired.Status = constant.TransactionStatusExpired
				expired.UpdatedAt = now

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				expectCompensation(s.PgxMock, trx)
				s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
					WithArgs(constant.TransactionStatusExpired, now, int64(100), constant.TransactionStatusWaitingPayment).
					WillReturnRows(transactionRows(expired))
				s.PgxMock.ExpectCommit()
			},
			expectedErr: errs.ErrPaymentDeadlineExpired,
		},
		{
			name:   "success",
			userID: 7,
			setupMock: func() {
				trx := newTransaction(constant.TransactionStatusWaitingPayment)

				updated := trx
				updated.Status = constant.TransactionStatusWaitingConfirmation
				updated.PaymentProof = pgtype.Text{String: proof, Valid: true}
				updated.UpdatedAt = now

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				s.PgxMock.ExpectQuery("name: UpdateTransactionPaymentProof ").
					WithArgs(pgtype.Text{String: proof, Valid: true}, constant.TransactionStatusWaitingConfirmation,
						now, int64(100), constant.TransactionStatusWaitingPayment).
					WillReturnRows(transactionRows(updated))
				s.PgxMock.ExpectCommit()
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.service.UploadPaymentProof(context.Background(), 100, tc.userID, proof)

			if tc.expectedErr != nil {
				s.ErrorIs(err, tc.expectedErr)
			} else {
				s.NoError(err)
				s.Equal(constant.TransactionStatusWaitingConfirmation, res.Status)
				s.Require().NotNil(res.PaymentProof)
				s.Equal(proof, *res.PaymentProof)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TransactionServiceTestSuite) TestConfirmTransaction() {
	now := common.Timestamptz(fixedTime)

	testCases := []struct {
		name        string
		setupMock   func()
		expectedErr error
	}{
		{
			name: "caller has no organizer profile",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name: "organizer of another event",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnRows(organizerRows(3, 30))
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(newTransaction(constant.TransactionStatusWaitingConfirmation)))
				s.PgxMock.ExpectQuery("name: FindEventByID ").
					WithArgs(int64(1)).
					WillReturnRows(eventRows(4))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrForbidden,
		},
		{
			name: "still waiting payment",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnRows(organizerRows(3, 30))
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(newTransaction(constant.TransactionStatusWaitingPayment)))
				s.PgxMock.ExpectQuery("name: FindEventByID ").
					WithArgs(int64(1)).
					WillReturnRows(eventRows(3))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidState,
		},
		{
			name: "success notifies the purchaser",
			setupMock: func() {
				trx := newTransaction(constant.TransactionStatusWaitingConfirmation)
				done := trx
				done.Status = constant.TransactionStatusDone
				done.UpdatedAt = now

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnRows(organizerRows(3, 30))
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				s.PgxMock.ExpectQuery("name: FindEventByID ").
					WithArgs(int64(1)).
					WillReturnRows(eventRows(3))
				s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
					WithArgs(constant.TransactionStatusDone, now, int64(100), constant.TransactionStatusWaitingConfirmation).
					WillReturnRows(transactionRows(done))
				s.PgxMock.ExpectCommit()
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnRows(transactionDetailRows(done))

				s.publisher.EXPECT().
					Publish(gomock.Any(), constant.SubjectSendEmail, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, payload []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
						s.Contains(string(payload), `"to":"budi@example.com"`)
						s.Contains(string(payload), constant.EmailTemplateTransactionConfirmed)
						return nil, nil
					})
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.service.ConfirmTransaction(context.Background(), 100, 30)

			if tc.expectedErr != nil {
				s.ErrorIs(err, tc.expectedErr)
			} else {
				s.NoError(err)
				s.Equal(constant.TransactionStatusDone, res.Status)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TransactionServiceTestSuite) TestRejectTransaction() {
	now := common.Timestamptz(fixedTime)

	testCases := []struct {
		name        string
		setupMock   func()
		expectedErr error
	}{
		{
			name: "already done",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnRows(organizerRows(3, 30))
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(newTransaction(constant.TransactionStatusDone)))
				s.PgxMock.ExpectQuery("name: FindEventByID ").
					WithArgs(int64(1)).
					WillReturnRows(eventRows(3))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidState,
		},
		{
			name: "compensation failure rolls back",
			setupMock: func() {
				trx := newTransaction(constant.TransactionStatusWaitingConfirmation)

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnRows(organizerRows(3, 30))
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				s.PgxMock.ExpectQuery("name: FindEventByID ").
					WithArgs(int64(1)).
					WillReturnRows(eventRows(3))
				s.PgxMock.ExpectExec("name: ReleaseTicketTypeSeats ").
					WithArgs(int32(2), int64(10)).
					WillReturnError(fmt.Errorf("database error"))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: fmt.Errorf("database error"),
		},
		{
			name: "success restores every resource",
			setupMock: func() {
				trx := newTransaction(constant.TransactionStatusWaitingConfirmation)
				rejected := trx
				rejected.Status = constant.TransactionStatusRejected
				rejected.UpdatedAt = now

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
					WithArgs(int64(30)).
					WillReturnRows(organizerRows(3, 30))
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				s.PgxMock.ExpectQuery("name: FindEventByID ").
					WithArgs(int64(1)).
					WillReturnRows(eventRows(3))
				expectCompensation(s.PgxMock, trx)
				s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
					WithArgs(constant.TransactionStatusRejected, now, int64(100), constant.TransactionStatusWaitingConfirmation).
					WillReturnRows(transactionRows(rejected))
				s.PgxMock.ExpectCommit()
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnRows(transactionDetailRows(rejected))

				s.publisher.EXPECT().
					Publish(gomock.Any(), constant.SubjectSendEmail, gomock.Any()).
					Return(nil, fmt.Errorf("nats unavailable"))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.service.RejectTransaction(context.Background(), 100, 30)

			if tc.expectedErr != nil {
				s.Error(err)
				if _, ok := tc.expectedErr.(*errs.Error); ok {
					s.ErrorIs(err, tc.expectedErr)
				}
			} else {
				s.NoError(err)
				s.Equal(constant.TransactionStatusRejected, res.Status)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TransactionServiceTestSuite) TestCancelTransaction() {
	now := common.Timestamptz(fixedTime)

	testCases := []struct {
		name        string
		userID      int64
		status      string
		setupMock   func(trx sqlgen.Transaction)
		expectedErr error
	}{
		{
			name:   "not the owner",
			userID: 8,
			status: constant.TransactionStatusWaitingPayment,
			setupMock: func(trx sqlgen.Transaction) {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrForbidden,
		},
		{
			name:   "terminal status",
			userID: 7,
			status: constant.TransactionStatusExpired,
			setupMock: func(trx sqlgen.Transaction) {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidState,
		},
		{
			name:   "concurrent transition loses the status guard",
			userID: 7,
			status: constant.TransactionStatusWaitingPayment,
			setupMock: func(trx sqlgen.Transaction) {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				expectCompensation(s.PgxMock, trx)
				s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
					WithArgs(constant.TransactionStatusCancelled, now, int64(100), constant.TransactionStatusWaitingPayment).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectRollback()
			},
			expectedErr: errs.ErrInvalidState,
		},
		{
			name:   "success notifies the organizer",
			userID: 7,
			status: constant.TransactionStatusWaitingConfirmation,
			setupMock: func(trx sqlgen.Transaction) {
				cancelled := trx
				cancelled.Status = constant.TransactionStatusCancelled
				cancelled.UpdatedAt = now

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(trx))
				expectCompensation(s.PgxMock, trx)
				s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
					WithArgs(constant.TransactionStatusCancelled, now, int64(100), constant.TransactionStatusWaitingConfirmation).
					WillReturnRows(transactionRows(cancelled))
				s.PgxMock.ExpectCommit()
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnRows(transactionDetailRows(cancelled))

				s.publisher.EXPECT().
					Publish(gomock.Any(), constant.SubjectSendEmail, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, payload []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
						s.Contains(string(payload), `"to":"organizer@example.com"`)
						return nil, nil
					})
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock(newTransaction(tc.status))

			res, err := s.service.CancelTransaction(context.Background(), 100, tc.userID)

			if tc.expectedErr != nil {
				s.ErrorIs(err, tc.expectedErr)
			} else {
				s.NoError(err)
				s.Equal(constant.TransactionStatusCancelled, res.Status)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TransactionServiceTestSuite) TestGetOrganizerTransactions() {
	s.Run("no organizer profile", func() {
		s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
			WithArgs(int64(30)).
			WillReturnError(pgx.ErrNoRows)

		res, err := s.service.GetOrganizerTransactions(context.Background(), 30)

		s.NoError(err)
		s.Empty(res)
		s.NoError(s.PgxMock.ExpectationsWereMet())
	})

	s.Run("lists transactions of owned events", func() {
		trx := newTransaction(constant.TransactionStatusDone)
		columns := append(append([]string{}, transactionColumns...), "event_title", "ticket_type_name", "user_name", "user_email")

		s.PgxMock.ExpectQuery("name: FindOrganizerByUserID ").
			WithArgs(int64(30)).
			WillReturnRows(organizerRows(3, 30))
		s.PgxMock.ExpectQuery("name: ListTransactionsByOrganizer ").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(append(transactionValues(trx), "Java Jazz", "VIP", "Budi", "budi@example.com")...))

		res, err := s.service.GetOrganizerTransactions(context.Background(), 30)

		s.NoError(err)
		s.Require().Len(res, 1)
		s.Equal("Budi", res[0].UserName)
		s.Equal("Java Jazz", res[0].EventTitle)
		s.NoError(s.PgxMock.ExpectationsWereMet())
	})
}

func (s *TransactionServiceTestSuite) TestGetMyTransactions() {
	trx := newTransaction(constant.TransactionStatusWaitingPayment)
	columns := append(append([]string{}, transactionColumns...), "event_title", "ticket_type_name")

	s.PgxMock.ExpectQuery("name: ListTransactionsByUser ").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(append(transactionValues(trx), "Java Jazz", "VIP")...))

	res, err := s.service.GetMyTransactions(context.Background(), 7)

	s.NoError(err)
	s.Require().Len(res, 1)
	s.Equal("VIP", res[0].TicketTypeName)
	s.Equal(int64(110_000), res[0].FinalPrice)
	s.NoError(s.PgxMock.ExpectationsWereMet())
}

func (s *TransactionServiceTestSuite) TestGetTransactionByID() {
	testCases := []struct {
		name        string
		userID      int64
		setupMock   func()
		expectedErr error
	}{
		{
			name:   "not found",
			userID: 7,
			setupMock: func() {
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:   "stranger",
			userID: 99,
			setupMock: func() {
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnRows(transactionDetailRows(newTransaction(constant.TransactionStatusDone)))
			},
			expectedErr: errs.ErrForbidden,
		},
		{
			name:   "purchaser",
			userID: 7,
			setupMock: func() {
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnRows(transactionDetailRows(newTransaction(constant.TransactionStatusDone)))
			},
		},
		{
			name:   "organizer",
			userID: 30,
			setupMock: func() {
				s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
					WithArgs(int64(100)).
					WillReturnRows(transactionDetailRows(newTransaction(constant.TransactionStatusDone)))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.service.GetTransactionByID(context.Background(), 100, tc.userID)

			if tc.expectedErr != nil {
				s.ErrorIs(err, tc.expectedErr)
			} else {
				s.NoError(err)
				s.Equal(int64(100), res.ID)
				s.Equal("budi@example.com", res.UserEmail)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
