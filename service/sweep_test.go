package service

import (
	"context"
	"event-ticket/common"
	"event-ticket/common/constant"
	"fmt"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/mock/gomock"
	"time"
)

func (s *TransactionServiceTestSuite) TestExpireTransactions() {
	now := common.Timestamptz(fixedTime)

	testCases := []struct {
		name          string
		setupMock     func()
		expectedCount int
		expectError   bool
	}{
		{
			name: "find candidates error",
			setupMock: func() {
				s.PgxMock.ExpectQuery("name: FindExpiredTransactionIDs ").
					WithArgs(now).
					WillReturnError(fmt.Errorf("database error"))
			},
			expectError: true,
		},
		{
			name: "nothing to expire",
			setupMock: func() {
				s.PgxMock.ExpectQuery("name: FindExpiredTransactionIDs ").
					WithArgs(now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
		},
		{
			name: "expires eligible rows and skips the rest",
			setupMock: func() {
				expired := newTransaction(constant.TransactionStatusWaitingPayment)
				expired.ExpiredAt = common.Timestamptz(fixedTime.Add(-time.Minute))

				paid := newTransaction(constant.TransactionStatusWaitingConfirmation)
				paid.ID = 101

				s.PgxMock.ExpectQuery("name: FindExpiredTransactionIDs ").
					WithArgs(now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)).AddRow(int64(101)).AddRow(int64(102)))

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(100)).
					WillReturnRows(transactionRows(expired))
				expectCompensation(s.PgxMock, expired)
				s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
					WithArgs(constant.TransactionStatusExpired, now, int64(100), constant.TransactionStatusWaitingPayment).
					WillReturnRows(transactionRows(expired))
				s.PgxMock.ExpectCommit()

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(101)).
					WillReturnRows(transactionRows(paid))
				s.PgxMock.ExpectCommit()

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
					WithArgs(int64(102)).
					WillReturnError(fmt.Errorf("lock timeout"))
				s.PgxMock.ExpectRollback()
			},
			expectedCount: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			count, err := s.service.ExpireTransactions(context.Background())

			if tc.expectError {
				s.Error(err)
			} else {
				s.NoError(err)
			}
			s.Equal(tc.expectedCount, count)

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TransactionServiceTestSuite) TestCancelTransactions() {
	now := common.Timestamptz(fixedTime)
	cutoff := common.Timestamptz(fixedTime.Add(-72 * time.Hour))

	s.Run("cancels stale confirmations and notifies the purchaser", func() {
		stale := newTransaction(constant.TransactionStatusWaitingConfirmation)
		stale.UpdatedAt = common.Timestamptz(fixedTime.Add(-80 * time.Hour))

		cancelled := stale
		cancelled.Status = constant.TransactionStatusCancelled
		cancelled.UpdatedAt = now

		s.PgxMock.ExpectQuery("name: FindStaleConfirmationTransactionIDs ").
			WithArgs(cutoff).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))

		s.PgxMock.ExpectBegin()
		s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
			WithArgs(int64(100)).
			WillReturnRows(transactionRows(stale))
		expectCompensation(s.PgxMock, stale)
		s.PgxMock.ExpectQuery("name: UpdateTransactionStatus ").
			WithArgs(constant.TransactionStatusCancelled, now, int64(100), constant.TransactionStatusWaitingConfirmation).
			WillReturnRows(transactionRows(cancelled))
		s.PgxMock.ExpectCommit()
		s.PgxMock.ExpectQuery("name: FindTransactionDetailByID ").
			WithArgs(int64(100)).
			WillReturnRows(transactionDetailRows(cancelled))

		s.publisher.EXPECT().
			Publish(gomock.Any(), constant.SubjectSendEmail, gomock.Any()).
			Return(nil, nil)

		count, err := s.service.CancelTransactions(context.Background())

		s.NoError(err)
		s.Equal(1, count)
		s.NoError(s.PgxMock.ExpectationsWereMet())
	})

	s.Run("row confirmed after selection is left alone", func() {
		recent := newTransaction(constant.TransactionStatusWaitingConfirmation)
		recent.UpdatedAt = common.Timestamptz(fixedTime.Add(-time.Hour))

		s.PgxMock.ExpectQuery("name: FindStaleConfirmationTransactionIDs ").
			WithArgs(cutoff).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))

		s.PgxMock.ExpectBegin()
		s.PgxMock.ExpectQuery("name: FindTransactionByIDForUpdate ").
			WithArgs(int64(100)).
			WillReturnRows(transactionRows(recent))
		s.PgxMock.ExpectCommit()

		count, err := s.service.CancelTransactions(context.Background())

		s.NoError(err)
		s.Zero(count)
		s.NoError(s.PgxMock.ExpectationsWereMet())
	})
}
