package contract

import (
	"context"
	"event-ticket/model"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type TransactionService interface {
	CreateTransaction(ctx context.Context, userID, eventID int64, req model.CreateTransactionRequest) (model.TransactionResponse, error)
	UploadPaymentProof(ctx context.Context, transactionID, userID int64, proof string) (model.TransactionResponse, error)
	ConfirmTransaction(ctx context.Context, transactionID, organizerUserID int64) (model.TransactionResponse, error)
	RejectTransaction(ctx context.Context, transactionID, organizerUserID int64) (model.TransactionResponse, error)
	CancelTransaction(ctx context.Context, transactionID, userID int64) (model.TransactionResponse, error)
	GetMyTransactions(ctx context.Context, userID int64) ([]model.TransactionResponse, error)
	GetOrganizerTransactions(ctx context.Context, userID int64) ([]model.TransactionResponse, error)
	GetTransactionByID(ctx context.Context, transactionID, userID int64) (model.TransactionResponse, error)
}

type TransactionSweeper interface {
	ExpireTransactions(ctx context.Context) (int, error)
	CancelTransactions(ctx context.Context) (int, error)
}

type ReferralRewarder interface {
	Reward(ctx context.Context, msg model.UserReferredEventMessage) error
}
