package service

import (
	"event-ticket/common"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"
)

func toTransactionResponse(trx sqlgen.Transaction) model.TransactionResponse {
	return model.TransactionResponse{
		ID:           trx.ID,
		UserID:       trx.UserID,
		EventID:      trx.EventID,
		TicketTypeID: trx.TicketTypeID,
		VoucherID:    common.Int8Ptr(trx.VoucherID),
		CouponID:     common.Int8Ptr(trx.CouponID),
		TicketQty:    trx.TicketQty,
		TotalPrice:   trx.TotalPrice,
		PointsUsed:   trx.PointsUsed,
		FinalPrice:   trx.FinalPrice,
		Status:       trx.Status,
		PaymentProof: common.TextPtr(trx.PaymentProof),
		ExpiredAt:    trx.ExpiredAt.Time,
		CreatedAt:    trx.CreatedAt.Time,
		UpdatedAt:    trx.UpdatedAt.Time,
	}
}
