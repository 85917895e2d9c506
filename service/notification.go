package service

import (
	"context"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/otel"
	"event-ticket/model"
	"log/slog"
)

type recipient uint8

const (
	recipientPurchaser recipient = iota
	recipientOrganizer
)

// notify publishes an email request for a committed transaction.
// Delivery is best effort, failures are only logged.
func (in TransactionService) notify(ctx context.Context, transactionID int64, to recipient, subject, template string) {
	ctx, span := otel.Tracer.Start(ctx, "TransactionService.notify")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if in.Publisher == nil {
		return
	}

	detail, err := in.Querier.FindTransactionDetailByID(ctx, transactionID)
	if err != nil {
		slog.WarnContext(ctx, "skip notification, transaction detail unavailable", traceIdAttr,
			slog.Int64("transaction_id", transactionID), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return
	}

	address := detail.UserEmail
	if to == recipientOrganizer {
		address = detail.OrganizerEmail
	}

	msg := model.SendEmailEventMessage{
		To:       address,
		Subject:  subject,
		Template: template,
		Data: map[string]any{
			"user_name":        detail.UserName,
			"event_title":      detail.EventTitle,
			"transaction_id":   detail.Transaction.ID,
			"ticket_type_name": detail.TicketTypeName,
			"ticket_qty":       detail.Transaction.TicketQty,
			"final_price":      detail.Transaction.FinalPrice,
		},
	}

	if err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, msg); err != nil {
		slog.WarnContext(ctx, "failed to publish transaction email", traceIdAttr,
			slog.Int64("transaction_id", transactionID), slog.Any(constant.LogFieldErr, err))
		return
	}
}
