package event

import (
	"context"
	"encoding/json"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/otel"
	"event-ticket/model"
	"log/slog"
	"time"
)

type EmailEvent struct {
	Mailer  contract.Mailer
	Timeout time.Duration
}

func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "send email event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "EmailEvent.SendEmailHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	reqAttr := slog.Any(constant.LogFieldPayload, string(msg))

	if req.To == "" {
		slog.WarnContext(ctx, "send email event without recipient", reqAttr, traceIdAttr)
		return nil
	}

	// A template that cannot render will never render; redelivery would not help.
	body, err := in.Mailer.Render(req.Template, req.Data)
	if err != nil {
		slog.WarnContext(ctx, "send email event render error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		return nil
	}

	err = in.Mailer.Send([]string{req.To}, req.Subject, body)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "send email event send error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		return err
	}

	slog.InfoContext(ctx, "send email event success", slog.String("template", req.Template), traceIdAttr)
	return nil
}
