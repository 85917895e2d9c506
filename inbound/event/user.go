package event

import (
	"context"
	"encoding/json"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/otel"
	"event-ticket/model"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"time"
)

type UserEvent struct {
	Rewarder contract.ReferralRewarder
	Validate *validator.Validate
	Timeout  time.Duration
}

func (in UserEvent) ReferralHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.UserReferredEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "user referred event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "UserEvent.ReferralHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.InfoContext(ctx, "user referred event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	err = in.Validate.StructCtx(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "user referred event validation error", slog.Any(constant.LogFieldErr, err), traceIdAttr)
		return nil
	}

	err = in.Rewarder.Reward(ctx, req)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "user referred event reward error", slog.Any(constant.LogFieldErr, err), traceIdAttr)
		return err
	}

	slog.InfoContext(ctx, "user referred event success", traceIdAttr)
	return nil
}
