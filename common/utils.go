package common

import (
	"context"
	"encoding/json"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/otel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"log/slog"
	"time"
)

func ExtractTraceIDFromCtx(ctx context.Context) slog.Attr {
	span := trace.SpanFromContext(ctx)
	traceId := ""

	if span != nil && span.SpanContext().HasTraceID() {
		traceId = span.SpanContext().TraceID().String()
	} else {
		traceId = ulid.Make().String()
	}

	return slog.Any(constant.LogFieldTraceId, traceId)
}

func UtilSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

func PublishMessage(ctx context.Context, publisher contract.Publisher, subject string, body any) error {
	ctx, span := otel.Tracer.Start(ctx, "publishMessage")
	defer span.End()

	traceIdAttr := ExtractTraceIDFromCtx(ctx)

	data, err := json.Marshal(body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		UtilSpanError(span, err)
		return err
	}

	_, err = publisher.Publish(ctx, subject, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		UtilSpanError(span, err)
		return err
	}

	return nil
}

func Timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func Int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}

	return &v.Int64
}

func TextPtr(v pgtype.Text) *string {
	if !v.Valid {
		return nil
	}

	return &v.String
}
