package otel

import (
	"context"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"strings"
)

// PgxCustomTracer opens a client span per query, named after the sqlc query when present.
type PgxCustomTracer struct{}

func (p PgxCustomTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	spanName := "pgx.query"
	attrs := []attribute.KeyValue{
		attribute.String("db.system", "postgresql"),
		attribute.String("db.statement", data.SQL),
		attribute.Int("db.args.count", len(data.Args)),
	}

	if name := queryName(data.SQL); name != "" {
		spanName += " " + name
		attrs = append(attrs, attribute.String("db.operation.name", name))
	}

	ctx, span := Tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attrs...)

	return ctx
}

func (p PgxCustomTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if data.Err != nil {
		span.SetStatus(codes.Error, data.Err.Error())
		span.RecordError(data.Err)
		return
	}

	span.SetStatus(codes.Ok, "")
	span.SetAttributes(
		attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()),
	)
}

// queryName extracts X from the leading "-- name: X :kind" comment sqlc writes.
func queryName(sql string) string {
	rest, ok := strings.CutPrefix(strings.TrimSpace(sql), "-- name: ")
	if !ok {
		return ""
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
