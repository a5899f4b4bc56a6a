package postgres

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxStatementAttrLen = 512

const tracerName = "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"

// queryTracer opens a client span per statement and per batch. With tracing
// disabled the global provider is a no-op and spans cost nothing.
type queryTracer struct {
	tracer trace.Tracer
}

var (
	_ pgx.QueryTracer = (*queryTracer)(nil)
	_ pgx.BatchTracer = (*queryTracer)(nil)
)

func newQueryTracer(tp trace.TracerProvider) *queryTracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &queryTracer{tracer: tp.Tracer(tracerName)}
}

func (q *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx, _ = q.tracer.Start(ctx, spanName(data.SQL),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.statement", truncateStatement(data.SQL)),
		),
	)
	return ctx
}

func (*queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	endSpan(span, data.Err)
	span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))
	span.End()
}

func (q *queryTracer) TraceBatchStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchStartData) context.Context {
	size := 0
	if data.Batch != nil {
		size = data.Batch.Len()
	}
	ctx, _ = q.tracer.Start(ctx, "db.batch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.Int("db.batch.size", size),
		),
	)
	return ctx
}

func (*queryTracer) TraceBatchQuery(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchQueryData) {
	if data.Err != nil {
		trace.SpanFromContext(ctx).AddEvent("batch query failed", trace.WithAttributes(
			attribute.String("db.statement", truncateStatement(data.SQL)),
			attribute.String("error", data.Err.Error()),
		))
	}
}

func (*queryTracer) TraceBatchEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchEndData) {
	span := trace.SpanFromContext(ctx)
	endSpan(span, data.Err)
	span.End()
}

func endSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// spanName uses the statement verb, e.g. "db.SELECT".
func spanName(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "db.query"
	}
	verb := strings.ToUpper(fields[0])
	if verb == "WITH" {
		verb = "SELECT"
	}
	return "db." + verb
}

func truncateStatement(sql string) string {
	sql = strings.Join(strings.Fields(sql), " ")
	if len(sql) <= maxStatementAttrLen {
		return sql
	}
	cut := maxStatementAttrLen
	for cut > 0 && !utf8.RuneStart(sql[cut]) {
		cut--
	}
	return sql[:cut]
}
