package tutor

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type kindKey struct{}

// WithKind tags ctx with the template a prompt came from, for tracing.
func WithKind(ctx context.Context, kind PromptKind) context.Context {
	return context.WithValue(ctx, kindKey{}, kind)
}

// KindFromContext returns the kind set by WithKind, or "" if none.
func KindFromContext(ctx context.Context) PromptKind {
	k, _ := ctx.Value(kindKey{}).(PromptKind)
	return k
}

// TracedCompleter records a span around every call to Next.
type TracedCompleter struct {
	Next      Completer
	Tracer    oteltrace.Tracer
	SessionID string
}

// Ensure TracedCompleter implements Completer.
var _ Completer = (*TracedCompleter)(nil)

// Complete implements Completer.
func (c *TracedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := c.Tracer.Start(ctx, "tutor.complete",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("tracetutor.prompt.kind", string(KindFromContext(ctx))),
			attribute.Int("tracetutor.prompt.length", len(prompt)),
			attribute.String("tracetutor.session.id", c.SessionID),
		),
	)
	defer span.End()

	out, err := c.Next.Complete(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("tracetutor.response.length", len(out)))
	return out, nil
}
