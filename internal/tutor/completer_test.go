package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMockCompleter_ReturnsCannedResponse(t *testing.T) {
	m := &MockCompleter{}
	got, err := m.Complete(context.Background(), "anything")
	require.NoError(t, err)
	assert.Contains(t, CannedResponses, got)
}

func TestMockCompleter_DeterministicPick(t *testing.T) {
	m := &MockCompleter{
		Responses: []string{"a", "b", "c"},
		Intn:      func(n int) int { return n - 1 },
	}
	got, err := m.Complete(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "c", got)
}

func TestMockCompleter_DelayWithinBounds(t *testing.T) {
	var asked int64
	m := &MockCompleter{
		MinDelay: 10 * time.Millisecond,
		MaxDelay: 30 * time.Millisecond,
		Int64N: func(n int64) int64 {
			asked = n
			return n - 1
		},
	}
	d := m.delay()
	assert.Equal(t, int64(20*time.Millisecond), asked)
	assert.GreaterOrEqual(t, d, m.MinDelay)
	assert.Less(t, d, m.MaxDelay)

	m.MaxDelay = m.MinDelay
	assert.Equal(t, m.MinDelay, m.delay())

	m.MinDelay = -time.Second
	m.MaxDelay = 0
	assert.Equal(t, time.Duration(0), m.delay())
}

func TestNewMockCompleter_Defaults(t *testing.T) {
	m := NewMockCompleter()
	assert.Equal(t, DefaultMinDelay, m.MinDelay)
	assert.Equal(t, DefaultMaxDelay, m.MaxDelay)
	assert.Len(t, m.Responses, 5)
}

func TestMockCompleter_RespectsCancellation(t *testing.T) {
	m := &MockCompleter{MinDelay: time.Hour, MaxDelay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Complete(ctx, "slow")
		done <- err
	}()
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Complete did not return after cancel")
	}
}

func TestCompleterFunc(t *testing.T) {
	var c Completer = CompleterFunc(func(_ context.Context, p string) (string, error) {
		return strings.ToUpper(p), nil
	})
	got, err := c.Complete(context.Background(), "via")
	require.NoError(t, err)
	assert.Equal(t, "VIA", got)
}

func TestPrompts_EmbedRawText(t *testing.T) {
	chat := ChatPrompt("  why vias?  ")
	assert.Contains(t, chat, `The user asked: "  why vias?  "`)
	assert.Contains(t, chat, "expert PCB design tutor")

	search := SearchPrompt("power supply")
	assert.Contains(t, search, `with the query: "power supply"`)
	assert.Contains(t, search, "suggest a personalized learning path")

	assert.Equal(t, `Based on your search for "power supply", here's a personalized learning path:`, SearchIntro("power supply"))
}

func TestWithKind(t *testing.T) {
	assert.Equal(t, PromptKind(""), KindFromContext(context.Background()))
	ctx := WithKind(context.Background(), KindSearch)
	assert.Equal(t, KindSearch, KindFromContext(ctx))
}

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec, tp
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestTracedCompleter_Success(t *testing.T) {
	rec, tp := newRecorder(t)
	c := &TracedCompleter{
		Next:      CompleterFunc(func(context.Context, string) (string, error) { return "reply", nil }),
		Tracer:    tp.Tracer("test"),
		SessionID: "s-1",
	}

	got, err := c.Complete(WithKind(context.Background(), KindChat), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "reply", got)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tutor.complete", spans[0].Name())
	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "chat", attrs["tracetutor.prompt.kind"].AsString())
	assert.Equal(t, int64(6), attrs["tracetutor.prompt.length"].AsInt64())
	assert.Equal(t, int64(5), attrs["tracetutor.response.length"].AsInt64())
	assert.Equal(t, "s-1", attrs["tracetutor.session.id"].AsString())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestTracedCompleter_Error(t *testing.T) {
	rec, tp := newRecorder(t)
	boom := errors.New("boom")
	c := &TracedCompleter{
		Next:   CompleterFunc(func(context.Context, string) (string, error) { return "ignored", boom }),
		Tracer: tp.Tracer("test"),
	}

	got, err := c.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
}
