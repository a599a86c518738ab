// Package tutor provides the completion collaborator behind the AI tutor panel.
//
// The session controller only depends on the Completer interface. The shipped
// implementation is MockCompleter, which waits a random interval and returns
// one of a handful of canned PCB design tips.
package tutor

import (
	"context"
	"math/rand/v2"
	"time"
)

// Completer turns a prompt into display text. Implementations may fail; the
// result is treated as opaque text by callers.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete implements Completer.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// CannedResponses are the replies MockCompleter picks from.
var CannedResponses = []string{
	"Great question! When designing PCB layouts, always consider your signal integrity first. Keep high-speed traces short and avoid sharp angles.",
	"For power distribution, make sure to use adequate copper pour and place decoupling capacitors close to your ICs.",
	"Ground planes are crucial for EMI reduction. Try to maintain a solid ground plane and avoid splitting it unnecessarily.",
	"When routing differential pairs, maintain consistent spacing and length matching to preserve signal quality.",
	"Component placement is key - group related components together and consider thermal management for power components.",
}

const (
	DefaultMinDelay = 1 * time.Second
	DefaultMaxDelay = 3 * time.Second
)

// MockCompleter stands in for a real model endpoint.
type MockCompleter struct {
	MinDelay  time.Duration
	MaxDelay  time.Duration
	Responses []string

	// Intn returns a value in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int
	// Int64N returns a value in [0, n). Defaults to math/rand/v2.
	Int64N func(n int64) int64
}

// Ensure MockCompleter implements Completer.
var _ Completer = (*MockCompleter)(nil)

// NewMockCompleter returns a mock with the default 1-3s delay.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{
		MinDelay:  DefaultMinDelay,
		MaxDelay:  DefaultMaxDelay,
		Responses: CannedResponses,
	}
}

// Complete implements Completer. The prompt is ignored.
// Returns ctx.Err() if the context ends before the delay elapses.
func (m *MockCompleter) Complete(ctx context.Context, _ string) (string, error) {
	timer := time.NewTimer(m.delay())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	responses := m.Responses
	if len(responses) == 0 {
		responses = CannedResponses
	}
	intn := m.Intn
	if intn == nil {
		intn = rand.IntN
	}
	return responses[intn(len(responses))], nil
}

func (m *MockCompleter) delay() time.Duration {
	lo, hi := m.MinDelay, m.MaxDelay
	if lo < 0 {
		lo = 0
	}
	if hi <= lo {
		return lo
	}
	int64n := m.Int64N
	if int64n == nil {
		int64n = rand.Int64N
	}
	return lo + time.Duration(int64n(int64(hi-lo)))
}
