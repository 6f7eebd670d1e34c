package mock

import (
	"context"
	"sync"

	"github.com/astroracle/starway/ai"
)

// Gateway is a test double for ai.Gateway.
// It allows custom behavior injection via function fields.
type Gateway struct {
	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns DefaultResponse.
	CompleteFunc func(ctx context.Context, system, prompt, model string) (string, error)

	// CompleteStreamFunc is called by CompleteStream if set.
	// If nil, CompleteStream delivers DefaultDeltas one at a time.
	CompleteStreamFunc func(ctx context.Context, system, prompt, model string, fn ai.StreamFunc) error

	// DefaultResponse is returned by the default Complete behavior.
	DefaultResponse string

	// DefaultDeltas is streamed by the default CompleteStream behavior.
	DefaultDeltas []string

	mu          sync.Mutex
	completes   int
	streams     int
	lastPrompts []string
}

// NewGateway creates a mock gateway with benign default behavior.
// Note: returns the concrete type so tests can assert on call counts.
func NewGateway() *Gateway {
	return &Gateway{
		DefaultResponse: "mock response",
		DefaultDeltas:   []string{"mock ", "stream"},
	}
}

var _ ai.Gateway = (*Gateway)(nil)

// Complete records the call and either delegates to CompleteFunc or returns
// DefaultResponse.
func (g *Gateway) Complete(ctx context.Context, system, prompt, model string) (string, error) {
	g.mu.Lock()
	g.completes++
	g.lastPrompts = append(g.lastPrompts, prompt)
	g.mu.Unlock()

	if g.CompleteFunc != nil {
		return g.CompleteFunc(ctx, system, prompt, model)
	}
	return g.DefaultResponse, nil
}

// CompleteStream records the call and either delegates to CompleteStreamFunc
// or delivers DefaultDeltas in order.
func (g *Gateway) CompleteStream(ctx context.Context, system, prompt, model string, fn ai.StreamFunc) error {
	g.mu.Lock()
	g.streams++
	g.lastPrompts = append(g.lastPrompts, prompt)
	g.mu.Unlock()

	if g.CompleteStreamFunc != nil {
		return g.CompleteStreamFunc(ctx, system, prompt, model, fn)
	}
	for _, d := range g.DefaultDeltas {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, []byte(d)); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for the mock gateway.
func (g *Gateway) Close() error {
	return nil
}

// CompleteCalls returns how many times Complete was invoked.
func (g *Gateway) CompleteCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.completes
}

// StreamCalls returns how many times CompleteStream was invoked.
func (g *Gateway) StreamCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.streams
}

// TotalCalls returns the combined number of gateway round trips.
func (g *Gateway) TotalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.completes + g.streams
}

// LastPrompt returns the most recent prompt sent through the gateway,
// or "" if none.
func (g *Gateway) LastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.lastPrompts) == 0 {
		return ""
	}
	return g.lastPrompts[len(g.lastPrompts)-1]
}

// Reset clears call counts, recorded prompts and injected functions.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.completes = 0
	g.streams = 0
	g.lastPrompts = nil
	g.CompleteFunc = nil
	g.CompleteStreamFunc = nil
}
