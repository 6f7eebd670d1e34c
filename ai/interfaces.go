package ai

import "context"

// StreamFunc receives one incremental text delta from a streaming completion.
// Returning a non-nil error stops the stream; the gateway releases the
// underlying network resource and returns that error to the caller.
type StreamFunc func(ctx context.Context, delta []byte) error

// Gateway is the chat-completion boundary. Implementations must be
// thread-safe for concurrent use.
//
// Both methods perform exactly one round trip; no retries happen inside the
// gateway. Any transport failure, non-2xx status, timeout or malformed
// response is returned as an error wrapping ErrGateway.
type Gateway interface {
	// Complete sends one blocking chat completion and returns the response
	// text. The model identifier selects which upstream model serves the
	// call; it must be one of the models the gateway was configured with.
	Complete(ctx context.Context, system, prompt, model string) (string, error)

	// CompleteStream opens one streaming chat completion and invokes fn for
	// every text delta, in arrival order. It returns once the stream ends,
	// fn returns an error, or ctx is cancelled.
	CompleteStream(ctx context.Context, system, prompt, model string, fn StreamFunc) error

	// Close releases resources held by the gateway.
	Close() error
}
