package ai

import "errors"

// ErrGateway is the single error type every upstream failure wraps: transport
// errors, timeouts, non-2xx statuses and malformed responses all satisfy
// errors.Is(err, ErrGateway). Callers degrade to fallback behavior on it
// instead of inspecting the cause.
var ErrGateway = errors.New("llm gateway failure")
