package oracle

import "errors"

// Constructor validation errors
var (
	// ErrCatalogRequired indicates a nil catalog was passed to New.
	ErrCatalogRequired = errors.New("catalog is required")

	// ErrGatewayRequired indicates a nil gateway was passed to New.
	ErrGatewayRequired = errors.New("gateway is required")

	// ErrEngineRequired indicates a nil engine was passed to NewBatchResolver.
	ErrEngineRequired = errors.New("engine is required")
)

// errStreamStopped signals that the stream consumer stopped iterating; it
// never escapes the package.
var errStreamStopped = errors.New("stream consumer stopped")
