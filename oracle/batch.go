package oracle

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/astroracle/starway/core"
)

// BatchResolver runs many resolutions concurrently on a bounded worker
// pool. Each worker performs at most one gateway round trip (the inquiry
// selection), so the pool size bounds upstream concurrency.
type BatchResolver struct {
	engine *Engine
	pool   *ants.Pool
	logger *slog.Logger
}

// BatchOption configures a BatchResolver.
type BatchOption func(*BatchResolver) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BatchOption {
	return func(b *BatchResolver) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithBatchLogger sets a custom logger.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchResolver) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBatchResolver creates a batch resolver over an engine.
func NewBatchResolver(engine *Engine, opts ...BatchOption) (*BatchResolver, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &BatchResolver{
		engine: engine,
		pool:   pool,
		logger: slog.Default().With("component", "batch-resolver"),
	}
	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}
	return b, nil
}

// ResolveAll resolves every request and returns bundles in request order.
// Individual resolutions never fail (absent slots stand in for failures),
// so the result slice is always fully populated.
func (b *BatchResolver) ResolveAll(ctx context.Context, requests []Request) []core.ResolutionBundle {
	results := make([]core.ResolutionBundle, len(requests))

	var wg sync.WaitGroup
	for i := range requests {
		i := i
		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			results[i] = b.engine.Resolve(ctx, requests[i])
		})
		if err != nil {
			// Pool saturated or released; resolve inline rather than drop.
			b.logger.Warn("pool submit failed, resolving inline", "err", err)
			results[i] = b.engine.Resolve(ctx, requests[i])
			wg.Done()
		}
	}
	wg.Wait()

	return results
}

// Release shuts down the worker pool.
func (b *BatchResolver) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
