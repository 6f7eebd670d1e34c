// Copyright 2025 Starway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package oracle

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/astroracle/starway/ai"
	"github.com/astroracle/starway/catalog"
	"github.com/astroracle/starway/core"
)

// Engine resolves requests against a fixed catalog through an LLM gateway.
// Construct one at process start and share it across requests.
type Engine struct {
	catalog      *catalog.Catalog
	gateway      ai.Gateway
	fastModel    string
	qualityModel string
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// WithModels sets the selection (fast) and interpretation (quality) model
// identifiers. The two tiers are a cost/latency tradeoff and are not
// interchangeable.
func WithModels(fast, quality string) Option {
	return func(e *Engine) {
		if fast != "" {
			e.fastModel = fast
		}
		if quality != "" {
			e.qualityModel = quality
		}
	}
}

// New creates a resolution engine over a catalog and a gateway.
func New(cat *catalog.Catalog, gateway ai.Gateway, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if gateway == nil {
		return nil, ErrGatewayRequired
	}

	e := &Engine{
		catalog:      cat,
		gateway:      gateway,
		fastModel:    "qwen-turbo",
		qualityModel: "qwen-plus",
		logger:       slog.Default().With("component", "oracle-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Catalog returns the engine's read-only catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Request is one complete resolution request.
type Request struct {
	BirthDate time.Time
	Now       time.Time // zero value means time.Now()
	Question  string
	UserName  string
}

// Resolve runs all three axis resolutions and returns the bundle. The two
// temporal axes are synchronous; the inquiry axis performs at most one
// gateway round trip. Any of the three slots may come back absent.
func (e *Engine) Resolve(ctx context.Context, req Request) core.ResolutionBundle {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	bundle := core.ResolutionBundle{
		BirthDate: req.BirthDate,
		Question:  strings.TrimSpace(req.Question),
		UserName:  strings.TrimSpace(req.UserName),
	}
	bundle.Origin = e.ResolveOrigin(req.BirthDate)
	bundle.Celestial = e.ResolveCelestial(now)
	bundle.Inquiry = e.ResolveInquiry(ctx, bundle.Question)

	e.logger.Debug("resolved bundle",
		"origin", bundle.Origin.Score,
		"celestial", bundle.Celestial.Score,
		"inquiry", bundle.Inquiry.Score,
		"present", bundle.PresentCount())
	return bundle
}
