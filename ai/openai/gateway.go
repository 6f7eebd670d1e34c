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


package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/astroracle/starway/ai"
)

// Gateway implements ai.Gateway using OpenAI-compatible chat APIs.
type Gateway struct {
	clients map[string]llms.Model
	logger  *slog.Logger
}

// NewGateway creates a gateway with one client per configured model.
// The config is validated and normalized before use.
//
// Returns ai.Gateway (not *Gateway) to enforce abstraction and prevent
// coupling to OpenAI-specific implementation details.
func NewGateway(config *ai.Config) (ai.Gateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clients := make(map[string]llms.Model, 2)
	for _, model := range []string{config.FastModel, config.QualityModel} {
		if _, ok := clients[model]; ok {
			continue
		}
		client, err := openai.New(
			openai.WithBaseURL(config.Host),
			openai.WithToken(config.APIKey),
			openai.WithModel(model),
		)
		if err != nil {
			return nil, err
		}
		clients[model] = client
	}

	return &Gateway{
		clients: clients,
		logger:  slog.Default().With("component", "openai-gateway"),
	}, nil
}

// Complete sends one blocking chat completion.
func (g *Gateway) Complete(ctx context.Context, system, prompt, model string) (string, error) {
	client, err := g.client(model)
	if err != nil {
		return "", err
	}

	response, err := client.GenerateContent(ctx, messages(system, prompt))
	if err != nil {
		g.logger.Error("completion failed", "model", model, "err", err)
		return "", fmt.Errorf("%w: %v", ai.ErrGateway, err)
	}

	return extractContent(response)
}

// CompleteStream opens one streaming chat completion and forwards every
// delta to fn in arrival order. An error returned by fn stops the stream
// and is returned unchanged; upstream failures wrap ai.ErrGateway.
func (g *Gateway) CompleteStream(ctx context.Context, system, prompt, model string, fn ai.StreamFunc) error {
	client, err := g.client(model)
	if err != nil {
		return err
	}

	var fnErr error
	_, err = client.GenerateContent(ctx, messages(system, prompt),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			if e := fn(ctx, chunk); e != nil {
				fnErr = e
				return e
			}
			return nil
		}),
	)
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		g.logger.Error("streaming completion failed", "model", model, "err", err)
		return fmt.Errorf("%w: %v", ai.ErrGateway, err)
	}
	return nil
}

// Close releases resources held by the gateway.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (g *Gateway) Close() error {
	g.logger.Debug("closing OpenAI gateway")
	return nil
}

func (g *Gateway) client(model string) (llms.Model, error) {
	client, ok := g.clients[model]
	if !ok {
		return nil, fmt.Errorf("%w: unknown model %q", ai.ErrGateway, model)
	}
	return client, nil
}

func messages(system, prompt string) []llms.MessageContent {
	content := make([]llms.MessageContent, 0, 2)
	if system != "" {
		content = append(content, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		})
	}
	content = append(content, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(prompt)},
	})
	return content
}
