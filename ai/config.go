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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for the chat-completion gateway.
type Config struct {
	// Host is the base URL of the OpenAI-compatible API.
	// Example: "https://dashscope.aliyuncs.com/compatible-mode/v1"
	Host string

	// APIKey authenticates against the upstream service. A missing key is a
	// fatal configuration error surfaced before any request is served.
	APIKey string

	// FastModel is the low-cost model used for starship selection.
	// Example: "qwen-turbo"
	FastModel string

	// QualityModel is the model used for interpretation synthesis.
	// Example: "qwen-plus"
	QualityModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the API base URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithAPIKey sets the API credential.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithFastModel sets the selection model identifier.
func WithFastModel(model string) ConfigOption {
	return func(c *Config) {
		c.FastModel = model
	}
}

// WithQualityModel sets the interpretation model identifier.
func WithQualityModel(model string) ConfigOption {
	return func(c *Config) {
		c.QualityModel = model
	}
}

// DefaultConfig returns a Config pointed at DashScope's OpenAI-compatible
// endpoint with the stock model pairing. The API key has no default.
func DefaultConfig() *Config {
	return &Config{
		Host:         "https://dashscope.aliyuncs.com/compatible-mode/v1",
		FastModel:    "qwen-turbo",
		QualityModel: "qwen-plus",
	}
}

// NewConfig creates a Config with default values and applies the provided
// options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in canonical form. It adds the /v1
// suffix to the host if missing, which OpenAI-compatible APIs require.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.FastModel == "" {
		return errors.New("ai config: FastModel is required")
	}
	if c.QualityModel == "" {
		return errors.New("ai config: QualityModel is required")
	}
	return nil
}
