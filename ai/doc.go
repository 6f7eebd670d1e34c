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


// Package ai defines the chat-completion gateway boundary used by the
// oracle resolution engine.
//
// The engine always distinguishes two model tiers: a fast, low-cost model
// for categorical starship selection and a quality model for interpretation
// synthesis. Both travel through the same Gateway, which accepts a model
// identifier per call.
//
// # Design Principles
//
//   - Gateway: one blocking and one streaming round trip, nothing else.
//     Retries, caching and fallbacks live in the caller.
//   - Every transport or malformed-response condition surfaces as an error
//     wrapping ErrGateway, so callers classify failures with a single
//     errors.Is check.
//   - A request is never partially applied: on error the caller may assume
//     no side effects occurred upstream.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (DashScope compatible mode, Ollama, vLLM, ...).
//   - ai/mock: test doubles with injectable behavior and call counting.
//
// Production constructors return the Gateway interface; mock constructors
// return concrete types so tests can assert on call counts and inject
// behavior.
package ai
