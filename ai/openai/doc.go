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


// Package openai implements ai.Gateway on top of OpenAI-compatible chat
// APIs (DashScope compatible mode, Ollama, vLLM, LocalAI).
//
// One underlying client is created per configured model, so the fast
// selection model and the quality interpretation model never share request
// defaults. Every upstream failure is returned wrapping ai.ErrGateway.
package openai
