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


// Package mock provides a test double for the ai.Gateway interface.
//
// The mock allows behavior injection through function fields and records
// per-method call counts, so tests can assert both on the results a caller
// produces and on whether a round trip happened at all:
//
//	gw := mock.NewGateway()
//	gw.CompleteFunc = func(ctx context.Context, system, prompt, model string) (string, error) {
//	    return "SELECTED_ID: SS-001", nil
//	}
//	// ... exercise the caller ...
//	assert.Equal(t, 1, gw.CompleteCalls())
//
// NewGateway returns the concrete type, not the interface, so tests keep
// access to the assertion helpers.
package mock
