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


// Package oracle implements the resolution engine: three independent axis
// resolutions over the starship catalog, followed by LLM interpretation
// synthesis with deterministic fallback.
//
// # Axes
//
//   - origin: birth-date affinity, long-horizon decay (divisor 365)
//   - celestial: current-date affinity, short-horizon decay (divisor 30)
//   - inquiry: question semantics, delegated to the fast LLM model
//
// The two temporal axes are pure and deterministic. The inquiry axis and
// the interpretation synthesis each perform exactly one gateway round trip;
// neither ever surfaces a gateway failure to the caller. A failed selection
// becomes an absent MatchResult, a failed synthesis becomes fallback text,
// and a failed stream degrades to the fallback text delivered as a single
// result fragment followed by a normal completion. Degraded quality, never
// degraded availability.
//
// Multiple in-flight resolutions share only the read-only catalog, so an
// Engine is safe for concurrent use without locking.
package oracle
