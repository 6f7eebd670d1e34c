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


// Package api serves the resolution engine over HTTP.
//
// POST /api/v1/divine endpoints run the individual axes or a full
// resolution; /api/v1/oracle/stream relays the interpretation as
// server-sent events. GET endpoints expose the catalog read-only.
// Routes that consume model round trips sit behind a per-IP rate
// limiter.
package api
