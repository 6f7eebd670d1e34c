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


// Package storage defines the persistence boundary for the starship catalog.
//
// Persistence is an operational convenience, not part of the resolution
// engine: a seeder writes starships.json into a local KV store once, and the
// server reads the whole catalog back at startup. The engine itself only
// ever sees the in-memory catalog. Computed resolution results are never
// persisted.
//
// The storage/badger sub-package provides the BadgerDB implementation.
package storage
