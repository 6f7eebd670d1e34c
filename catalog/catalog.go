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


// Package catalog holds the read-only in-memory starship catalog.
//
// A Catalog is built once at process start, from a JSON file or a seeded
// repository, and is shared across all concurrent resolutions without
// locking. It is never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/astroracle/starway/core"
)

// Catalog is the immutable starship collection.
type Catalog struct {
	records []core.StarshipRecord
	byID    map[string]*core.StarshipRecord
	fp      core.ID
}

// New builds a catalog from records. Every record must pass validation and
// carry a unique archive id. An empty catalog is valid; resolutions against
// it return absent results rather than errors.
func New(records []core.StarshipRecord) (*Catalog, error) {
	c := &Catalog{
		records: records,
		byID:    make(map[string]*core.StarshipRecord, len(records)),
	}

	var fp strings.Builder
	for i := range records {
		r := &c.records[i]
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[r.ArchiveID]; ok {
			return nil, fmt.Errorf("%w: %s", core.ErrDuplicateArchiveID, r.ArchiveID)
		}
		c.byID[r.ArchiveID] = r
		fmt.Fprintf(&fp, "%x;", uint64(r.Fingerprint()))
	}
	c.fp = core.IDFromContent(fp.String())

	return c, nil
}

// Records returns the catalog entries in load order.
// The returned slice is shared and must be treated as read-only.
func (c *Catalog) Records() []core.StarshipRecord {
	return c.records
}

// Get resolves an archive id by exact match.
func (c *Catalog) Get(archiveID string) (*core.StarshipRecord, bool) {
	r, ok := c.byID[archiveID]
	return r, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Fingerprint is a content-derived identifier for the loaded catalog,
// stable across processes for identical catalog content.
func (c *Catalog) Fingerprint() core.ID {
	return c.fp
}
