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


package core

import (
	"fmt"
	"time"
)

// ParseDate parses a YYYY-MM-DD date string into a UTC calendar date.
// Returns ErrInvalidDate (wrapped) if the string does not parse.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(LaunchDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.UTC(), nil
}

// DayOffset returns the absolute number of whole days between two dates.
// Both inputs are normalized to UTC midnight first, so the division is exact
// for calendar dates.
func DayOffset(a, b time.Time) int {
	a = midnightUTC(a)
	b = midnightUTC(b)
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the invariants a catalog record must satisfy before it can
// be served: a unique key and non-empty oracle text. A malformed LaunchDate
// is deliberately NOT a validation error; temporal scoring skips such records
// per-record instead of rejecting the catalog.
func (r *StarshipRecord) Validate() error {
	if r.ArchiveID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyArchiveID)
	}
	if r.OracleText == "" {
		return fmt.Errorf("%w: %w (archive_id=%s)", ErrInvalidRecord, ErrEmptyOracleText, r.ArchiveID)
	}
	return nil
}
