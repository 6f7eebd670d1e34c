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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDate indicates a date string is not a valid YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidRecord indicates a StarshipRecord failed validation.
	ErrInvalidRecord = errors.New("invalid starship record")

	// ErrEmptyArchiveID indicates the ArchiveID field is empty.
	ErrEmptyArchiveID = errors.New("archive id cannot be empty")

	// ErrEmptyOracleText indicates the OracleText field is empty.
	ErrEmptyOracleText = errors.New("oracle text cannot be empty")

	// ErrDuplicateArchiveID indicates two catalog records share an ArchiveID.
	ErrDuplicateArchiveID = errors.New("duplicate archive id")
)
