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


package storage

import (
	"github.com/astroracle/starway/core"
)

// MarshalStarshipRecord serializes a StarshipRecord to bytes.
func MarshalStarshipRecord(record *core.StarshipRecord) []byte {
	buf := make([]byte, core.StarshipRecordMUS.Size(*record))
	core.StarshipRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalStarshipRecord deserializes a StarshipRecord from bytes.
func UnmarshalStarshipRecord(data []byte) (*core.StarshipRecord, error) {
	record, _, err := core.StarshipRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalID serializes a content ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes a content ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}
