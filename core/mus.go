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
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written mus-format serializers. The catalog persists a single flat
// record type, so the serializers are maintained by hand instead of through
// a generator harness. Field order is the wire format; changing it breaks
// previously seeded databases.

var keywordsMUS = ord.NewSliceSer[string](ord.String)

// IDMUS serializes core.ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// StarshipRecordMUS serializes StarshipRecord values.
var StarshipRecordMUS = starshipRecordMUS{}

type starshipRecordMUS struct{}

func (starshipRecordMUS) Marshal(r StarshipRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.ArchiveID, bs)
	n += ord.String.Marshal(r.NameCN, bs[n:])
	n += ord.String.Marshal(r.NameOfficial, bs[n:])
	n += ord.String.Marshal(r.LaunchDate, bs[n:])
	n += ord.String.Marshal(r.Operator, bs[n:])
	n += ord.String.Marshal(r.MissionDescription, bs[n:])
	n += ord.String.Marshal(r.Status, bs[n:])
	n += keywordsMUS.Marshal(r.OracleKeywords, bs[n:])
	n += ord.String.Marshal(r.OracleText, bs[n:])
	n += ord.String.Marshal(r.OracleInterpretation, bs[n:])
	return
}

func (starshipRecordMUS) Unmarshal(bs []byte) (r StarshipRecord, n int, err error) {
	var n1 int
	r.ArchiveID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.NameCN, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.NameOfficial, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.LaunchDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Operator, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.MissionDescription, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Status, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.OracleKeywords, n1, err = keywordsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.OracleText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.OracleInterpretation, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (starshipRecordMUS) Size(r StarshipRecord) (size int) {
	size = ord.String.Size(r.ArchiveID)
	size += ord.String.Size(r.NameCN)
	size += ord.String.Size(r.NameOfficial)
	size += ord.String.Size(r.LaunchDate)
	size += ord.String.Size(r.Operator)
	size += ord.String.Size(r.MissionDescription)
	size += ord.String.Size(r.Status)
	size += keywordsMUS.Size(r.OracleKeywords)
	size += ord.String.Size(r.OracleText)
	return size + ord.String.Size(r.OracleInterpretation)
}

func (starshipRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 7; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = keywordsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}
