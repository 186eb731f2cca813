// Copyright 2025 Poiesic Systems
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


package kb

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// EntryMUS serializes entries for embedded storage backends.
// Timestamps are encoded as Unix microseconds.
var EntryMUS = entryMUS{}

type entryMUS struct{}

// Size returns the encoded size of the entry in bytes.
func (entryMUS) Size(e Entry) int {
	size := ord.String.Size(e.ID)
	size += ord.String.Size(e.Question)
	size += ord.Bool.Size(e.Answer != nil)
	if e.Answer != nil {
		size += ord.String.Size(*e.Answer)
	}
	size += varint.Int64.Size(e.CreatedAt.UnixMicro())
	size += ord.Bool.Size(e.AnswerAt != nil)
	if e.AnswerAt != nil {
		size += varint.Int64.Size(e.AnswerAt.UnixMicro())
	}
	return size
}

// Marshal encodes the entry into bs, which must be at least Size(e) long.
// Returns the number of bytes written.
func (entryMUS) Marshal(e Entry, bs []byte) int {
	n := ord.String.Marshal(e.ID, bs)
	n += ord.String.Marshal(e.Question, bs[n:])
	n += ord.Bool.Marshal(e.Answer != nil, bs[n:])
	if e.Answer != nil {
		n += ord.String.Marshal(*e.Answer, bs[n:])
	}
	n += varint.Int64.Marshal(e.CreatedAt.UnixMicro(), bs[n:])
	n += ord.Bool.Marshal(e.AnswerAt != nil, bs[n:])
	if e.AnswerAt != nil {
		n += varint.Int64.Marshal(e.AnswerAt.UnixMicro(), bs[n:])
	}
	return n
}

// Unmarshal decodes an entry from bs. Returns the entry and the number of
// bytes read.
func (entryMUS) Unmarshal(bs []byte) (Entry, int, error) {
	var e Entry

	id, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return e, n, err
	}
	e.ID = id

	question, n1, err := ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.Question = question

	hasAnswer, n1, err := ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	if hasAnswer {
		answer, n1, err := ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return e, n, err
		}
		e.Answer = &answer
	}

	createdAt, n1, err := varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.CreatedAt = time.UnixMicro(createdAt).UTC()

	hasAnswerAt, n1, err := ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	if hasAnswerAt {
		answerAt, n1, err := varint.Int64.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return e, n, err
		}
		t := time.UnixMicro(answerAt).UTC()
		e.AnswerAt = &t
	}

	return e, n, nil
}

// MarshalEntry serializes an entry to bytes.
func MarshalEntry(e *Entry) []byte {
	buf := make([]byte, EntryMUS.Size(*e))
	EntryMUS.Marshal(*e, buf)
	return buf
}

// UnmarshalEntry deserializes an entry from bytes.
func UnmarshalEntry(data []byte) (*Entry, error) {
	e, _, err := EntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
