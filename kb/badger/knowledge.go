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


package badger

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/remedy/kb"
)

const entryPrefix = "entry"

// KnowledgeBase is an embedded BadgerDB implementation of kb.KnowledgeBase.
// It also implements kb.RemediationWriter.
type KnowledgeBase struct {
	backend *Backend
}

var _ kb.KnowledgeBase = (*KnowledgeBase)(nil)
var _ kb.RemediationWriter = (*KnowledgeBase)(nil)

// New creates a knowledge base stored at the given path.
//
// Returns kb.KnowledgeBase interface to enforce abstraction.
func New(path string) (kb.KnowledgeBase, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &KnowledgeBase{backend: backend}, nil
}

// NewMemory creates an in-memory knowledge base for testing.
// Returns the concrete type so tests can reach the backend.
func NewMemory() (*KnowledgeBase, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return &KnowledgeBase{backend: backend}, nil
}

// Close closes the underlying database.
func (k *KnowledgeBase) Close() error {
	return k.backend.Close()
}

// Query looks up an entry by exact normalized question text.
// Returns (nil, nil) when no entry matches.
func (k *KnowledgeBase) Query(ctx context.Context, question string) (*kb.Entry, error) {
	if question == "" {
		return nil, kb.ErrEmptyQuestion
	}
	if k.backend.IsClosed() {
		return nil, kb.ErrStorageClosed
	}

	var entry *kb.Entry
	err := k.backend.WithTx(func(tx *badger.Txn) error {
		found, err := readEntry(tx, makeEntryKey(question))
		if err != nil {
			return err
		}
		entry = found
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// AddQuestion logs a new unanswered question. Re-adding an already logged
// question returns the existing entry unchanged.
func (k *KnowledgeBase) AddQuestion(ctx context.Context, question string) (*kb.Entry, error) {
	return k.put(ctx, question, nil, false)
}

// AddRemediation records a question with its expert answer, overwriting any
// pending entry for the same question.
func (k *KnowledgeBase) AddRemediation(ctx context.Context, question string, answer *string) (*kb.Entry, error) {
	return k.put(ctx, question, answer, true)
}

func (k *KnowledgeBase) put(ctx context.Context, question string, answer *string, overwrite bool) (*kb.Entry, error) {
	if question == "" {
		return nil, kb.ErrEmptyQuestion
	}
	if k.backend.IsClosed() {
		return nil, kb.ErrStorageClosed
	}

	key := makeEntryKey(question)
	var entry *kb.Entry
	err := k.backend.WithTx(func(tx *badger.Txn) error {
		existing, err := readEntry(tx, key)
		if err != nil {
			return err
		}
		if existing != nil && !overwrite {
			entry = existing
			return nil
		}

		entry = &kb.Entry{
			ID:        entryID(question),
			Question:  question,
			Answer:    answer,
			CreatedAt: time.Now().UTC(),
		}
		if existing != nil {
			entry.CreatedAt = existing.CreatedAt
		}
		if answer != nil {
			now := time.Now().UTC()
			entry.AnswerAt = &now
		}

		if err := tx.Set(key, kb.MarshalEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// readEntry fetches and decodes an entry, or nil when the key is absent.
func readEntry(tx *badger.Txn, key []byte) (*kb.Entry, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry *kb.Entry
	err = item.Value(func(val []byte) error {
		decoded, err := kb.UnmarshalEntry(val)
		if err != nil {
			return fmt.Errorf("%w: %v", kb.ErrSerializationFailed, err)
		}
		entry = decoded
		return nil
	})
	return entry, err
}

// makeEntryKey generates a key from the normalized question text.
func makeEntryKey(question string) []byte {
	return []byte(entryPrefix + ":" + entryID(question))
}

// entryID derives a deterministic entry ID from question content using
// BLAKE2b hashing, so identical questions map to the same entry.
func entryID(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}
