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

import "context"

// KnowledgeBase is a store of expert question/answer entries.
// Implementations must be thread-safe for concurrent use.
type KnowledgeBase interface {
	// Query looks up an entry matching the question. Returns (nil, nil)
	// when no entry matches; how "matching" is decided (exact text,
	// semantic similarity) is backend-specific.
	Query(ctx context.Context, question string) (*Entry, error)

	// AddQuestion logs a new unanswered question and returns the created
	// entry. Repeated identical questions may accumulate separate entries
	// unless the backend deduplicates them.
	AddQuestion(ctx context.Context, question string) (*Entry, error)

	// Close releases resources held by the backend.
	Close() error
}

// RemediationWriter is an optional capability for backends that accept
// expert-verified question/answer pairs directly.
type RemediationWriter interface {
	// AddRemediation records a question together with its expert answer.
	// A nil answer logs the question as pending, like AddQuestion.
	AddRemediation(ctx context.Context, question string, answer *string) (*Entry, error)
}
