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


package remedy

import "errors"

var (
	// ErrKnowledgeBaseRequired indicates a nil knowledge base was supplied.
	ErrKnowledgeBaseRequired = errors.New("knowledge base is required")

	// ErrScoringProviderRequired indicates a nil scoring provider was
	// supplied.
	ErrScoringProviderRequired = errors.New("scoring provider is required")

	// ErrCheckerRequired indicates a nil checker was supplied.
	ErrCheckerRequired = errors.New("checker is required")

	// ErrConflictingPromptOptions indicates both Prompt and FormPrompt
	// were set on a request. Provide one or the other.
	ErrConflictingPromptOptions = errors.New("provide either Prompt or FormPrompt, not both")

	// ErrEmptyQuery indicates an empty query string.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrEmptyContext indicates an empty context string.
	ErrEmptyContext = errors.New("context cannot be empty")

	// ErrEmptyResponse indicates an empty response string.
	ErrEmptyResponse = errors.New("response cannot be empty")
)
