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

import "errors"

var (
	// ErrKnowledgeBaseRequired indicates a nil KnowledgeBase was supplied.
	ErrKnowledgeBaseRequired = errors.New("knowledge base is required")

	// ErrEmptyQuestion indicates an empty question string.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrRemediationUnsupported indicates the backend does not accept
	// expert remediations.
	ErrRemediationUnsupported = errors.New("backend does not support remediations")

	// ErrStorageClosed indicates the backend is closed.
	ErrStorageClosed = errors.New("knowledge base is closed")

	// ErrSerializationFailed indicates an entry could not be encoded or
	// decoded.
	ErrSerializationFailed = errors.New("entry serialization failed")
)
