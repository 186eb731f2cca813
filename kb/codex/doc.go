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


// Package codex implements kb.KnowledgeBase over the hosted Codex web API.
//
// A Project is a handle to one remote knowledge-base partition,
// authenticated with a project-level access key. Question matching is done
// server-side by semantic similarity with a project-configurable threshold,
// so near-duplicate questions resolve to the same entry.
//
// Remote errors are returned to the caller unmodified: there is no retry,
// backoff, or circuit breaking at this layer. Timeouts and cancellation
// belong to the supplied context and HTTP client.
package codex
