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


// Package kb provides the knowledge-base abstraction layer for remedy.
//
// A knowledge base stores question/answer entries that human experts curate
// out-of-band: questions are logged when the AI system cannot answer them
// well, and experts fill in answers later. This package defines the
// KnowledgeBase interface and the Gateway, which implements the
// lookup-or-register contract on top of any backend.
//
// # Implementation Packages
//
//   - kb/codex: remote backend over the hosted Codex web API
//   - kb/badger: embedded BadgerDB backend for self-hosted and offline use
//
// Public constructors in the implementation packages return the
// kb.KnowledgeBase interface so backends stay interchangeable.
//
// # Thread Safety
//
// All backend implementations must be safe for concurrent use. The Gateway
// itself holds no mutable state.
package kb
