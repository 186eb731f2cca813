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


// Package scoring provides abstractions for the trustworthiness scoring
// service used by remedy.
//
// The package defines the two capabilities the detection engine depends on:
//
//   - Evaluator: scores a (prompt, response) pair along named quality
//     metrics such as trustworthiness and response helpfulness
//   - Prompter: asks the scoring model a free-form question, optionally
//     constrained to a fixed set of outputs, and reports how confident the
//     model is in its own answer
//
// Provider aggregates both capabilities for convenient initialization.
//
// # Implementation Packages
//
//   - scoring/openai: production implementation backed by any
//     OpenAI-compatible chat API
//   - scoring/mock: test doubles for unit testing without external services
//
// Public constructors in the implementation packages return interface types
// to enforce abstraction; mock constructors return concrete types so tests
// can inject behavior and assert on call counts.
//
// Any implementation satisfying these interfaces is substitutable; the
// detection engine never depends on a concrete scoring client.
package scoring
